package migrate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func TestExtractRelated(t *testing.T) {
	t.Run("filters to known skills", func(t *testing.T) {
		body := `
# Some Skill

## Related Skills

- **Fullstack Guardian** for security reviews
- **Nonexistent Tool** for nothing

## Another Section
`
		got := ExtractRelated(body, stringSet("fullstack-guardian", "react-expert"))
		assert.Equal(t, "fullstack-guardian", got)
	})

	t.Run("extraction order preserved", func(t *testing.T) {
		body := "## Related Skills\n\n**React Expert**, then **SQL Pro**, then **React Expert** again.\n"
		got := ExtractRelated(body, stringSet("react-expert", "sql-pro"))
		// Repeats are kept as written.
		assert.Equal(t, "react-expert, sql-pro, react-expert", got)
	})

	t.Run("section bounded by next heading", func(t *testing.T) {
		body := "## Related Skills\n\n**SQL Pro**\n\n## Usage\n\n**React Expert** does not count.\n"
		got := ExtractRelated(body, stringSet("sql-pro", "react-expert"))
		assert.Equal(t, "sql-pro", got)
	})

	t.Run("section runs to end of body", func(t *testing.T) {
		body := "Intro.\n\n## Related Skills\n\n**SQL Pro** and **React Expert**"
		got := ExtractRelated(body, stringSet("sql-pro", "react-expert"))
		assert.Equal(t, "sql-pro, react-expert", got)
	})

	t.Run("missing section", func(t *testing.T) {
		assert.Equal(t, "", ExtractRelated("# No related section here\n", stringSet("sql-pro")))
	})

	t.Run("no surviving names", func(t *testing.T) {
		body := "## Related Skills\n\n**Unknown One** and **Unknown Two**\n"
		assert.Equal(t, "", ExtractRelated(body, stringSet("sql-pro")))
	})
}

const migratedSkill = `---
name: react-expert
description: Expert in React development
license: MIT
metadata:
  author: https://github.com/Jeffallan
  version: "1.0.0"
  domain: frontend
  triggers: react, jsx
  role: Senior frontend engineer
  output-format: Detailed review
---

# React Expert

Body.
`

func TestSpliceRelated(t *testing.T) {
	t.Run("inserts after output-format", func(t *testing.T) {
		got := SpliceRelated(migratedSkill, "sql-pro, test-master")

		gotLines := strings.Split(got, "\n")
		wantLines := strings.Split(migratedSkill, "\n")

		idx := -1
		for i, line := range gotLines {
			if line == "  related-skills: sql-pro, test-master" {
				idx = i
				break
			}
		}
		assert.Equal(t, 11, idx, "related-skills should follow output-format")
		assert.Equal(t, "  output-format: Detailed review", gotLines[idx-1])

		// Every original line survives byte for byte.
		rest := append(append([]string{}, gotLines[:idx]...), gotLines[idx+1:]...)
		assert.Equal(t, wantLines, rest)
	})

	t.Run("falls back to last indented metadata line", func(t *testing.T) {
		content := strings.Replace(migratedSkill, "  output-format: Detailed review\n", "", 1)
		got := SpliceRelated(content, "sql-pro")

		lines := strings.Split(got, "\n")
		idx := -1
		for i, line := range lines {
			if line == "  related-skills: sql-pro" {
				idx = i
				break
			}
		}
		assert.Greater(t, idx, 0)
		assert.Equal(t, "  role: Senior frontend engineer", lines[idx-1])
	})

	t.Run("no-op when marker already present", func(t *testing.T) {
		once := SpliceRelated(migratedSkill, "sql-pro")
		twice := SpliceRelated(once, "sql-pro")
		assert.Equal(t, once, twice)
	})

	t.Run("empty value still written", func(t *testing.T) {
		got := SpliceRelated(migratedSkill, "")
		assert.Contains(t, got, "  related-skills: \n")
	})

	t.Run("malformed content returned unchanged", func(t *testing.T) {
		assert.Equal(t, "no frontmatter", SpliceRelated("no frontmatter", "x"))
	})
}
