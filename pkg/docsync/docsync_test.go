package docsync

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixtureRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "version.json", `{"version": "0.4.1", "skillCount": 1}`+"\n")

	writeFile(t, root, "skills/react-expert/SKILL.md", "---\nname: react-expert\n---\nBody.\n")
	writeFile(t, root, "skills/sql-pro/SKILL.md", "---\nname: sql-pro\n---\nBody.\n")
	writeFile(t, root, "skills/sql-pro/references/tuning.md", "# Tuning\n")
	writeFile(t, root, "skills/sql-pro/references/indexes.md", "# Indexes\n")
	writeFile(t, root, "skills/not-a-skill/notes.txt", "no SKILL.md here\n")

	writeFile(t, root, "commands/project/release.md", "# Release\n")

	writeFile(t, root, "README.md",
		"![version](https://img.shields.io/badge/version-0.1.0-blue.svg)\n\n"+
			"**Version:** v0.1.0\n\n"+
			"Ships 1 Skills, 9 Workflows and 355 Reference Files.\n")
	writeFile(t, root, ".claude-plugin/plugin.json",
		`{"version": "0.1.0", "description": "1 specialized skills and 9 project workflow commands"}`+"\n")

	return root
}

func TestCollectCounts(t *testing.T) {
	root := fixtureRepo(t)

	counts, err := CollectCounts(root)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Skills)
	assert.Equal(t, 2, counts.ReferenceFiles)
	assert.Equal(t, 1, counts.Workflows)
}

func TestCollectCountsEmptyRepo(t *testing.T) {
	counts, err := CollectCounts(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Counts{}, counts)
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	root := fixtureRepo(t)

	report, err := Sync(ctx, root, Options{})
	require.NoError(t, err)

	assert.Equal(t, "0.4.1", report.Version)
	assert.True(t, report.VersionFileChanged)
	assert.ElementsMatch(t, []string{"README.md", ".claude-plugin/plugin.json"}, report.UpdatedFiles)
	assert.Contains(t, report.SkippedFiles, "ROADMAP.md")

	readme, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "version-0.4.1-blue.svg")
	assert.Contains(t, string(readme), "**Version:** v0.4.1")
	assert.Contains(t, string(readme), "2 Skills")
	assert.Contains(t, string(readme), "1 Workflows")
	assert.Contains(t, string(readme), "2 Reference Files")

	plugin, err := os.ReadFile(filepath.Join(root, ".claude-plugin", "plugin.json"))
	require.NoError(t, err)
	assert.Contains(t, string(plugin), `"version": "0.4.1"`)
	assert.Contains(t, string(plugin), "2 specialized skills")
	assert.Contains(t, string(plugin), "1 project workflow commands")

	raw, err := os.ReadFile(filepath.Join(root, "version.json"))
	require.NoError(t, err)
	var versionData map[string]any
	require.NoError(t, json.Unmarshal(raw, &versionData))
	assert.Equal(t, float64(2), versionData["skillCount"])
	assert.Equal(t, float64(1), versionData["workflowCount"])
	assert.Equal(t, float64(2), versionData["referenceFileCount"])
	assert.Equal(t, "0.4.1", versionData["version"])

	t.Run("second run is in sync", func(t *testing.T) {
		report, err := Sync(ctx, root, Options{})
		require.NoError(t, err)
		assert.True(t, report.InSync())
	})
}

func TestSyncCheckModeWritesNothing(t *testing.T) {
	ctx := context.Background()
	root := fixtureRepo(t)

	readmeBefore, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	versionBefore, err := os.ReadFile(filepath.Join(root, "version.json"))
	require.NoError(t, err)

	report, err := Sync(ctx, root, Options{Check: true})
	require.NoError(t, err)
	assert.False(t, report.InSync())

	readmeAfter, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	versionAfter, err := os.ReadFile(filepath.Join(root, "version.json"))
	require.NoError(t, err)
	assert.Equal(t, string(readmeBefore), string(readmeAfter))
	assert.Equal(t, string(versionBefore), string(versionAfter))
}

func TestSyncMissingVersionFile(t *testing.T) {
	_, err := Sync(context.Background(), t.TempDir(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version.json not found")
}

func TestUpdateMarkdown(t *testing.T) {
	content := "Get 65 skills, 9 workflows, and 355 reference files today."
	got := UpdateMarkdown(content, "1.2.3", Counts{Skills: 70, Workflows: 10, ReferenceFiles: 400})
	assert.Equal(t, "Get 70 Skills, 10 Workflows, and 400 Reference Files today.", got)
}

func TestUpdateHTML(t *testing.T) {
	content := `<span>65 Skills</span><span>9 Workflows</span><span>355 Reference Files</span>`
	got := UpdateHTML(content, Counts{Skills: 70, Workflows: 10, ReferenceFiles: 400})
	assert.Equal(t, `<span>70 Skills</span><span>10 Workflows</span><span>400 Reference Files</span>`, got)
}
