package migrate

import (
	"regexp"
	"strings"

	"github.com/jeffallan/skillmig/pkg/frontmatter"
)

const (
	relatedHeading = "## Related Skills"
	relatedKey     = "related-skills"

	// relatedMarker is the literal header line prefix that marks a
	// document as already carrying related-skills metadata.
	relatedMarker = "  related-skills:"
)

var (
	relatedHeadingRe = regexp.MustCompile(regexp.QuoteMeta(relatedHeading) + `\s*\n`)
	boldNameRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// ExtractRelated scans the "## Related Skills" section of a body for
// bold display names, normalizes each to its directory-name form
// (lower-case, spaces to hyphens), and keeps only names present in
// valid. The result is a comma-and-space-joined string in extraction
// order; repeated names are kept as written. An absent section or no
// surviving names yields the empty string.
func ExtractRelated(body string, valid map[string]struct{}) string {
	loc := relatedHeadingRe.FindStringIndex(body)
	if loc == nil {
		return ""
	}

	section := body[loc[1]:]
	if end := strings.Index(section, "\n## "); end >= 0 {
		section = section[:end]
	}

	var related []string
	for _, match := range boldNameRe.FindAllStringSubmatch(section, -1) {
		dirName := strings.ReplaceAll(strings.ToLower(match[1]), " ", "-")
		if _, ok := valid[dirName]; ok {
			related = append(related, dirName)
		}
	}

	return strings.Join(related, ", ")
}

// SpliceRelated inserts a related-skills line into the metadata group
// of an existing frontmatter block. This is a textual splice, not a
// rebuild: every other line of the document is preserved byte for byte,
// so it stays safe to re-run regardless of how the header was produced.
// The line goes immediately after output-format when that field exists,
// otherwise after the last indented metadata line found scanning
// backward from the end of the block. Content already carrying the
// marker is returned unchanged.
func SpliceRelated(content, related string) string {
	parts := strings.SplitN(content, frontmatter.Delimiter, 3)
	if len(parts) < 3 {
		return content
	}

	header := parts[1]
	body := parts[2]

	if strings.Contains(header, relatedMarker) {
		return content
	}

	newLine := "  " + relatedKey + ": " + related

	lines := strings.Split(header, "\n")
	newLines := make([]string, 0, len(lines)+1)
	inserted := false

	for _, line := range lines {
		newLines = append(newLines, line)
		if !inserted && strings.HasPrefix(strings.TrimSpace(line), "output-format:") {
			newLines = append(newLines, newLine)
			inserted = true
		}
	}

	if !inserted {
		for i := len(newLines) - 1; i >= 0; i-- {
			if strings.HasPrefix(newLines[i], "  ") && strings.Contains(newLines[i], ":") {
				newLines = append(newLines[:i+1], append([]string{newLine}, newLines[i+1:]...)...)
				inserted = true
				break
			}
		}
	}

	return frontmatter.Delimiter + strings.Join(newLines, "\n") + frontmatter.Delimiter + body
}
