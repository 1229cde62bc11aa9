// Package frontmatter reads and splits the YAML frontmatter block that
// leads every SKILL.md document. Two parser strategies are provided: a
// structured one backed by a full YAML reader, and a line-oriented
// fallback that understands just the header shapes this tool emits and
// consumes. Both return the same mapping for those shapes.
package frontmatter

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Delimiter is the line that opens and closes a frontmatter block.
const Delimiter = "---"

// ErrNoFrontmatter is returned when a document does not begin with a
// frontmatter block or the block is never closed.
var ErrNoFrontmatter = errors.New("no frontmatter found")

// Fields is a parsed frontmatter mapping. Values are strings for
// scalars, []string for single-level lists, and a nested Fields for the
// metadata group.
type Fields map[string]any

// Parser extracts frontmatter fields and the remaining body from a
// document.
type Parser interface {
	// Parse returns the frontmatter mapping and the body text that
	// follows the closing delimiter, byte-preserved. It returns
	// ErrNoFrontmatter when the document has no parseable header.
	Parse(content string) (Fields, string, error)
}

// Default returns the parser used when none is configured explicitly.
func Default() Parser {
	return YAMLParser{}
}

// Split separates the raw header text from the body. The header is the
// text between the first two delimiters; the body is everything after
// the second one, including any leading newline.
func Split(content string) (header, body string, err error) {
	if !strings.HasPrefix(content, Delimiter) {
		return "", "", ErrNoFrontmatter
	}

	parts := strings.SplitN(content, Delimiter, 3)
	if len(parts) < 3 {
		return "", "", ErrNoFrontmatter
	}

	return parts[1], parts[2], nil
}

// Has reports whether a key is present.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the value for key rendered as a scalar string, or the
// empty string when the key is absent.
func (f Fields) String(key string) string {
	v, ok := f[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// StringSlice returns the list value for key. A scalar value is wrapped
// in a single-element slice.
func (f Fields) StringSlice(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(v)}
	}
}

// Metadata returns the nested metadata group, or nil when the document
// has not been migrated yet.
func (f Fields) Metadata() Fields {
	if m, ok := f["metadata"].(Fields); ok {
		return m
	}
	return nil
}
