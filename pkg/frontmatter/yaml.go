package frontmatter

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// YAMLParser reads frontmatter with a full YAML parser via the goldmark
// metadata extension. An empty or absent metadata block yields an empty
// mapping rather than an error.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(content string) (Fields, string, error) {
	_, body, err := Split(content)
	if err != nil {
		return nil, "", err
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
		return nil, "", errors.Wrap(err, "failed to parse markdown")
	}

	fields := Fields{}
	for k, v := range meta.Get(pctx) {
		fields[k] = normalize(v)
	}

	return fields, body, nil
}

// normalize converts goldmark-meta's YAML values into the Fields value
// set: scalar strings, []string lists, and nested Fields maps.
func normalize(v any) any {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
		return items
	case map[any]any:
		nested := Fields{}
		for k, item := range val {
			nested[fmt.Sprint(k)] = normalize(item)
		}
		return nested
	case map[string]any:
		nested := Fields{}
		for k, item := range val {
			nested[k] = normalize(item)
		}
		return nested
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
