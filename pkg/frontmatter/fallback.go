package frontmatter

import "strings"

// FallbackParser is a line-oriented frontmatter reader for environments
// where the full YAML stack is unwanted. It handles flat `key: value`
// scalars and single-level `key:` lists with indented `- item` entries,
// which is every shape the migration emits. Nested mappings do not
// round-trip through it.
type FallbackParser struct{}

// Parse implements Parser.
func (FallbackParser) Parse(content string) (Fields, string, error) {
	header, body, err := Split(content)
	if err != nil {
		return nil, "", err
	}

	fields := Fields{}
	var pendingKey string
	var pendingList []string

	flush := func() {
		if pendingKey != "" && pendingList != nil {
			fields[pendingKey] = pendingList
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(header), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// List item indented under a pending bare key.
		if strings.HasPrefix(line, "  - ") || strings.HasPrefix(line, "    - ") {
			if pendingKey != "" && pendingList != nil {
				item := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "- "))
				pendingList = append(pendingList, item)
			}
			continue
		}

		// New top-level key.
		if strings.Contains(line, ":") && !strings.HasPrefix(line, " ") {
			flush()

			key, value, _ := strings.Cut(line, ":")
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)

			if value == "" {
				pendingKey = key
				pendingList = []string{}
			} else {
				fields[key] = value
				pendingKey = ""
				pendingList = nil
			}
		}
	}

	flush()

	return fields, body, nil
}
