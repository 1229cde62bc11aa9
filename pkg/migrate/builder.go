package migrate

import (
	"strings"

	"github.com/jeffallan/skillmig/pkg/frontmatter"
)

const (
	// DefaultAuthor is the metadata.author value written when no
	// override is configured.
	DefaultAuthor = "https://github.com/Jeffallan"

	// skillLicense and skillVersion are fixed by the Agent Skills format
	// layout this tool targets.
	skillLicense = "MIT"
	skillVersion = "1.0.0"
)

// descSpecialChars are the characters that force double-quoting of the
// description value. Downstream consumers depend on plain descriptions
// staying unquoted, so the asymmetry is deliberate.
const descSpecialChars = ":#{}[]|>&*!%@`"

// BuildFrontmatter renders the canonical frontmatter block for a
// skill. Field order is fixed: name, description, license,
// allowed-tools (when present), then the metadata group with author,
// version, domain, triggers, and the relocated role/scope/output-format
// fields. The block is hand-built line by line; a YAML encoder would
// reorder keys and change quoting.
func BuildFrontmatter(fields frontmatter.Fields, skillName string, domains DomainMap, author string) string {
	if author == "" {
		author = DefaultAuthor
	}

	lines := []string{frontmatter.Delimiter}

	lines = append(lines, "name: "+fields.String("name"))

	desc := fields.String("description")
	if strings.ContainsAny(desc, descSpecialChars) {
		lines = append(lines, `description: "`+desc+`"`)
	} else {
		lines = append(lines, "description: "+desc)
	}

	lines = append(lines, "license: "+skillLicense)

	if fields.Has("allowed-tools") {
		lines = append(lines, "allowed-tools: "+fields.String("allowed-tools"))
	}

	lines = append(lines, "metadata:")
	lines = append(lines, "  author: "+author)
	lines = append(lines, `  version: "`+skillVersion+`"`)
	lines = append(lines, "  domain: "+domains.Classify(skillName))
	lines = append(lines, "  triggers: "+flattenTriggers(fields))

	for _, key := range []string{"role", "scope", "output-format"} {
		if fields.Has(key) {
			lines = append(lines, "  "+key+": "+fields.String(key))
		}
	}

	lines = append(lines, frontmatter.Delimiter)

	return strings.Join(lines, "\n")
}

// flattenTriggers converts the triggers list into the comma-joined
// scalar form the migrated layout uses. A scalar value passes through
// unchanged.
func flattenTriggers(fields frontmatter.Fields) string {
	if list, ok := fields["triggers"].([]string); ok {
		return strings.Join(list, ", ")
	}
	return fields.String("triggers")
}
