// Package migrate rewrites skill SKILL.md frontmatter into the Agent
// Skills canonical layout and extracts related-skill references
// from document bodies. Both passes are idempotent: the first skips any
// document that already carries a metadata group, the second skips any
// document whose metadata already names related-skills.
package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/jeffallan/skillmig/pkg/frontmatter"
	"github.com/jeffallan/skillmig/pkg/logger"
)

const skillFileName = "SKILL.md"

// requiredFields must be present before the first pass rewrites a
// document.
var requiredFields = []string{"name", "description", "triggers"}

// Outcome classifies the result of one pass over one document.
type Outcome string

const (
	// OutcomeMigrated means the document was rewritten (or would be,
	// in a dry run).
	OutcomeMigrated Outcome = "migrated"
	// OutcomeSkipped means the document already carries the pass's
	// idempotency marker.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the document could not be processed; the
	// Message names the reason.
	OutcomeFailed Outcome = "failed"
)

// Result records the outcome for one skill in one pass.
type Result struct {
	Skill   string
	Outcome Outcome
	Message string
	// Preview holds the rebuilt frontmatter (first pass) or the
	// extracted related-skills value (second pass) for dry-run
	// reporting.
	Preview string
}

// Report aggregates per-skill results for one pass.
type Report struct {
	DryRun  bool
	Results []Result
}

func (r *Report) count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Migrated returns how many documents were rewritten.
func (r *Report) Migrated() int { return r.count(OutcomeMigrated) }

// Skipped returns how many documents were already migrated.
func (r *Report) Skipped() int { return r.count(OutcomeSkipped) }

// Failed returns how many documents could not be processed.
func (r *Report) Failed() int { return r.count(OutcomeFailed) }

// Total returns the number of documents attempted.
func (r *Report) Total() int { return len(r.Results) }

// Migrator drives the migration passes over a skills directory.
type Migrator struct {
	skillsDir string
	skill     string
	dryRun    bool
	author    string
	domains   DomainMap
	parser    frontmatter.Parser
}

// Option configures a Migrator.
type Option func(*Migrator) error

// WithSkillsDir sets the directory containing skill subdirectories.
func WithSkillsDir(dir string) Option {
	return func(m *Migrator) error {
		if dir != "" {
			m.skillsDir = dir
		}
		return nil
	}
}

// WithSkill restricts the run to a single named skill.
func WithSkill(name string) Option {
	return func(m *Migrator) error {
		m.skill = name
		return nil
	}
}

// WithDryRun makes the run report previews without writing files.
func WithDryRun(dryRun bool) Option {
	return func(m *Migrator) error {
		m.dryRun = dryRun
		return nil
	}
}

// WithAuthor overrides the metadata.author value.
func WithAuthor(author string) Option {
	return func(m *Migrator) error {
		if author != "" {
			m.author = author
		}
		return nil
	}
}

// WithDomainMap overrides the skill-to-domain table.
func WithDomainMap(domains DomainMap) Option {
	return func(m *Migrator) error {
		if domains == nil {
			return errors.New("domain map must not be nil")
		}
		m.domains = domains
		return nil
	}
}

// WithParser overrides the frontmatter parser strategy.
func WithParser(p frontmatter.Parser) Option {
	return func(m *Migrator) error {
		if p == nil {
			return errors.New("parser must not be nil")
		}
		m.parser = p
		return nil
	}
}

// New creates a Migrator with the default skills directory, domain
// table, author, and parser, then applies the given options.
func New(opts ...Option) (*Migrator, error) {
	m := &Migrator{
		skillsDir: "skills",
		author:    DefaultAuthor,
		domains:   DefaultDomains(),
		parser:    frontmatter.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, errors.Wrap(err, "failed to configure migrator")
		}
	}

	return m, nil
}

// allSkillNames lists every skill directory under the skills root,
// sorted by name. Hidden directories are ignored. Symlinked directories
// count, matching how skills are discovered elsewhere.
func (m *Migrator) allSkillNames() ([]string, error) {
	entries, err := os.ReadDir(m.skillsDir)
	if err != nil {
		return nil, errors.Wrapf(err, "skills directory not found: %s", m.skillsDir)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := os.Stat(filepath.Join(m.skillsDir, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// selectedSkillNames applies the single-skill restriction, if any. An
// unknown skill name is a hard error raised before any document is
// touched.
func (m *Migrator) selectedSkillNames() ([]string, error) {
	names, err := m.allSkillNames()
	if err != nil {
		return nil, err
	}

	if m.skill == "" {
		return names, nil
	}

	for _, name := range names {
		if name == m.skill {
			return []string{name}, nil
		}
	}
	return nil, errors.Errorf("skill not found: %s", m.skill)
}

// Unmapped returns the selected skills that have no domain mapping.
// They still migrate, with domain set to DomainUnknown.
func (m *Migrator) Unmapped() ([]string, error) {
	names, err := m.selectedSkillNames()
	if err != nil {
		return nil, err
	}

	var unmapped []string
	for _, name := range names {
		if _, ok := m.domains[name]; !ok {
			unmapped = append(unmapped, name)
		}
	}
	return unmapped, nil
}

// Migrate runs the frontmatter normalization pass. Per-document
// failures are recorded in the report and never stop the pass; only a
// missing skills root or an unknown --skill target aborts up front.
func (m *Migrator) Migrate(ctx context.Context) (*Report, error) {
	names, err := m.selectedSkillNames()
	if err != nil {
		return nil, err
	}

	report := &Report{DryRun: m.dryRun}
	for _, name := range names {
		result := m.migrateSkill(ctx, name)
		report.Results = append(report.Results, result)
	}
	return report, nil
}

func (m *Migrator) migrateSkill(ctx context.Context, name string) Result {
	log := logger.G(ctx).WithField("skill", name)
	path := filepath.Join(m.skillsDir, name, skillFileName)

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{Skill: name, Outcome: OutcomeFailed, Message: skillFileName + " not found"}
	}

	fields, body, err := m.parser.Parse(string(raw))
	if err != nil {
		return Result{Skill: name, Outcome: OutcomeFailed, Message: "no valid frontmatter found"}
	}

	if fields.Has("metadata") {
		log.Debug("metadata group present, already migrated")
		return Result{Skill: name, Outcome: OutcomeSkipped, Message: "already migrated"}
	}

	for _, field := range requiredFields {
		if !fields.Has(field) {
			return Result{Skill: name, Outcome: OutcomeFailed, Message: fmt.Sprintf("missing required field '%s'", field)}
		}
	}

	header := BuildFrontmatter(fields, name, m.domains, m.author)

	if m.dryRun {
		return Result{Skill: name, Outcome: OutcomeMigrated, Message: "would migrate (dry-run)", Preview: header}
	}

	if err := os.WriteFile(path, []byte(header+body), 0o644); err != nil {
		log.WithError(err).Error("failed to write migrated skill")
		return Result{Skill: name, Outcome: OutcomeFailed, Message: "write failed: " + err.Error()}
	}

	return Result{Skill: name, Outcome: OutcomeMigrated, Message: "migrated"}
}

// MigrateRelated runs the related-skills pass. The valid-name set is
// always derived from the full collection, even when the run is
// restricted to a single skill.
func (m *Migrator) MigrateRelated(ctx context.Context) (*Report, error) {
	names, err := m.selectedSkillNames()
	if err != nil {
		return nil, err
	}

	all, err := m.allSkillNames()
	if err != nil {
		return nil, err
	}
	valid := make(map[string]struct{}, len(all))
	for _, name := range all {
		valid[name] = struct{}{}
	}

	report := &Report{DryRun: m.dryRun}
	for _, name := range names {
		result := m.migrateRelatedSkill(ctx, name, valid)
		report.Results = append(report.Results, result)
	}
	return report, nil
}

func (m *Migrator) migrateRelatedSkill(ctx context.Context, name string, valid map[string]struct{}) Result {
	log := logger.G(ctx).WithField("skill", name)
	path := filepath.Join(m.skillsDir, name, skillFileName)

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{Skill: name, Outcome: OutcomeFailed, Message: skillFileName + " not found"}
	}

	fields, body, err := m.parser.Parse(string(raw))
	if err != nil {
		return Result{Skill: name, Outcome: OutcomeFailed, Message: "no valid frontmatter found"}
	}

	if fields.Metadata().Has(relatedKey) {
		log.Debug("related-skills present, already migrated")
		return Result{Skill: name, Outcome: OutcomeSkipped, Message: "already has related-skills"}
	}

	related := ExtractRelated(body, valid)
	newContent := SpliceRelated(string(raw), related)

	if m.dryRun {
		return Result{Skill: name, Outcome: OutcomeMigrated, Message: "would add related-skills (dry-run)", Preview: related}
	}

	if err := os.WriteFile(path, []byte(newContent), 0o644); err != nil {
		log.WithError(err).Error("failed to write related-skills update")
		return Result{Skill: name, Outcome: OutcomeFailed, Message: "write failed: " + err.Error()}
	}

	return Result{Skill: name, Outcome: OutcomeMigrated, Message: "added related-skills"}
}
