// Package docsync keeps publish-facing documentation in step with the
// repository contents. It reads the release version from version.json,
// counts skills, workflow commands, and reference files on disk, writes
// the counts back into version.json, and substitutes version and count
// strings into a fixed set of JSON, Markdown, and HTML files.
package docsync

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/jeffallan/skillmig/pkg/logger"
)

const (
	versionFileName = "version.json"
	skillsDirName   = "skills"
	commandsDirName = "commands/project"
)

type fileKind int

const (
	fileJSON fileKind = iota
	fileMarkdown
	fileHTML
)

// targets are the publish-facing files rewritten by Sync, relative to
// the repository root.
var targets = []struct {
	path string
	kind fileKind
}{
	{".claude-plugin/plugin.json", fileJSON},
	{".claude-plugin/marketplace.json", fileJSON},
	{"README.md", fileMarkdown},
	{"QUICKSTART.md", fileMarkdown},
	{"ROADMAP.md", fileMarkdown},
	{"assets/social-preview.html", fileHTML},
}

// Counts holds the on-disk document tallies substituted into docs.
type Counts struct {
	Skills         int
	Workflows      int
	ReferenceFiles int
}

// Options control a Sync run. DryRun reports without writing; Check is
// DryRun plus an out-of-sync report for CI gating.
type Options struct {
	DryRun bool
	Check  bool
}

// Report summarizes a Sync run.
type Report struct {
	Version            string
	Counts             Counts
	UpdatedFiles       []string
	SkippedFiles       []string
	VersionFileChanged bool
}

// InSync reports whether nothing needed updating.
func (r *Report) InSync() bool {
	return len(r.UpdatedFiles) == 0 && !r.VersionFileChanged
}

// CollectCounts tallies skills (directories holding a SKILL.md),
// workflow command files, and reference files under root. Absent
// directories count as zero, not errors.
func CollectCounts(root string) (Counts, error) {
	counts := Counts{}

	skillsDir := filepath.Join(root, skillsDirName)
	entries, err := os.ReadDir(skillsDir)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(skillsDir, entry.Name(), "SKILL.md")); err == nil {
				counts.Skills++
			}
		}
	} else if !os.IsNotExist(err) {
		return counts, errors.Wrap(err, "failed to read skills directory")
	}

	refs, err := countGlob(skillsDir, "**/references/*.md")
	if err != nil {
		return counts, err
	}
	counts.ReferenceFiles = refs

	workflows, err := countGlob(filepath.Join(root, commandsDirName), "**/*.md")
	if err != nil {
		return counts, err
	}
	counts.Workflows = workflows

	return counts, nil
}

func countGlob(dir, pattern string) (int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to glob %s under %s", pattern, dir)
	}
	return len(matches), nil
}

// Sync runs one synchronization pass rooted at root.
func Sync(ctx context.Context, root string, opts Options) (*Report, error) {
	log := logger.G(ctx)
	versionPath := filepath.Join(root, versionFileName)

	raw, err := os.ReadFile(versionPath)
	if err != nil {
		return nil, errors.Wrapf(err, "%s not found", versionFileName)
	}

	// Kept as a generic map so keys this tool does not own survive the
	// rewrite.
	var versionData map[string]any
	if err := json.Unmarshal(raw, &versionData); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", versionFileName)
	}

	version, _ := versionData["version"].(string)
	if version == "" {
		version = "0.0.0"
	}

	counts, err := CollectCounts(root)
	if err != nil {
		return nil, err
	}

	report := &Report{Version: version, Counts: counts}

	report.VersionFileChanged = numberField(versionData, "skillCount") != counts.Skills ||
		numberField(versionData, "workflowCount") != counts.Workflows ||
		numberField(versionData, "referenceFileCount") != counts.ReferenceFiles

	if report.VersionFileChanged && !opts.DryRun && !opts.Check {
		versionData["skillCount"] = counts.Skills
		versionData["workflowCount"] = counts.Workflows
		versionData["referenceFileCount"] = counts.ReferenceFiles

		encoded, err := json.MarshalIndent(versionData, "", "  ")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s", versionFileName)
		}
		if err := os.WriteFile(versionPath, append(encoded, '\n'), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", versionFileName)
		}
	}

	for _, target := range targets {
		path := filepath.Join(root, target.path)

		raw, err := os.ReadFile(path)
		if err != nil {
			log.WithField("file", target.path).Debug("target file absent, skipping")
			report.SkippedFiles = append(report.SkippedFiles, target.path)
			continue
		}

		content := string(raw)
		var updated string
		switch target.kind {
		case fileJSON:
			updated = UpdateJSON(content, version, counts)
		case fileMarkdown:
			updated = UpdateMarkdown(content, version, counts)
		case fileHTML:
			updated = UpdateHTML(content, counts)
		}

		if updated == content {
			continue
		}

		report.UpdatedFiles = append(report.UpdatedFiles, target.path)
		if opts.DryRun || opts.Check {
			continue
		}
		if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", target.path)
		}
	}

	return report, nil
}

func numberField(data map[string]any, key string) int {
	if f, ok := data[key].(float64); ok {
		return int(f)
	}
	return -1
}

var (
	jsonVersionRe        = regexp.MustCompile(`"version":\s*"[^"]*"`)
	specializedSkillsRe  = regexp.MustCompile(`(\d+)\s+specialized\s+skills`)
	workflowCommandsRe   = regexp.MustCompile(`(\d+)\s+project\s+workflow\s+commands`)
	versionBadgeRe       = regexp.MustCompile(`version-[\d.]+-blue\.svg`)
	versionHeadingRe     = regexp.MustCompile(`\*\*Version:\*\*\s*v[\d.]+`)
	skillsCountRe        = regexp.MustCompile(`(\d+)\s+[Ss]kills`)
	workflowsCountRe     = regexp.MustCompile(`(\d+)\s+[Ww]orkflows`)
	referenceFilesRe     = regexp.MustCompile(`(\d+)\s+[Rr]eference\s+[Ff]iles`)
	htmlSkillsCountRe    = regexp.MustCompile(`>(\d+)\s+[Ss]kills<`)
	htmlWorkflowsCountRe = regexp.MustCompile(`>(\d+)\s+[Ww]orkflows<`)
	htmlReferenceFilesRe = regexp.MustCompile(`>(\d+)\s+[Rr]eference\s+[Ff]iles<`)
)

// UpdateJSON substitutes the version and counts into plugin manifest
// content.
func UpdateJSON(content, version string, c Counts) string {
	content = jsonVersionRe.ReplaceAllString(content, `"version": "`+version+`"`)
	content = specializedSkillsRe.ReplaceAllString(content, strconv.Itoa(c.Skills)+" specialized skills")
	content = workflowCommandsRe.ReplaceAllString(content, strconv.Itoa(c.Workflows)+" project workflow commands")
	return content
}

// UpdateMarkdown substitutes the version badge, version heading, and
// counts into Markdown content.
func UpdateMarkdown(content, version string, c Counts) string {
	content = versionBadgeRe.ReplaceAllString(content, "version-"+version+"-blue.svg")
	content = versionHeadingRe.ReplaceAllString(content, "**Version:** v"+version)
	content = skillsCountRe.ReplaceAllString(content, strconv.Itoa(c.Skills)+" Skills")
	content = specializedSkillsRe.ReplaceAllString(content, strconv.Itoa(c.Skills)+" specialized skills")
	content = workflowsCountRe.ReplaceAllString(content, strconv.Itoa(c.Workflows)+" Workflows")
	content = workflowCommandsRe.ReplaceAllString(content, strconv.Itoa(c.Workflows)+" project workflow commands")
	content = referenceFilesRe.ReplaceAllString(content, strconv.Itoa(c.ReferenceFiles)+" Reference Files")
	return content
}

// UpdateHTML substitutes counts into the social preview page.
func UpdateHTML(content string, c Counts) string {
	content = htmlSkillsCountRe.ReplaceAllString(content, ">"+strconv.Itoa(c.Skills)+" Skills<")
	content = htmlWorkflowsCountRe.ReplaceAllString(content, ">"+strconv.Itoa(c.Workflows)+" Workflows<")
	content = htmlReferenceFilesRe.ReplaceAllString(content, ">"+strconv.Itoa(c.ReferenceFiles)+" Reference Files<")
	return content
}
