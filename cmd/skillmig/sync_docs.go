package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffallan/skillmig/pkg/docsync"
	"github.com/jeffallan/skillmig/pkg/presenter"
)

type SyncDocsConfig struct {
	Check  bool
	DryRun bool
	Root   string
}

func NewSyncDocsConfig() *SyncDocsConfig {
	return &SyncDocsConfig{
		Root: ".",
	}
}

var syncDocsCmd = &cobra.Command{
	Use:   "sync-docs",
	Short: "Update documentation files with version and counts",
	Long: `Read the release version from version.json, count skills, workflow
commands, and reference files on disk, and substitute version and count
strings into the publish-facing documentation files.

Examples:
  skillmig sync-docs           Update all files
  skillmig sync-docs --check   Exit 1 if files are out of sync (no changes)
  skillmig sync-docs --dry-run Show what would change`,
	Run: func(cmd *cobra.Command, _ []string) {
		runSyncDocs(cmd)
	},
}

func init() {
	defaults := NewSyncDocsConfig()
	syncDocsCmd.Flags().Bool("check", defaults.Check, "Check if files are in sync (exit 1 if not)")
	syncDocsCmd.Flags().Bool("dry-run", defaults.DryRun, "Show what would change without making changes")
	syncDocsCmd.Flags().String("root", defaults.Root, "Repository root to operate on")
}

func getSyncDocsConfigFromFlags(cmd *cobra.Command) *SyncDocsConfig {
	config := NewSyncDocsConfig()
	if check, err := cmd.Flags().GetBool("check"); err == nil {
		config.Check = check
	}
	if dryRun, err := cmd.Flags().GetBool("dry-run"); err == nil {
		config.DryRun = dryRun
	}
	if root, err := cmd.Flags().GetString("root"); err == nil && root != "" {
		config.Root = root
	}
	return config
}

func runSyncDocs(cmd *cobra.Command) {
	ctx := cmd.Context()
	config := getSyncDocsConfigFromFlags(cmd)

	report, err := docsync.Sync(ctx, config.Root, docsync.Options{
		DryRun: config.DryRun,
		Check:  config.Check,
	})
	if err != nil {
		presenter.Error(err, "Documentation sync failed")
		os.Exit(1)
	}

	presenter.Info(fmt.Sprintf("Skills: %d", report.Counts.Skills))
	presenter.Info(fmt.Sprintf("Workflows: %d", report.Counts.Workflows))
	presenter.Info(fmt.Sprintf("Reference files: %d", report.Counts.ReferenceFiles))
	presenter.Info("")

	verb := "Updated"
	if config.DryRun || config.Check {
		verb = "Would update"
	}

	if report.VersionFileChanged {
		presenter.Info(verb + " version.json")
	}
	for _, file := range report.UpdatedFiles {
		presenter.Info(fmt.Sprintf("%s %s", verb, file))
	}

	presenter.Info("")
	presenter.Info(fmt.Sprintf("%s %d files with version %s", verb, len(report.UpdatedFiles), report.Version))

	if config.Check && !report.InSync() {
		presenter.Warning("Files are out of sync. Run 'skillmig sync-docs' to update.")
		os.Exit(1)
	}

	presenter.Success("Done")
}
