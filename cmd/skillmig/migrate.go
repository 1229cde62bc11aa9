package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeffallan/skillmig/pkg/migrate"
	"github.com/jeffallan/skillmig/pkg/presenter"
)

type MigrateConfig struct {
	DryRun        bool
	Skill         string
	RelatedSkills bool
	SkillsDir     string
}

func NewMigrateConfig() *MigrateConfig {
	return &MigrateConfig{
		SkillsDir: viper.GetString("skills_dir"),
	}
}

func getMigrateConfigFromFlags(cmd *cobra.Command) *MigrateConfig {
	config := NewMigrateConfig()
	if dryRun, err := cmd.Flags().GetBool("dry-run"); err == nil {
		config.DryRun = dryRun
	}
	if skill, err := cmd.Flags().GetString("skill"); err == nil {
		config.Skill = skill
	}
	if related, err := cmd.Flags().GetBool("related-skills"); err == nil {
		config.RelatedSkills = related
	}
	if dir, err := cmd.Flags().GetString("skills-dir"); err == nil && dir != "" {
		config.SkillsDir = dir
	}
	return config
}

func runMigrate(cmd *cobra.Command) {
	ctx := cmd.Context()
	config := getMigrateConfigFromFlags(cmd)

	m, err := migrate.New(
		migrate.WithSkillsDir(config.SkillsDir),
		migrate.WithSkill(config.Skill),
		migrate.WithDryRun(config.DryRun),
		migrate.WithAuthor(viper.GetString("author")),
	)
	if err != nil {
		presenter.Error(err, "Failed to initialize migrator")
		os.Exit(1)
	}

	if config.RelatedSkills {
		report, err := m.MigrateRelated(ctx)
		if err != nil {
			presenter.Error(err, "Related-skills migration failed")
			os.Exit(1)
		}
		printRelatedReport(report)
		if report.Failed() > 0 {
			os.Exit(1)
		}
		return
	}

	unmapped, err := m.Unmapped()
	if err != nil {
		presenter.Error(err, "Migration failed")
		os.Exit(1)
	}
	if len(unmapped) > 0 {
		presenter.Warning("Skills without domain mapping: " + strings.Join(unmapped, ", "))
		presenter.Info("These will get domain 'unknown'.")
		presenter.Info("")
	}

	report, err := m.Migrate(ctx)
	if err != nil {
		presenter.Error(err, "Migration failed")
		os.Exit(1)
	}
	printMigrateReport(report)
	if report.Failed() > 0 {
		os.Exit(1)
	}
}

func printMigrateReport(report *migrate.Report) {
	for _, res := range report.Results {
		switch {
		case res.Outcome == migrate.OutcomeFailed:
			presenter.Error(errors.New(res.Message), res.Skill)
		case report.DryRun && res.Preview != "":
			presenter.Separator()
			presenter.Section(res.Skill)
			presenter.Info(res.Preview)
		}
	}

	printSummary("Migration", report)
}

func printRelatedReport(report *migrate.Report) {
	for _, res := range report.Results {
		switch {
		case res.Outcome == migrate.OutcomeFailed:
			presenter.Error(errors.New(res.Message), res.Skill)
		case report.DryRun && res.Outcome == migrate.OutcomeMigrated:
			value := res.Preview
			if value == "" {
				value = "(empty)"
			}
			presenter.Info(fmt.Sprintf("  %s: related-skills: %s", res.Skill, value))
		}
	}

	printSummary("Related-skills migration", report)
}

func printSummary(pass string, report *migrate.Report) {
	state := "complete"
	if report.DryRun {
		state = "preview"
	}

	presenter.Info("")
	presenter.Info(fmt.Sprintf("%s %s:", pass, state))
	presenter.Info(fmt.Sprintf("  Migrated: %d", report.Migrated()))
	presenter.Info(fmt.Sprintf("  Skipped:  %d", report.Skipped()))
	presenter.Info(fmt.Sprintf("  Failed:   %d", report.Failed()))
	presenter.Info(fmt.Sprintf("  Total:    %d", report.Total()))
}
