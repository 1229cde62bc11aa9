// skillmig migrates Agent Skill SKILL.md frontmatter to the
// canonical layout and keeps publish-facing docs in sync with the
// on-disk skill collection.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeffallan/skillmig/pkg/logger"
	"github.com/jeffallan/skillmig/pkg/migrate"
	"github.com/jeffallan/skillmig/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLMIG")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillmig")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	viper.SetDefault("skills_dir", "skills")
	viper.SetDefault("author", migrate.DefaultAuthor)
}

var rootCmd = &cobra.Command{
	Use:   "skillmig",
	Short: "Migrate skill frontmatter to the Agent Skills layout",
	Long: `skillmig rewrites the SKILL.md frontmatter of every skill in the
collection into the Agent Skills structure: triggers,
role, scope, and output-format move under a metadata group, and
license, author, version, and domain are added.

A second pass extracts related-skill references from each document's
"## Related Skills" body section into metadata.related-skills.

Examples:
  skillmig                            Migrate all skills
  skillmig --dry-run                  Preview changes without writing
  skillmig --skill react-expert       Migrate a single skill
  skillmig --related-skills           Add related-skills metadata
  skillmig --related-skills --dry-run Preview related-skills values`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level, _ := cmd.Flags().GetString("log-level")
		if err := logger.SetLogLevel(level); err != nil {
			presenter.Warning("Invalid log level, using default")
		}
		format, _ := cmd.Flags().GetString("log-format")
		logger.SetLogFormat(format)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		runMigrate(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt or json)")

	rootCmd.Flags().Bool("dry-run", false, "Preview changes without writing files")
	rootCmd.Flags().String("skill", "", "Migrate only the specified skill")
	rootCmd.Flags().Bool("related-skills", false, "Add related-skills metadata extracted from the ## Related Skills body section")
	rootCmd.Flags().String("skills-dir", "", "Directory containing skill subdirectories (overrides config)")

	viper.BindPFlag("skills_dir", rootCmd.Flags().Lookup("skills-dir"))

	rootCmd.AddCommand(syncDocsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
