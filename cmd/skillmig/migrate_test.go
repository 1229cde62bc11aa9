package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMigrateConfigFromFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := getMigrateConfigFromFlags(rootCmd)
		assert.False(t, config.DryRun)
		assert.False(t, config.RelatedSkills)
		assert.Empty(t, config.Skill)
		assert.Equal(t, "skills", config.SkillsDir)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		require.NoError(t, rootCmd.Flags().Set("dry-run", "true"))
		require.NoError(t, rootCmd.Flags().Set("skill", "react-expert"))
		require.NoError(t, rootCmd.Flags().Set("related-skills", "true"))
		require.NoError(t, rootCmd.Flags().Set("skills-dir", "/tmp/skills"))
		defer func() {
			_ = rootCmd.Flags().Set("dry-run", "false")
			_ = rootCmd.Flags().Set("skill", "")
			_ = rootCmd.Flags().Set("related-skills", "false")
			_ = rootCmd.Flags().Set("skills-dir", "")
		}()

		config := getMigrateConfigFromFlags(rootCmd)
		assert.True(t, config.DryRun)
		assert.True(t, config.RelatedSkills)
		assert.Equal(t, "react-expert", config.Skill)
		assert.Equal(t, "/tmp/skills", config.SkillsDir)
	})
}

func TestGetSyncDocsConfigFromFlags(t *testing.T) {
	config := getSyncDocsConfigFromFlags(syncDocsCmd)
	assert.False(t, config.Check)
	assert.False(t, config.DryRun)
	assert.Equal(t, ".", config.Root)
}
