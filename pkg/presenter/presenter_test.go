package presenter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		skillmigColor string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLMIG_COLOR always", "", "always", ColorAlways},
		{"SKILLMIG_COLOR force", "", "force", ColorAlways},
		{"SKILLMIG_COLOR never", "", "never", ColorNever},
		{"SKILLMIG_COLOR off", "", "off", ColorNever},
		{"default", "", "", ColorAuto},
		{"unknown value", "", "rainbow", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLMIG_COLOR")
			if tt.noColor != "" {
				t.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.skillmigColor != "" {
				t.Setenv("SKILLMIG_COLOR", tt.skillmigColor)
			}

			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}

func TestError(t *testing.T) {
	var errorOutput bytes.Buffer
	p := NewWithOptions(nil, &errorOutput, ColorNever)

	t.Run("with context", func(t *testing.T) {
		errorOutput.Reset()
		p.Error(errors.New("boom"), "migration failed")
		assert.Equal(t, "[ERROR] migration failed: boom\n", errorOutput.String())
	})

	t.Run("without context", func(t *testing.T) {
		errorOutput.Reset()
		p.Error(errors.New("boom"), "")
		assert.Equal(t, "[ERROR] boom\n", errorOutput.String())
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		errorOutput.Reset()
		p.Error(nil, "context")
		assert.Empty(t, errorOutput.String())
	})
}

func TestMessages(t *testing.T) {
	var output bytes.Buffer
	p := NewWithOptions(&output, nil, ColorNever)

	p.Success("done")
	p.Warning("careful")
	p.Info("note")

	assert.Contains(t, output.String(), "✓ done\n")
	assert.Contains(t, output.String(), "⚠ careful\n")
	assert.Contains(t, output.String(), "note\n")
}

func TestSection(t *testing.T) {
	var output bytes.Buffer
	p := NewWithOptions(&output, nil, ColorNever)

	p.Section("react-expert")
	assert.Equal(t, "react-expert\n------------\n", output.String())
}

func TestQuietMode(t *testing.T) {
	var output, errorOutput bytes.Buffer
	p := NewWithOptions(&output, &errorOutput, ColorNever)
	p.SetQuiet(true)

	assert.True(t, p.IsQuiet())

	p.Success("done")
	p.Warning("careful")
	p.Info("note")
	p.Section("title")
	p.Separator()
	assert.Empty(t, output.String())

	// Errors always surface.
	p.Error(errors.New("boom"), "")
	assert.NotEmpty(t, errorOutput.String())
}
