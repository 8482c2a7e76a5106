package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./templates", cfg.Templates.Dir)
	assert.Equal(t, "./lists", cfg.Lists.Dir)
	assert.Equal(t, "./images", cfg.Images.Root)
	assert.Equal(t, "./out", cfg.Export.OutputDir)
	assert.Equal(t, 1, cfg.Export.Columns)
	assert.Equal(t, 0.5, cfg.Export.DefaultScale)
	assert.Equal(t, "pdflatex", cfg.Compiler.Command)
	assert.Equal(t, 120, cfg.Compiler.TimeoutSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Positive(t, cfg.CompileTimeout())
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("templates.dir", "/srv/templates")
	viper.Set("export.columns", 2)
	viper.Set("compiler.command", "lualatex")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/templates", cfg.Templates.Dir)
	assert.Equal(t, 2, cfg.Export.Columns)
	assert.Equal(t, "lualatex", cfg.Compiler.Command)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"bad columns", "export.columns", 3},
		{"negative timeout", "compiler.timeout_seconds", -1},
		{"bad log format", "log_format", "xml"},
		{"scale bounds inverted", "export.min_scale", 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set(tt.key, tt.value)

			_, err := Load()
			assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid), "got %v", err)
		})
	}
}
