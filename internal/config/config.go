// Package config provides configuration management for the questoes CLI
// using Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with the QUESTOES_ prefix, and validation. It manages template
// and list directories, image sandbox location, export defaults, sanitizer
// denylist overrides, and compiler settings.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/sanitize"
)

type Config struct {
	Templates TemplatesConfig `mapstructure:"templates" yaml:"templates"`
	Lists     ListsConfig     `mapstructure:"lists" yaml:"lists"`
	Images    ImagesConfig    `mapstructure:"images" yaml:"images"`
	Export    ExportConfig    `mapstructure:"export" yaml:"export"`
	Compiler  CompilerConfig  `mapstructure:"compiler" yaml:"compiler"`
	Sanitizer SanitizerConfig `mapstructure:"sanitizer" yaml:"sanitizer"`
	LogLevel  string          `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string          `mapstructure:"log_format" yaml:"log_format"`
}

type TemplatesConfig struct {
	// Dir holds the .tex template files
	Dir string `mapstructure:"dir" yaml:"dir"`
}

type ListsConfig struct {
	// Dir holds the .yaml question-list files
	Dir string `mapstructure:"dir" yaml:"dir"`
}

type ImagesConfig struct {
	// Root is the sandbox every image reference must resolve under
	Root string `mapstructure:"root" yaml:"root"`
}

type ExportConfig struct {
	OutputDir    string  `mapstructure:"output_dir" yaml:"output_dir"`
	Columns      int     `mapstructure:"columns" yaml:"columns"`
	DefaultScale float64 `mapstructure:"default_scale" yaml:"default_scale"`
	MinScale     float64 `mapstructure:"min_scale" yaml:"min_scale"`
	MaxScale     float64 `mapstructure:"max_scale" yaml:"max_scale"`
}

type CompilerConfig struct {
	Command        string `mapstructure:"command" yaml:"command"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

type SanitizerConfig struct {
	// Denylist overrides the built-in dangerous-command list when non-empty
	Denylist []string `mapstructure:"denylist" yaml:"denylist"`
	// Marker overrides the shell-escape neutralization marker
	Marker string `mapstructure:"marker" yaml:"marker"`
}

// Load builds a Config from viper's merged state (flags > env > file) and
// applies defaults and validation.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.ConfigInvalid("unmarshal: " + err.Error())
	}

	if config.Templates.Dir == "" {
		config.Templates.Dir = "./templates"
	}
	if config.Lists.Dir == "" {
		config.Lists.Dir = "./lists"
	}
	if config.Images.Root == "" {
		config.Images.Root = "./images"
	}

	if config.Export.OutputDir == "" {
		config.Export.OutputDir = "./out"
	}
	if config.Export.Columns == 0 {
		config.Export.Columns = 1
	}
	if config.Export.DefaultScale <= 0 {
		config.Export.DefaultScale = 0.5
	}
	if config.Export.MinScale <= 0 {
		config.Export.MinScale = sanitize.DefaultMinScale
	}
	if config.Export.MaxScale <= 0 {
		config.Export.MaxScale = sanitize.DefaultMaxScale
	}

	if config.Compiler.Command == "" {
		config.Compiler.Command = "pdflatex"
	}
	if config.Compiler.TimeoutSeconds == 0 {
		config.Compiler.TimeoutSeconds = 120
	}

	// log-level is bound to the persistent CLI flag, log_level to file/env.
	if config.LogLevel == "" {
		config.LogLevel = viper.GetString("log-level")
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// CompileTimeout returns the compiler timeout as a duration.
func (c *Config) CompileTimeout() time.Duration {
	return time.Duration(c.Compiler.TimeoutSeconds) * time.Second
}

func validate(config *Config) error {
	if config.Export.Columns != 1 && config.Export.Columns != 2 {
		return errors.ConfigInvalid("export.columns must be 1 or 2")
	}
	if config.Export.MinScale > config.Export.MaxScale {
		return errors.ConfigInvalid("export.min_scale exceeds export.max_scale")
	}
	if config.Compiler.TimeoutSeconds < 0 {
		return errors.ConfigInvalid("compiler.timeout_seconds must not be negative")
	}
	switch config.LogFormat {
	case "text", "json":
	default:
		return errors.ConfigInvalid("log_format must be text or json")
	}
	return nil
}
