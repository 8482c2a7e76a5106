// Package cmd provides the command-line interface for questoes with
// configuration from multiple sources.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags (--output, --template, ...)
//  2. QUESTOES_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (QUESTOES_EXPORT_OUTPUT_DIR, ...)
//  4. Configuration file (.questoes.yml in the current directory)
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "questoes",
	Short: "Question-list export pipeline",
	Long: `questoes assembles question lists into LaTeX documents and compiles
them to PDF with a hardened pdflatex invocation.

Lists live as YAML files in the configured list directory and templates as
.tex files carrying placeholder tokens. Untrusted question content is
sanitized before it reaches the document; image references are confined to
the image sandbox; the compiler runs with shell escape disabled.

Quick start:
  questoes init                    Scaffold config, directories and a template
  questoes export minha-lista      Compile a list to PDF
  questoes export minha-lista --mode manual   Emit the .tex source only
  questoes templates               List available templates
  questoes watch minha-lista       Re-export whenever the list changes`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .questoes.yml, can also use QUESTOES_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes viper from the config file and QUESTOES_-prefixed
// environment variables. A missing config file is not an error; defaults
// apply.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("QUESTOES_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".questoes")
	}

	viper.SetEnvPrefix("QUESTOES")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}
