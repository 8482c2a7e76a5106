package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/assemble"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/config"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold config, directories and a starter template",
	Long: `Init creates the configured directories (templates, lists, images,
output), writes a starter template and an example list, and drops a
.questoes.yml config file. Existing files are left untouched.`,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing scaffold files")
}

const defaultConfigFile = `templates:
  dir: ./templates
lists:
  dir: ./lists
images:
  root: ./images
export:
  output_dir: ./out
  columns: 1
  default_scale: 0.5
compiler:
  command: pdflatex
  timeout_seconds: 120
log_level: info
`

const starterTemplate = `\documentclass[12pt]{article}
\usepackage[utf8]{inputenc}
\usepackage{graphicx}
\usepackage{multicol}
\usepackage{enumitem}
\begin{document}

\begin{center}
{{HEADER}}

\textbf{\Large {{TITLE}}}
\end{center}

{{INSTRUCTIONS}}

{{COLUMN_BEGIN}}
{{BODY}}
{{COLUMN_END}}

{{ANSWER_KEY}}

\end{document}
`

const exampleList = `title: Lista de Exemplo
header: Col\'egio Exemplo
instructions: Responda todas as quest\~oes.
questions:
  - id: 1
    kind: OBJECTIVE
    statement: Quanto vale $2 + 2$?
    alternatives:
      - {letter: A, text: "3"}
      - {letter: B, text: "4", correct: true}
      - {letter: C, text: "5"}
  - id: 2
    kind: ESSAY
    statement: Demonstre que a soma de dois pares \'e par.
    essay_answer: Sejam $2a$ e $2b$; a soma $2(a+b)$ \'e par.
`

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for _, dir := range []string{cfg.Templates.Dir, cfg.Lists.Dir, cfg.Images.Root, cfg.Export.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	files := []struct {
		path    string
		content string
	}{
		{".questoes.yml", defaultConfigFile},
		{filepath.Join(cfg.Templates.Dir, "simples"+assemble.TemplateExt), starterTemplate},
		{filepath.Join(cfg.Lists.Dir, "exemplo"+store.ListExt), exampleList},
	}

	for _, f := range files {
		if !initForce {
			if _, err := os.Stat(f.path); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "kept existing %s\n", f.path)
				continue
			}
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "done; try: questoes export exemplo --mode manual")
	return nil
}
