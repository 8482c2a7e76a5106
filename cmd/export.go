package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <list-id>",
	Short: "Export a question list to PDF or LaTeX source",
	Long: `Export assembles the named question list against a template and either
compiles it to PDF (direct mode, the default) or writes the raw .tex source
(manual mode) into the output directory.

Examples:
  questoes export prova-1                       # Compile prova-1.yaml to PDF
  questoes export prova-1 --mode manual         # Write the .tex source only
  questoes export prova-1 --shuffle --answer-key
  questoes export prova-1 --template duas-colunas --columns 2`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportTemplate    string
	exportMode        string
	exportColumns     int
	exportAnswerKey   bool
	exportResolutions bool
	exportShuffle     bool
	exportScale       float64
	exportOutput      string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	addExportFlags(exportCmd.Flags())
}

// addExportFlags registers the shared export flag set; the watch command
// reuses it so both commands accept identical options.
func addExportFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&exportTemplate, "template", "t", "simples", "Template identifier")
	fs.StringVarP(&exportMode, "mode", "m", "direct", "Export mode (direct, manual)")
	fs.IntVarP(&exportColumns, "columns", "c", 0, "Column layout (1 or 2); 0 uses the configured default")
	fs.BoolVar(&exportAnswerKey, "answer-key", false, "Include the answer key")
	fs.BoolVar(&exportResolutions, "resolutions", false, "Include worked resolutions")
	fs.BoolVar(&exportShuffle, "shuffle", false, "Randomize question order")
	fs.Float64Var(&exportScale, "scale", 0, "Default image scale; 0 uses the configured default")
	fs.StringVarP(&exportOutput, "output", "o", "", "Output directory; overrides the configured default")
}

// exportOptions merges flags with config defaults into one immutable options
// value for the call.
func exportOptions(p *pipeline) (types.ExportOptions, error) {
	mode := types.ExportMode(exportMode)
	switch mode {
	case types.ModeDirect, types.ModeManual:
	default:
		return types.ExportOptions{}, fmt.Errorf("invalid mode %q: use direct or manual", exportMode)
	}

	columns := exportColumns
	if columns == 0 {
		columns = p.cfg.Export.Columns
	}
	if columns != 1 && columns != 2 {
		return types.ExportOptions{}, fmt.Errorf("invalid column layout %d: use 1 or 2", columns)
	}

	scale := exportScale
	if scale <= 0 {
		scale = p.cfg.Export.DefaultScale
	}

	outputDir := exportOutput
	if outputDir == "" {
		outputDir = p.cfg.Export.OutputDir
	}

	return types.ExportOptions{
		Template:          exportTemplate,
		Mode:              mode,
		Columns:           columns,
		IncludeAnswerKey:  exportAnswerKey,
		IncludeResolution: exportResolutions,
		Shuffle:           exportShuffle,
		DefaultScale:      scale,
		OutputDir:         outputDir,
	}, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	opts, err := exportOptions(p)
	if err != nil {
		return err
	}

	artifact, err := p.exporter.Export(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), artifact)
	return nil
}
