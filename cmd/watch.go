package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/store"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <list-id>",
	Short: "Re-export a list whenever its file changes",
	Long: `Watch performs an initial export of the named list, then watches the list
file and re-exports on every change until interrupted. All export flags
apply.

Example:
  questoes watch prova-1 --mode manual --answer-key`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	// Watch shares the export flag set: same option names, same semantics.
	addExportFlags(watchCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	opts, err := exportOptions(p)
	if err != nil {
		return err
	}

	listID := args[0]
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runOnce := func(ctx context.Context) error {
		artifact, err := p.exporter.Export(ctx, listID, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), artifact)
		return nil
	}

	if err := runOnce(ctx); err != nil {
		// Keep watching: the author may be mid-edit on a broken list.
		p.logger.Error(ctx, err, "initial export failed", "list", listID)
	}

	listPath := filepath.Join(p.cfg.Lists.Dir, listID+store.ListExt)
	w := watcher.NewListWatcher(listPath, watcher.DefaultDebounce, p.logger)
	if err := w.Watch(ctx, runOnce); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
