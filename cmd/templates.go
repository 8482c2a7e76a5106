package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/assemble"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/config"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available document templates",
	RunE:  runTemplates,
}

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "List available question lists",
	RunE:  runLists,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(listsCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	names, err := assemble.NewTemplateStore(cfg.Templates.Dir).List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no templates in %s (run 'questoes init')\n", cfg.Templates.Dir)
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runLists(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	ids, err := p.store.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no lists in %s\n", p.cfg.Lists.Dir)
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
