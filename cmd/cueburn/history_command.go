package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"cueburn/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent renders from the local ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled in configuration (history.enabled = false)")
			}

			store, err := history.Open(cmd.Context(), cfg.History.Dir)
			if err != nil {
				return err
			}
			defer store.Close()

			renders, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(renders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no renders recorded")
				return nil
			}

			rows := make([][]string, 0, len(renders))
			for _, render := range renders {
				rows = append(rows, []string{
					fmt.Sprintf("%d", render.ID),
					render.CreatedAt.Local().Format("2006-01-02 15:04"),
					filepath.Base(render.Source),
					fmt.Sprintf("%d", render.EventCount),
					fmt.Sprintf("%d", render.WarningCount),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "When", "Source", "Events", "Warnings"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of renders to list")
	return cmd
}
