package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tfoods/internal/runlog"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show sync run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := runlog.Open(cfg.RunHistoryPath())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			headers := []string{"Started", "Duration", "Status", "Parsed", "Foods", "Created", "Updated", "Disabled", "Corrupt"}
			aligns := []columnAlignment{
				alignLeft, alignRight, alignLeft,
				alignRight, alignRight, alignRight, alignRight, alignRight, alignRight,
			}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				status := rec.Status
				if rec.DryRun {
					status += " (dry)"
				}
				rows = append(rows, []string{
					rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
					formatDuration(rec.Duration()),
					status,
					fmt.Sprintf("%d", rec.DocumentsParsed),
					fmt.Sprintf("%d", rec.FoodOutputs),
					fmt.Sprintf("%d", rec.NodesCreated),
					fmt.Sprintf("%d", rec.NodesUpdated),
					fmt.Sprintf("%d", rec.NodesDisabled),
					fmt.Sprintf("%d", rec.NodesCorrupt),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum runs to show (0 for all)")

	return cmd
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
