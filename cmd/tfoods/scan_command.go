package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tfoods/internal/artifact"
	"tfoods/internal/config"
	"tfoods/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		outPath     string
		workers     int
		fluidFields []string
	)

	cmd := &cobra.Command{
		Use:   "scan [source...]",
		Short: "Extract recipes without touching the registry",
		Long: `Scan builds the direct ingredient map from the given sources and prints a
summary. Nothing is reconciled; use --out to keep the map.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = cfg.Scan.Inputs
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no recipe sources given (pass paths or set scan.inputs)")
			}
			expanded := make([]string, 0, len(inputs))
			for _, input := range inputs {
				path, err := config.ExpandPath(strings.TrimSpace(input))
				if err != nil {
					return fmt.Errorf("resolve source %q: %w", input, err)
				}
				expanded = append(expanded, path)
			}

			sources, err := scan.Discover(expanded)
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			scanWorkers := cfg.Scan.Workers
			if workers > 0 {
				scanWorkers = workers
			}
			m, counters, err := scan.Extract(cmd.Context(), logger, sources, scan.Options{
				Workers:          scanWorkers,
				ExtraFluidFields: append(append([]string(nil), cfg.Scan.ExtraFluidFields...), fluidFields...),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %d sources: %d recipes parsed, %d skipped, %d sources unreadable\n",
				counters.Sources, counters.DocumentsParsed,
				counters.DocumentsSkipped, counters.ArchivesSkipped)
			fmt.Fprintf(out, "Direct map: %d outputs\n", len(m))

			if outPath != "" {
				target, err := config.ExpandPath(outPath)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := artifact.WriteDirectMap(target, m); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote direct ingredient map to %s\n", target)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the direct ingredient map to this file")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent source readers (default from config)")
	cmd.Flags().StringSliceVar(&fluidFields, "fluid-field", nil, "Extra recipe fields to treat as fluid ingredients")

	return cmd
}
