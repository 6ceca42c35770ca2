package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tfoods/internal/config"
	"tfoods/internal/pipeline"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var (
		ediblesFlag        string
		registryFlag       string
		directMapOut       string
		dryRun             bool
		workers            int
		fluidFields        []string
		includeIngredients bool
	)

	cmd := &cobra.Command{
		Use:   "sync [source...]",
		Short: "Extract recipes and reconcile the food registry",
		Long: `Sync walks the given recipe sources (mod jars, mods directories, or
extracted datapack roots), builds the direct ingredient map, and reconciles
the registry: one JSON node per food item, created or refreshed in place,
never deleted. Operator-curated fields are never overwritten.

Sources default to scan.inputs from the configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("include-ingredients") {
				includeIngredients = cfg.Sync.IncludeIngredientNodes
			}

			opts, err := buildRunOptions(cfg, args, runFlags{
				edibles:            ediblesFlag,
				registry:           registryFlag,
				directMapOut:       directMapOut,
				workers:            workers,
				fluidFields:        fluidFields,
				includeIngredients: includeIngredients,
				dryRun:             dryRun,
			})
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			opts.Logger = logger

			res, err := pipeline.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			printRunSummary(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ediblesFlag, "edibles", "e", "", "Edible item list (JSON)")
	cmd.Flags().StringVarP(&registryFlag, "registry", "r", "", "Registry root directory")
	cmd.Flags().StringVar(&directMapOut, "direct-map-out", "", "Also write the direct ingredient map here")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report intended changes without writing anything")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent source readers (default from config)")
	cmd.Flags().StringSliceVar(&fluidFields, "fluid-field", nil, "Extra recipe fields to treat as fluid ingredients")
	cmd.Flags().BoolVar(&includeIngredients, "include-ingredients", true, "Keep a node per item-kind ingredient too")

	return cmd
}

type runFlags struct {
	edibles            string
	registry           string
	directMapOut       string
	workers            int
	fluidFields        []string
	includeIngredients bool
	dryRun             bool
}

func buildRunOptions(cfg *config.Config, args []string, flags runFlags) (pipeline.Options, error) {
	opts := pipeline.Options{
		EdiblesPath:        cfg.Paths.EdiblesPath,
		RegistryDir:        cfg.Paths.RegistryDir,
		DirectMapOut:       cfg.Paths.DirectMapOut,
		RunHistoryPath:     cfg.RunHistoryPath(),
		Workers:            cfg.Scan.Workers,
		ExtraFluidFields:   append([]string(nil), cfg.Scan.ExtraFluidFields...),
		IncludeIngredients: flags.includeIngredients,
		ManualFields:       append([]string(nil), cfg.Sync.ManualFields...),
		DryRun:             flags.dryRun,
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = cfg.Scan.Inputs
	}
	for _, input := range inputs {
		expanded, err := config.ExpandPath(strings.TrimSpace(input))
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("resolve source %q: %w", input, err)
		}
		opts.Inputs = append(opts.Inputs, expanded)
	}

	var err error
	if flags.edibles != "" {
		if opts.EdiblesPath, err = config.ExpandPath(flags.edibles); err != nil {
			return pipeline.Options{}, fmt.Errorf("resolve edibles path: %w", err)
		}
	}
	if flags.registry != "" {
		if opts.RegistryDir, err = config.ExpandPath(flags.registry); err != nil {
			return pipeline.Options{}, fmt.Errorf("resolve registry path: %w", err)
		}
	}
	if flags.directMapOut != "" {
		if opts.DirectMapOut, err = config.ExpandPath(flags.directMapOut); err != nil {
			return pipeline.Options{}, fmt.Errorf("resolve direct map path: %w", err)
		}
	}
	if flags.workers > 0 {
		opts.Workers = flags.workers
	}
	opts.ExtraFluidFields = append(opts.ExtraFluidFields, flags.fluidFields...)

	return opts, nil
}

func printRunSummary(cmd *cobra.Command, res pipeline.Result) {
	out := cmd.OutOrStdout()

	if res.DryRun {
		fmt.Fprintln(out, "Dry run: no files were written.")
	}
	fmt.Fprintf(out, "Scanned %d sources: %d recipes parsed, %d skipped, %d sources unreadable\n",
		res.Counters.Sources, res.Counters.DocumentsParsed,
		res.Counters.DocumentsSkipped, res.Counters.ArchivesSkipped)
	fmt.Fprintf(out, "Foods: %d edible outputs of %d recipe outputs\n",
		res.Foods.FoodCount, len(res.Map))
	fmt.Fprintf(out, "Registry: %d created, %d updated, %d disabled\n",
		res.Registry.Created, res.Registry.Updated, res.Registry.Disabled)

	if len(res.Anomalies) > 0 {
		fmt.Fprintf(out, "Warning: %d corrupt node records were left untouched:\n", len(res.Anomalies))
		for _, anomaly := range res.Anomalies {
			fmt.Fprintf(out, "  %s (%s)\n", anomaly.ID, anomaly.Path)
		}
	}
}
