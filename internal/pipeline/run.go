package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"tfoods/internal/artifact"
	"tfoods/internal/directmap"
	"tfoods/internal/edible"
	"tfoods/internal/logging"
	"tfoods/internal/registry"
	"tfoods/internal/runlog"
	"tfoods/internal/scan"
)

// Options configures one sync run.
type Options struct {
	// Inputs are the recipe sources: mod jars, mods directories, or
	// extracted datapack roots. At least one is required.
	Inputs []string
	// EdiblesPath is the curated edible item list. Required.
	EdiblesPath string
	// RegistryDir is the registry root. Required.
	RegistryDir string
	// DirectMapOut optionally persists a copy of the direct ingredient map
	// outside the registry.
	DirectMapOut string
	// RunHistoryPath is the run history database. Empty disables recording.
	RunHistoryPath string

	Workers            int
	ExtraFluidFields   []string
	IncludeIngredients bool
	ManualFields       []string

	// DryRun executes the full pipeline without any filesystem writes.
	DryRun bool

	Logger *slog.Logger
}

// Result summarizes one completed run.
type Result struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	DryRun     bool

	Map       directmap.Map
	Counters  scan.Counters
	Foods     artifact.FoodList
	Registry  registry.Stats
	Anomalies []registry.Anomaly
}

// Run executes one sync: check preconditions, lock the registry, extract
// recipes into a direct map, reconcile the registry, write artifacts, and
// append the run history row. Precondition failures return ErrPrecondition
// before anything is locked or written.
func Run(ctx context.Context, opts Options) (Result, error) {
	runID := uuid.NewString()
	logger := logging.WithComponent(opts.Logger, "pipeline").With(
		logging.String(logging.FieldRunID, runID))

	res := Result{RunID: runID, StartedAt: time.Now().UTC(), DryRun: opts.DryRun}

	if err := checkPreconditions(opts); err != nil {
		return res, err
	}

	edibles, err := edible.Load(opts.EdiblesPath)
	if err != nil {
		return res, Wrap(ErrPrecondition, "pipeline", "load edibles", opts.EdiblesPath, err)
	}

	sources, err := scan.Discover(opts.Inputs)
	if err != nil {
		return res, Wrap(ErrPrecondition, "pipeline", "discover sources", "", err)
	}

	if !opts.DryRun {
		lock, err := registry.AcquireLock(opts.RegistryDir)
		if err != nil {
			if errors.Is(err, registry.ErrLocked) {
				return res, Wrap(ErrLocked, "pipeline", "acquire lock", opts.RegistryDir, err)
			}
			return res, Wrap(ErrInternal, "pipeline", "acquire lock", opts.RegistryDir, err)
		}
		defer func() { _ = lock.Release() }()
	}

	logger.Info("run started",
		logging.Int("sources", len(sources)),
		logging.Bool("dry_run", opts.DryRun))

	runErr := execute(ctx, logger, opts, edibles, sources, &res)
	res.FinishedAt = time.Now().UTC()

	if recErr := record(ctx, opts, res, runErr); recErr != nil {
		logger.Warn("run history not recorded", logging.Error(recErr))
	}

	if runErr != nil {
		return res, runErr
	}

	logger.Info("run complete",
		logging.Int64("documents_parsed", res.Counters.DocumentsParsed),
		logging.Int("food_outputs", res.Foods.FoodCount),
		logging.Int("nodes_created", res.Registry.Created),
		logging.Int("nodes_updated", res.Registry.Updated),
		logging.Int("nodes_disabled", res.Registry.Disabled),
		logging.Int("nodes_corrupt", res.Registry.Corrupt))
	return res, nil
}

func execute(ctx context.Context, logger *slog.Logger, opts Options, edibles edible.Set, sources []scan.Source, res *Result) error {
	m, counters, err := scan.Extract(ctx, logger, sources, scan.Options{
		Workers:          opts.Workers,
		ExtraFluidFields: opts.ExtraFluidFields,
	})
	res.Counters = counters
	if err != nil {
		return Wrap(ErrInternal, "scan", "extract", "", err)
	}
	res.Map = m

	logger.Info("extraction complete",
		logging.Int64("documents_parsed", counters.DocumentsParsed),
		logging.Int64("documents_skipped", counters.DocumentsSkipped),
		logging.Int64("archives_skipped", counters.ArchivesSkipped),
		logging.Int("outputs", len(m)))

	layout := registry.Layout{Root: opts.RegistryDir}
	expected := registry.ComputeExpected(m, opts.IncludeIngredients)
	stats, anomalies, err := registry.Sync(layout, expected, m, edibles, registry.SyncOptions{
		IncludeIngredients: opts.IncludeIngredients,
		ManualFields:       opts.ManualFields,
		DryRun:             opts.DryRun,
		Logger:             logger,
	})
	res.Registry = stats
	res.Anomalies = anomalies
	if err != nil {
		return Wrap(ErrInternal, "registry", "sync", "", err)
	}

	res.Foods = artifact.BuildFoodList(m, edibles)

	if opts.DryRun {
		return nil
	}

	generated := layout.GeneratedDir()
	if err := artifact.WriteFoodList(generated, res.Foods); err != nil {
		return Wrap(ErrInternal, "artifact", "write foods", "", err)
	}
	if err := artifact.WriteStats(generated, buildStats(*res, len(edibles))); err != nil {
		return Wrap(ErrInternal, "artifact", "write stats", "", err)
	}
	if opts.DirectMapOut != "" {
		if err := artifact.WriteDirectMap(opts.DirectMapOut, m); err != nil {
			return Wrap(ErrInternal, "artifact", "write direct map", opts.DirectMapOut, err)
		}
	}
	return nil
}

func checkPreconditions(opts Options) error {
	if opts.RegistryDir == "" {
		return Wrap(ErrPrecondition, "pipeline", "check inputs", "registry directory not set", nil)
	}
	if opts.EdiblesPath == "" {
		return Wrap(ErrPrecondition, "pipeline", "check inputs", "edibles list not set", nil)
	}
	if _, err := os.Stat(opts.EdiblesPath); err != nil {
		return Wrap(ErrPrecondition, "pipeline", "check inputs", fmt.Sprintf("edibles list %s", opts.EdiblesPath), err)
	}
	if len(opts.Inputs) == 0 {
		return Wrap(ErrPrecondition, "pipeline", "check inputs", "no recipe sources", nil)
	}
	for _, input := range opts.Inputs {
		if _, err := os.Stat(input); err != nil {
			return Wrap(ErrPrecondition, "pipeline", "check inputs", fmt.Sprintf("source %s", input), err)
		}
	}
	return nil
}

// record appends the run to history. Dry runs leave no trace.
func record(ctx context.Context, opts Options, res Result, runErr error) error {
	if opts.DryRun || opts.RunHistoryPath == "" {
		return nil
	}

	store, err := runlog.Open(opts.RunHistoryPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rec := runlog.Record{
		ID:               res.RunID,
		StartedAt:        res.StartedAt,
		FinishedAt:       res.FinishedAt,
		DryRun:           res.DryRun,
		Status:           runlog.StatusCompleted,
		Sources:          int(res.Counters.Sources),
		DocumentsParsed:  int(res.Counters.DocumentsParsed),
		DocumentsSkipped: int(res.Counters.DocumentsSkipped),
		ArchivesSkipped:  int(res.Counters.ArchivesSkipped),
		FoodOutputs:      res.Foods.FoodCount,
		NodesCreated:     res.Registry.Created,
		NodesUpdated:     res.Registry.Updated,
		NodesDisabled:    res.Registry.Disabled,
		NodesCorrupt:     res.Registry.Corrupt,
	}
	if runErr != nil {
		rec.Status = runlog.StatusFailed
		rec.Error = runErr.Error()
	}
	return store.Append(ctx, rec)
}

func buildStats(res Result, edibleItems int) artifact.Stats {
	return artifact.Stats{
		"sources":                 int(res.Counters.Sources),
		"documents_parsed":        int(res.Counters.DocumentsParsed),
		"documents_skipped":       int(res.Counters.DocumentsSkipped),
		"archives_skipped":        int(res.Counters.ArchivesSkipped),
		"direct_map_output_count": len(res.Map),
		"edible_item_count":       edibleItems,
		"food_outputs":            res.Foods.FoodCount,
		"nodes_created":           res.Registry.Created,
		"nodes_updated":           res.Registry.Updated,
		"nodes_disabled":          res.Registry.Disabled,
		"nodes_corrupt":           res.Registry.Corrupt,
	}
}
