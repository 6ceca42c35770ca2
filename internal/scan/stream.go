package scan

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"tfoods/internal/directmap"
	"tfoods/internal/logging"
	"tfoods/internal/recipe"
)

// Counters tallies what a scan saw. All fields are totals across sources.
type Counters struct {
	Sources          int64
	DocumentsParsed  int64
	DocumentsSkipped int64
	ArchivesSkipped  int64
	PairsMerged      int64
}

type counterCells struct {
	parsed   atomic.Int64
	skipped  atomic.Int64
	archives atomic.Int64
	pairs    atomic.Int64
}

// Options configures a scan-and-extract pass.
type Options struct {
	// Workers bounds source-level parallelism. Values below one fall back
	// to the number of sources.
	Workers int
	// ExtraFluidFields extends the recognized top-level fluid field names.
	ExtraFluidFields []string
}

// Extract walks every source, extracts (outputs, tokens) pairs from each
// recipe document, and folds them into a direct map through a single-writer
// reducer. Sources are processed on a bounded worker pool; per-document and
// per-archive failures are counted and skipped, never fatal.
func Extract(ctx context.Context, logger *slog.Logger, sources []Source, opts Options) (directmap.Map, Counters, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	workers := opts.Workers
	if workers < 1 {
		workers = len(sources)
	}
	if workers < 1 {
		workers = 1
	}

	pairs := make(chan directmap.Pair, 64)
	cells := &counterCells{}

	reduced := make(chan struct{})
	var m directmap.Map
	var reduceErr error
	go func() {
		defer close(reduced)
		m, reduceErr = directmap.Reduce(ctx, pairs)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, src := range sources {
		src := src
		g.Go(func() error {
			return scanSource(gctx, logger, src, opts.ExtraFluidFields, cells, pairs)
		})
	}
	walkErr := g.Wait()
	close(pairs)
	<-reduced

	counters := Counters{
		Sources:          int64(len(sources)),
		DocumentsParsed:  cells.parsed.Load(),
		DocumentsSkipped: cells.skipped.Load(),
		ArchivesSkipped:  cells.archives.Load(),
		PairsMerged:      cells.pairs.Load(),
	}

	if walkErr != nil {
		return nil, counters, walkErr
	}
	if reduceErr != nil {
		return nil, counters, reduceErr
	}
	return m, counters, nil
}

func scanSource(ctx context.Context, logger *slog.Logger, src Source, extraFluidFields []string, cells *counterCells, pairs chan<- directmap.Pair) error {
	visit := func(doc recipe.Document) bool {
		pair := directmap.Pair{
			Outputs: recipe.ExtractOutputs(doc.Body),
			Tokens:  recipe.ExtractIngredients(doc.Body, extraFluidFields),
		}
		if len(pair.Outputs) == 0 || len(pair.Tokens) == 0 {
			return ctx.Err() == nil
		}
		select {
		case pairs <- pair:
			cells.pairs.Add(1)
			return true
		case <-ctx.Done():
			return false
		}
	}

	var parsed, skipped int
	var err error
	switch src.Kind {
	case SourceJar:
		parsed, skipped, err = walkJar(src, visit)
	default:
		parsed, skipped, err = walkDir(src, visit)
	}

	cells.parsed.Add(int64(parsed))
	cells.skipped.Add(int64(skipped))

	if err != nil {
		// An unreadable archive or tree skips that source only.
		cells.archives.Add(1)
		logger.Warn("skipping unreadable source",
			logging.String(logging.FieldSource, src.ID()),
			logging.Error(err))
	}
	return ctx.Err()
}
