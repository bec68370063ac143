package estimator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/dartboard/internal/randutil"
	"github.com/lox/dartboard/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// TrialConfig describes a batch of independent estimation runs.
type TrialConfig struct {
	Trials  int
	Darts   int   // per trial
	Seed    int64 // trial i uses Seed+i
	Workers int   // 0 means runtime.NumCPU, capped at 8
	Logger  *log.Logger
	Clock   quartz.Clock
}

// TrialsResult holds every trial, in trial order, and their summary.
type TrialsResult struct {
	Results []Result
	Stats   *statistics.Statistics
	Elapsed time.Duration
}

// RunTrials runs cfg.Trials estimations concurrently. Each trial owns its
// own deterministically seeded source, so the outcome does not depend on the
// number of workers or on scheduling.
func RunTrials(ctx context.Context, cfg TrialConfig) (*TrialsResult, error) {
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoTrials, cfg.Trials)
	}
	if cfg.Darts <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoDarts, cfg.Darts)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}

	logger := cfg.Logger.WithPrefix("trials")
	start := cfg.Clock.Now()
	results := make([]Result, cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < cfg.Trials; i++ {
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			est := New(randutil.New(seed), Config{Clock: cfg.Clock})
			result, err := est.Run(gctx, cfg.Darts)
			if err != nil {
				return fmt.Errorf("trial %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			logger.Debug("Trial finished", "trial", i+1, "seed", seed, "pi", result.Pi)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for i, r := range results {
		stats.Add(statistics.Result{
			Value: r.Pi,
			Hits:  r.Hits,
			Darts: r.Darts,
			Seed:  cfg.Seed + int64(i),
		})
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return &TrialsResult{
		Results: results,
		Stats:   stats,
		Elapsed: cfg.Clock.Since(start),
	}, nil
}
