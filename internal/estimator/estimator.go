// Package estimator approximates pi by throwing darts uniformly at the
// [-1,1]x[-1,1] board and counting how many land inside the unit circle.
package estimator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/randutil"
	"github.com/lox/dartboard/internal/sampling"
)

var (
	ErrNoDarts  = errors.New("number of darts must be positive")
	ErrNoTrials = errors.New("number of trials must be positive")
)

// cancellation is polled every this many darts
const checkEvery = 4096

// Dart is one throw as seen by observers.
type Dart struct {
	Index int
	Point board.Point
	Hit   bool
}

// Result is the outcome of one estimation run.
type Result struct {
	Darts   int
	Hits    int
	Pi      float64
	Error   float64 // Pi - math.Pi
	Elapsed time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("pi≈%.6f (%d/%d darts in circle, error %+.6f)", r.Pi, r.Hits, r.Darts, r.Error)
}

// Config holds the optional collaborators of an Estimator.
type Config struct {
	Renderer board.Renderer
	Logger   *log.Logger
	Clock    quartz.Clock
	OnDart   func(Dart)
}

// Estimator runs the dart simulation against a single random source.
type Estimator struct {
	sampler *sampling.Sampler
	config  Config
}

// New creates an estimator drawing from src.
func New(src randutil.Source, config Config) *Estimator {
	if config.Renderer == nil {
		config.Renderer = board.Discard
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Estimator{sampler: sampling.New(src), config: config}
}

// Estimate throws numDarts darts from src and returns hits/numDarts*4.
func Estimate(src randutil.Source, numDarts int) (float64, error) {
	result, err := New(src, Config{}).Run(context.Background(), numDarts)
	if err != nil {
		return 0, err
	}
	return result.Pi, nil
}

// Run draws the board, throws numDarts darts and derives the estimate.
func (e *Estimator) Run(ctx context.Context, numDarts int) (Result, error) {
	if numDarts <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNoDarts, numDarts)
	}

	start := e.config.Clock.Now()
	board.DrawBoard(e.config.Renderer, board.UnitSquare, board.UnitCircle)

	hits := 0
	for i := 0; i < numDarts; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if e.throw(i) {
			hits++
		}
	}

	pi := float64(hits) / float64(numDarts) * 4
	result := Result{
		Darts:   numDarts,
		Hits:    hits,
		Pi:      pi,
		Error:   pi - math.Pi,
		Elapsed: e.config.Clock.Since(start),
	}

	e.config.Logger.Debug("Estimation complete",
		"darts", result.Darts,
		"hits", result.Hits,
		"pi", result.Pi,
		"elapsed", result.Elapsed)

	return result, nil
}

// Practice throws numDarts darts and announces every hit. It does not
// derive an estimate.
func (e *Estimator) Practice(ctx context.Context, numDarts int) (int, error) {
	if numDarts <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNoDarts, numDarts)
	}

	board.DrawBoard(e.config.Renderer, board.UnitSquare, board.UnitCircle)

	hits := 0
	for i := 0; i < numDarts; i++ {
		if err := ctx.Err(); err != nil {
			return hits, err
		}
		if e.throw(i) {
			hits++
			e.config.Logger.Info("You hit the dartboard!", "dart", i+1)
		}
	}
	return hits, nil
}

func (e *Estimator) throw(i int) bool {
	p := e.sampler.Sample(board.UnitSquare)
	hit := board.InCircle(p, board.UnitCircle)
	e.config.Renderer.PlaceMarker(p.X, p.Y, board.HitMarker(hit))
	if e.config.OnDart != nil {
		e.config.OnDart(Dart{Index: i, Point: p, Hit: hit})
	}
	return hit
}
