package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"
	"github.com/lox/dartboard/cmd/dartboard/shared"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/config"
	"github.com/lox/dartboard/internal/estimator"
	"github.com/lox/dartboard/internal/randutil"
	"github.com/lox/dartboard/internal/render"
)

// darts per message sent to the live view
const liveBatch = 500

type EstimateCmd struct {
	Config   string `short:"c" default:"game.hcl" type:"path" help:"HCL file whose estimate block supplies defaults"`
	Darts    int    `short:"n" help:"Number of darts to throw (default from the config file, else 10000)"`
	Seed     int64  `help:"Seed for reproducible runs (default from the config file, 0 for random)"`
	Progress bool   `help:"Show a progress bar on stderr"`
	Board    bool   `help:"Print the board with every dart after the run"`
	Live     bool   `help:"Animate the board while darts are thrown"`
	Width    int    `default:"61" help:"Board width in cells"`
	Height   int    `default:"31" help:"Board height in cells"`
}

func (c *EstimateCmd) Validate() error {
	if c.Darts < 0 {
		return fmt.Errorf("--darts must be positive, got %d", c.Darts)
	}
	return checkBoardSize(c.Width, c.Height)
}

// resolve fills flags left at zero from the config file.
func (c *EstimateCmd) resolve(cfg *config.Config) {
	if c.Darts == 0 {
		c.Darts = cfg.Estimate.Darts
	}
	if c.Seed == 0 {
		c.Seed = cfg.Estimate.Seed
	}
}

func (c *EstimateCmd) Run(g *Globals) error {
	cfg, err := loadEstimateConfig(c.Config)
	if err != nil {
		return err
	}
	c.resolve(cfg)

	logger := g.logger(cfg.LogLevel)
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	seed := resolveSeed(c.Seed)
	logger.Debug("Starting estimation", "darts", c.Darts, "seed", seed)

	if c.Live {
		return c.runLive(ctx, g, seed)
	}

	cfg := estimator.Config{Logger: logger}

	var canvas *render.Canvas
	if c.Board {
		canvas = render.NewCanvas(c.Width, c.Height, board.UnitSquare, g.renderer())
		cfg.Renderer = canvas
	}

	var bar *pb.ProgressBar
	if c.Progress && c.Darts > 0 {
		bar = pb.New(c.Darts).SetWriter(os.Stderr).Start()
		cfg.OnDart = func(estimator.Dart) { bar.Increment() }
	}

	result, err := estimator.New(randutil.New(seed), cfg).Run(ctx, c.Darts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if canvas != nil {
		fmt.Println(canvas.String())
	}
	printEstimate(result, seed)
	return nil
}

func (c *EstimateCmd) runLive(ctx context.Context, g *Globals, seed int64) error {
	model := render.NewLiveModel(c.Darts, c.Width, c.Height, g.renderer())
	program := tea.NewProgram(model, tea.WithContext(ctx))

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	batch := make([]estimator.Dart, 0, liveBatch)
	est := estimator.New(randutil.New(seed), estimator.Config{
		Logger: log.New(io.Discard),
		OnDart: func(d estimator.Dart) {
			batch = append(batch, d)
			if len(batch) == liveBatch {
				program.Send(render.DartsMsg(batch))
				batch = make([]estimator.Dart, 0, liveBatch)
			}
		},
	})

	go func() {
		result, err := est.Run(runCtx, c.Darts)
		if len(batch) > 0 {
			program.Send(render.DartsMsg(batch))
		}
		program.Send(render.DoneMsg{Result: result, Err: err})
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("live view failed: %w", err)
	}
	if model.Quitting() {
		return context.Canceled
	}
	return nil
}

func printEstimate(result estimator.Result, seed int64) {
	fmt.Printf("\nThe estimation of pi using %d virtual darts is %.6f\n", result.Darts, result.Pi)
	fmt.Printf("%d darts landed in the circle, error %+.6f (seed %d, %s)\n",
		result.Hits, result.Error, seed, result.Elapsed)
}

type TrialsCmd struct {
	Config  string `short:"c" default:"game.hcl" type:"path" help:"HCL file whose estimate block supplies defaults"`
	Darts   int    `short:"n" help:"Darts per trial (default from the config file, else 10000)"`
	Trials  int    `short:"t" help:"Number of independent trials (default from the config file, else 16)"`
	Seed    int64  `help:"Base seed; trial i uses seed+i (default from the config file, 0 for random)"`
	Workers int    `default:"0" help:"Concurrent trials (0 = number of CPUs, max 8)"`
}

func (c *TrialsCmd) Validate() error {
	if c.Darts < 0 {
		return fmt.Errorf("--darts must be positive, got %d", c.Darts)
	}
	if c.Trials < 0 {
		return fmt.Errorf("--trials must be positive, got %d", c.Trials)
	}
	return nil
}

// resolve fills flags left at zero from the config file.
func (c *TrialsCmd) resolve(cfg *config.Config) {
	if c.Darts == 0 {
		c.Darts = cfg.Estimate.Darts
	}
	if c.Trials == 0 {
		c.Trials = cfg.Estimate.Trials
	}
	if c.Seed == 0 {
		c.Seed = cfg.Estimate.Seed
	}
}

func (c *TrialsCmd) Run(g *Globals) error {
	cfg, err := loadEstimateConfig(c.Config)
	if err != nil {
		return err
	}
	c.resolve(cfg)

	logger := g.logger(cfg.LogLevel)
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	seed := resolveSeed(c.Seed)
	res, err := estimator.RunTrials(ctx, estimator.TrialConfig{
		Trials:  c.Trials,
		Darts:   c.Darts,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	fmt.Print(render.TrialsReport(res, g.renderer()))
	return nil
}

type PracticeCmd struct {
	Darts  int   `short:"n" default:"10" help:"Number of darts to throw"`
	Seed   int64 `help:"Seed for reproducible runs (0 for random)"`
	Board  bool  `help:"Print the board after throwing"`
	Width  int   `default:"41" help:"Board width in cells"`
	Height int   `default:"21" help:"Board height in cells"`
}

func (c *PracticeCmd) Validate() error {
	return checkBoardSize(c.Width, c.Height)
}

func (c *PracticeCmd) Run(g *Globals) error {
	logger := g.logger("")
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	cfg := estimator.Config{Logger: logger}
	var canvas *render.Canvas
	if c.Board {
		canvas = render.NewCanvas(c.Width, c.Height, board.UnitSquare, g.renderer())
		cfg.Renderer = canvas
	}

	hits, err := estimator.New(randutil.New(resolveSeed(c.Seed)), cfg).Practice(ctx, c.Darts)
	if err != nil {
		return err
	}

	if canvas != nil {
		fmt.Println(canvas.String())
	}
	fmt.Printf("%d of %d darts hit the dartboard\n", hits, c.Darts)
	return nil
}
