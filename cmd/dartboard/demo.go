package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/lox/dartboard/cmd/dartboard/shared"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/config"
	"github.com/lox/dartboard/internal/estimator"
	"github.com/lox/dartboard/internal/game"
	"github.com/lox/dartboard/internal/randutil"
	"github.com/lox/dartboard/internal/render"
)

const practiceDarts = 10

type DemoCmd struct {
	Darts  int   `short:"n" default:"10000" help:"Darts for the pi estimation"`
	Seed   int64 `help:"Seed for reproducible runs (0 for random)"`
	Window bool  `help:"Draw each part full screen and wait for a click or key between parts"`
}

func (c *DemoCmd) Run(g *Globals) error {
	seed := resolveSeed(c.Seed)

	if !c.Window {
		logger := g.logger("")
		ctx, cancel := shared.SetupSignalHandler(logger)
		defer cancel()
		var out bytes.Buffer
		defer func() { fmt.Print(out.String()) }()
		return c.run(ctx, logger, g, seed, nil, &out)
	}

	// The screen owns the terminal, so output and logs are held back until
	// it closes.
	var out, logs bytes.Buffer
	logger := shared.SetupLoggerTo(&logs, g.level(""))
	defer func() {
		_, _ = os.Stderr.Write(logs.Bytes())
		fmt.Print(out.String())
	}()

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer s.Fini()

	return c.run(ctx, logger, g, seed, s, &out)
}

// run plays the three parts in order. With a screen, each part is drawn on
// it and the next part waits for a click or key press.
func (c *DemoCmd) run(ctx context.Context, logger *log.Logger, g *Globals, seed int64, s tcell.Screen, out *bytes.Buffer) error {
	pause := func(region board.Region) (board.Renderer, func() error) {
		if s == nil {
			return nil, func() error { return nil }
		}
		scr := render.NewScreen(s, region)
		scr.Clear()
		return scr, func() error {
			scr.Show()
			return scr.WaitForExit(ctx)
		}
	}

	// Practice
	r, wait := pause(board.UnitSquare)
	hits, err := estimator.New(randutil.New(seed), estimator.Config{Logger: logger, Renderer: r}).
		Practice(ctx, practiceDarts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d of %d practice darts hit the dartboard\n\n", hits, practiceDarts)
	if err := wait(); err != nil {
		return err
	}

	// Two player game
	cfg := config.Default()
	players, err := cfg.GamePlayers()
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	r, wait = pause(board.Region{Center: cfg.Target(), Scale: cfg.Game.Scale})
	opts := append(cfg.GameOptions(), game.WithSeed(seed+1), game.WithLogger(logger))
	if r != nil {
		opts = append(opts, game.WithRenderer(r))
	}
	res, err := game.Play(ctx, players, cfg.Game.Rounds, mode, opts...)
	if err != nil {
		return err
	}
	out.WriteString(render.GameReport(res, g.renderer()))
	out.WriteString("\n")
	if err := wait(); err != nil {
		return err
	}

	// Estimation
	r, wait = pause(board.UnitSquare)
	result, err := estimator.New(randutil.New(seed+2), estimator.Config{Logger: logger, Renderer: r}).
		Run(ctx, c.Darts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "The estimation of pi using %d virtual darts is %.6f\n", result.Darts, result.Pi)
	return wait()
}
