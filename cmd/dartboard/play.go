package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/dartboard/cmd/dartboard/shared"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/config"
	"github.com/lox/dartboard/internal/game"
	"github.com/lox/dartboard/internal/render"
)

type PlayCmd struct {
	Config  string   `short:"c" default:"game.hcl" help:"HCL game file (defaults are used when missing)" type:"path"`
	Players []string `short:"p" name:"player" help:"Player as name:skill, repeatable; replaces the file's players"`
	Rounds  int      `short:"r" help:"Rounds to play (overrides the file)"`
	Type    string   `short:"t" help:"Game type: DISTANCE or STANDARD (overrides the file)"`
	Scale   float64  `help:"Board scale (overrides the file)"`
	Seed    int64    `help:"Seed for reproducible games (overrides the file)"`
	Board   bool     `help:"Print every throw on the board after the game"`
	Width   int      `default:"41" help:"Board width in cells"`
	Height  int      `default:"21" help:"Board height in cells"`
}

func (c *PlayCmd) Validate() error {
	return checkBoardSize(c.Width, c.Height)
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := c.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid game: %w", err)
	}

	logger := g.logger(cfg.LogLevel)
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	players, err := cfg.GamePlayers()
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	opts := append(cfg.GameOptions(), game.WithLogger(logger))
	var canvas *render.Canvas
	if c.Board {
		region := board.Region{Center: cfg.Target(), Scale: cfg.Game.Scale}
		canvas = render.NewCanvas(c.Width, c.Height, region, g.renderer())
		opts = append(opts, game.WithRenderer(canvas))
	}

	res, err := game.Play(ctx, players, cfg.Game.Rounds, mode, opts...)
	if err != nil {
		return err
	}

	if canvas != nil {
		fmt.Println(canvas.String())
	}
	fmt.Print(render.GameReport(res, g.renderer()))
	return nil
}

// apply layers command line flags over the loaded file.
func (c *PlayCmd) apply(cfg *config.Config) error {
	if len(c.Players) > 0 {
		cfg.Players = cfg.Players[:0]
		for _, arg := range c.Players {
			pc, err := parsePlayerFlag(arg)
			if err != nil {
				return err
			}
			cfg.Players = append(cfg.Players, pc)
		}
	}
	if c.Rounds != 0 {
		cfg.Game.Rounds = c.Rounds
	}
	if c.Type != "" {
		cfg.Game.Mode = c.Type
	}
	if c.Scale != 0 {
		cfg.Game.Scale = c.Scale
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	return nil
}

// parsePlayerFlag reads "name:skill". The last colon separates the skill so
// names may contain colons.
func parsePlayerFlag(arg string) (config.PlayerConfig, error) {
	idx := strings.LastIndex(arg, ":")
	if idx < 0 {
		return config.PlayerConfig{}, fmt.Errorf("%w: %q is not name:skill", game.ErrInvalidPlayer, arg)
	}
	name := strings.TrimSpace(arg[:idx])
	skill, err := strconv.Atoi(strings.TrimSpace(arg[idx+1:]))
	if err != nil {
		return config.PlayerConfig{}, fmt.Errorf("%w: %q: %v", game.ErrInvalidSkill, arg, err)
	}
	return config.PlayerConfig{Name: name, Skill: skill}, nil
}
