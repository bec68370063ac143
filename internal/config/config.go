// Package config loads dart game definitions from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/game"
)

// Config is a complete game file.
type Config struct {
	LogLevel string            `hcl:"log_level,optional"`
	Game     *GameSettings     `hcl:"game,block"`
	Players  []PlayerConfig    `hcl:"player,block"`
	Estimate *EstimateSettings `hcl:"estimate,block"`
}

// GameSettings controls how a game is scored.
type GameSettings struct {
	Mode    string  `hcl:"mode,optional"`
	Rounds  int     `hcl:"rounds,optional"`
	Scale   float64 `hcl:"scale,optional"`
	Seed    int64   `hcl:"seed,optional"`
	TargetX float64 `hcl:"target_x,optional"`
	TargetY float64 `hcl:"target_y,optional"`
}

// PlayerConfig is one named thrower.
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Skill int    `hcl:"skill"`
}

// EstimateSettings controls pi estimation runs.
type EstimateSettings struct {
	Darts  int   `hcl:"darts,optional"`
	Trials int   `hcl:"trials,optional"`
	Seed   int64 `hcl:"seed,optional"`
}

const (
	DefaultRounds = 10
	DefaultDarts  = 10000
	DefaultTrials = 16
	DefaultMode   = "STANDARD"

	// DefaultSkill at game.DefaultScale scatters throws over the square the hit
	// circle is inscribed in, so each throw hits with probability pi/4.
	DefaultSkill = 1
)

// Default returns the two-player game the demo plays.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game: &GameSettings{
			Mode:   DefaultMode,
			Rounds: DefaultRounds,
			Scale:  game.DefaultScale,
		},
		Players: []PlayerConfig{
			{Name: "Player 1", Skill: DefaultSkill},
			{Name: "Player 2", Skill: DefaultSkill},
		},
		Estimate: &EstimateSettings{
			Darts:  DefaultDarts,
			Trials: DefaultTrials,
		},
	}
}

// Load reads filename, falling back to Default when it does not exist.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything left out.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Mode == "" {
		c.Game.Mode = DefaultMode
	}
	if c.Game.Rounds == 0 {
		c.Game.Rounds = DefaultRounds
	}
	if c.Game.Scale == 0 {
		c.Game.Scale = game.DefaultScale
	}
	if c.Estimate == nil {
		c.Estimate = &EstimateSettings{}
	}
	if c.Estimate.Darts == 0 {
		c.Estimate.Darts = DefaultDarts
	}
	if c.Estimate.Trials == 0 {
		c.Estimate.Trials = DefaultTrials
	}
}

// Validate checks the configuration can be played.
func (c *Config) Validate() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	if c.Game == nil {
		return fmt.Errorf("missing game block")
	}
	if _, err := game.ParseMode(c.Game.Mode); err != nil {
		return err
	}
	if c.Game.Rounds < 1 {
		return fmt.Errorf("%w: got %d", game.ErrInvalidRounds, c.Game.Rounds)
	}
	if c.Game.Scale <= 0 {
		return fmt.Errorf("%w: got %v", game.ErrInvalidScale, c.Game.Scale)
	}

	if len(c.Players) == 0 {
		return game.ErrNoPlayers
	}
	if _, err := c.GamePlayers(); err != nil {
		return err
	}

	return c.validateEstimate()
}

// ValidateEstimate checks only what estimation runs read, so a file without
// players can still drive them.
func (c *Config) ValidateEstimate() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateEstimate()
}

func (c *Config) validateLogLevel() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
}

func (c *Config) validateEstimate() error {
	if c.Estimate == nil {
		return nil
	}
	if c.Estimate.Darts < 1 {
		return fmt.Errorf("estimate: darts must be positive, got %d", c.Estimate.Darts)
	}
	if c.Estimate.Trials < 1 {
		return fmt.Errorf("estimate: trials must be positive, got %d", c.Estimate.Trials)
	}
	return nil
}

// GamePlayers converts the player blocks, rejecting bad skills and
// duplicate names.
func (c *Config) GamePlayers() ([]game.Player, error) {
	players := make([]game.Player, 0, len(c.Players))
	seen := make(map[string]bool, len(c.Players))
	for _, pc := range c.Players {
		p, err := game.NewPlayer(pc.Name, pc.Skill)
		if err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: %q", game.ErrDuplicatePlayer, p.Name)
		}
		seen[p.Name] = true
		players = append(players, p)
	}
	return players, nil
}

// Mode returns the parsed game mode.
func (c *Config) Mode() (game.Mode, error) {
	return game.ParseMode(c.Game.Mode)
}

// Target returns the fixed aim point.
func (c *Config) Target() board.Point {
	return board.Point{X: c.Game.TargetX, Y: c.Game.TargetY}
}

// GameOptions turns the settings into game options. A zero seed is left
// to the game, which seeds from the clock.
func (c *Config) GameOptions() []game.Option {
	opts := []game.Option{
		game.WithScale(c.Game.Scale),
		game.WithTarget(c.Target()),
	}
	if c.Game.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Game.Seed))
	}
	return opts
}
