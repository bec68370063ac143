package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/dartboard/cmd/dartboard/shared"
	"github.com/lox/dartboard/internal/config"
	"github.com/lox/dartboard/internal/render"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug|info|warn|error); falls back to the config file's log_level, then info"`
	NoColor  bool   `help:"Disable colored output"`
}

func (g *Globals) Validate() error {
	switch g.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("--log-level must be one of debug, info, warn, error, got %q", g.LogLevel)
	}
}

// level picks the --log-level flag, then fileLevel, then info.
func (g *Globals) level(fileLevel string) string {
	switch {
	case g.LogLevel != "":
		return g.LogLevel
	case fileLevel != "":
		return fileLevel
	default:
		return "info"
	}
}

func (g *Globals) logger(fileLevel string) *log.Logger {
	return shared.SetupLogger(g.level(fileLevel))
}

func (g *Globals) renderer() *lipgloss.Renderer {
	return render.NewRenderer(os.Stdout, !g.NoColor)
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Estimate EstimateCmd      `cmd:"" help:"Estimate pi by throwing virtual darts"`
	Trials   TrialsCmd        `cmd:"" help:"Run many independent estimations and summarise them"`
	Practice PracticeCmd      `cmd:"" help:"Throw a few darts and announce the hits"`
	Play     PlayCmd          `cmd:"" help:"Play a skill-based dart game"`
	Demo     DemoCmd          `cmd:"" help:"Practice, a two-player game, then an estimation"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dartboard"),
		kong.Description("Monte Carlo pi estimation and dart games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// loadEstimateConfig reads the estimate block of a game file, or the
// defaults when the file does not exist.
func loadEstimateConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateEstimate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// checkBoardSize rejects board dimensions that cannot hold a single cell.
func checkBoardSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("board size must be at least 1x1, got %dx%d", width, height)
	}
	return nil
}

// resolveSeed returns seed, or a clock-derived seed when it is zero.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
