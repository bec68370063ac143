package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/randutil"
	"github.com/lox/dartboard/internal/sampling"
	"github.com/lox/dartboard/internal/statistics"
)

// Throw is one dart in a game.
type Throw struct {
	Round  int
	Player string
	Point  board.Point
	Points float64
	Hit    bool
}

// Record is the end-of-game line for one player.
type Record struct {
	Name    string
	Total   float64
	Average float64 // Total / rounds
	Hits    int
	Stats   *statistics.Statistics
}

// Result is a finished game.
type Result struct {
	ID      string
	Mode    Mode
	Rounds  int
	Winner  string
	Scores  *ScoreTable
	Records []Record
	Throws  []Throw
	State   State
}

// Tied reports whether at least one other player shares the winning score.
func (r *Result) Tied() bool {
	return len(r.TiedWith()) > 0
}

// TiedWith lists the other players whose score equals the winner's.
func (r *Result) TiedWith() []string {
	top, _ := r.Scores.Score(r.Winner)
	var tied []string
	for _, name := range r.Scores.Names() {
		if name == r.Winner {
			continue
		}
		if s, _ := r.Scores.Score(name); s == top {
			tied = append(tied, name)
		}
	}
	return tied
}

// Option configures a Game.
type Option func(*Game)

// WithScale sets the board half-width and, in Standard games, the radius of
// the scoring circle.
func WithScale(scale float64) Option {
	return func(g *Game) { g.scale = scale }
}

// WithTarget moves the aim point. It stays fixed for every round.
func WithTarget(p board.Point) Option {
	return func(g *Game) { g.aim = p }
}

// WithSource injects the random source throws are drawn from.
func WithSource(src randutil.Source) Option {
	return func(g *Game) { g.src = src }
}

// WithSeed is WithSource over a deterministic source for seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.src = randutil.New(seed) }
}

// WithRenderer reports the board and every throw to r.
func WithRenderer(r board.Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithID overrides the generated game ID.
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

// Game is a single, non-reusable match.
type Game struct {
	id       string
	players  []Player
	rounds   int
	mode     Mode
	scale    float64
	aim      board.Point
	src      randutil.Source
	renderer board.Renderer
	logger   *log.Logger
	state    State
}

// New validates the setup and returns a game ready to play.
func New(players []Player, rounds int, mode Mode, opts ...Option) (*Game, error) {
	g := &Game{
		players: players,
		rounds:  rounds,
		mode:    mode,
		scale:   DefaultScale,
		aim:     board.Origin,
		state:   NotStarted,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.validate(); err != nil {
		return nil, err
	}

	if g.id == "" {
		g.id = uuid.NewString()[:8]
	}
	if g.src == nil {
		g.src = randutil.New(time.Now().UnixNano())
	}
	if g.renderer == nil {
		g.renderer = board.Discard
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.logger = g.logger.WithPrefix("game").With("game", g.id)

	return g, nil
}

// validate checks the setup and keeps players with their names trimmed.
func (g *Game) validate() error {
	if len(g.players) == 0 {
		return ErrNoPlayers
	}
	players := make([]Player, 0, len(g.players))
	seen := make(map[string]bool, len(g.players))
	for _, p := range g.players {
		p, err := NewPlayer(p.Name, p.Skill)
		if err != nil {
			return err
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.Name)
		}
		seen[p.Name] = true
		players = append(players, p)
	}
	g.players = players
	if g.rounds < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRounds, g.rounds)
	}
	if g.mode != Distance && g.mode != Standard {
		return fmt.Errorf("%w: %v", ErrUnknownGameType, g.mode)
	}
	if !(g.scale > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, g.scale)
	}
	return nil
}

// ID returns the game identifier used in logs.
func (g *Game) ID() string {
	return g.id
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Play runs every round and returns the result. A game can only be played
// once.
func (g *Game) Play(ctx context.Context) (*Result, error) {
	if g.state != NotStarted {
		return nil, fmt.Errorf("game %s already %s", g.id, g.state)
	}
	g.state = InProgress

	sampler := sampling.New(g.src)
	target := board.Circle{Center: g.aim, Radius: g.scale}
	region := board.Region{Center: g.aim, Scale: g.scale}
	board.DrawBoard(g.renderer, region, target)

	scores := newScoreTable(g.players)
	perPlayer := make(map[string]*statistics.Statistics, len(g.players))
	for _, p := range g.players {
		perPlayer[p.Name] = &statistics.Statistics{}
	}

	g.logger.Info("Starting dart game",
		"mode", g.mode,
		"players", len(g.players),
		"rounds", g.rounds,
		"scale", g.scale)

	throws := make([]Throw, 0, g.rounds*len(g.players))
	for round := 1; round <= g.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, p := range g.players {
			t := g.throw(sampler, target, round, p)
			scores.add(p.Name, t.Points)
			hits := 0
			if t.Hit {
				hits = 1
			}
			perPlayer[p.Name].Add(statistics.Result{Value: t.Points, Hits: hits, Darts: 1})
			throws = append(throws, t)
		}
	}

	winner, top := scores.Leader()
	g.state = Finished

	records := make([]Record, 0, len(g.players))
	for _, p := range g.players {
		total, _ := scores.Score(p.Name)
		stats := perPlayer[p.Name]
		records = append(records, Record{
			Name:    p.Name,
			Total:   total,
			Average: total / float64(g.rounds),
			Hits:    stats.TotalHits,
			Stats:   stats,
		})
	}

	result := &Result{
		ID:      g.id,
		Mode:    g.mode,
		Rounds:  g.rounds,
		Winner:  winner,
		Scores:  scores,
		Records: records,
		Throws:  throws,
		State:   g.state,
	}

	if result.Tied() {
		g.logger.Info("Game tied", "score", top, "players", append([]string{winner}, result.TiedWith()...))
	} else {
		g.logger.Info("Game finished", "winner", winner, "score", top)
	}

	return result, nil
}

func (g *Game) throw(sampler *sampling.Sampler, target board.Circle, round int, p Player) Throw {
	pt := sampler.Throw(g.aim, p.Skill, g.scale)
	hit := board.InCircle(pt, target)

	var points float64
	switch g.mode {
	case Distance:
		points = g.scale - board.Distance(pt, g.aim)
	case Standard:
		if hit {
			points = 1
		}
	}

	g.renderer.PlaceMarker(pt.X, pt.Y, board.Marker{Color: board.ColorPlayer, Label: p.Name})
	if hit {
		g.logger.Debug(p.Name+" hits the dartboard!", "round", round, "at", pt, "points", points)
	} else {
		g.logger.Debug(p.Name+" missed the dartboard!", "round", round, "at", pt, "points", points)
	}

	return Throw{Round: round, Player: p.Name, Point: pt, Points: points, Hit: hit}
}

// Play is a convenience wrapper around New and Game.Play.
func Play(ctx context.Context, players []Player, rounds int, mode Mode, opts ...Option) (*Result, error) {
	g, err := New(players, rounds, mode, opts...)
	if err != nil {
		return nil, err
	}
	return g.Play(ctx)
}
