package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSkill    = errors.New("invalid skill")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrNoPlayers       = errors.New("game needs at least one player")
	ErrDuplicatePlayer = errors.New("duplicate player name")
	ErrInvalidRounds   = errors.New("rounds must be at least 1")
	ErrUnknownGameType = errors.New("unknown game type")
	ErrInvalidScale    = errors.New("scale must be positive")
)

// DefaultScale is the board half-width used when none is given.
const DefaultScale = 3.0

// Mode selects how a throw is scored.
type Mode int

const (
	// Distance awards scale minus the distance from the aim point. Throws
	// further out than scale score negative.
	Distance Mode = iota + 1
	// Standard awards one point for a throw strictly inside the circle of
	// radius scale around the aim point.
	Standard
)

func (m Mode) String() string {
	switch m {
	case Distance:
		return "DISTANCE"
	case Standard:
		return "STANDARD"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts DISTANCE, STANDARD and the older DDSTANDARD spelling of
// STANDARD, in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DISTANCE":
		return Distance, nil
	case "STANDARD", "DDSTANDARD":
		return Standard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGameType, s)
	}
}

// State is where a game is in its lifecycle.
type State int

const (
	NotStarted State = iota
	InProgress
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
