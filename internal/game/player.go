package game

import (
	"fmt"
	"strings"

	"github.com/lox/dartboard/internal/sampling"
)

// Player is a named thrower with a fixed skill between 1 and 10.
type Player struct {
	Name  string
	Skill int
}

// NewPlayer validates skill and returns the player.
func NewPlayer(name string, skill int) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, fmt.Errorf("%w: empty name", ErrInvalidPlayer)
	}
	if skill < sampling.MinSkill || skill > sampling.MaxSkill {
		return Player{}, fmt.Errorf("%w: player %q has skill %d, want %d-%d",
			ErrInvalidSkill, name, skill, sampling.MinSkill, sampling.MaxSkill)
	}
	return Player{Name: name, Skill: skill}, nil
}

func (p Player) String() string {
	return fmt.Sprintf("%s (skill %d)", p.Name, p.Skill)
}
