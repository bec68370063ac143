// Package sampling generates dart throws: uniform samples over a region for
// pi estimation, and skill-scattered throws at an aim point for the game.
package sampling

import (
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/randutil"
)

// MaxSkill is a perfect thrower; MinSkill scatters the most.
const (
	MinSkill = 1
	MaxSkill = 10
)

// Sampler draws throws from an injected random source.
type Sampler struct {
	src randutil.Source
}

// New returns a Sampler over src.
func New(src randutil.Source) *Sampler {
	return &Sampler{src: src}
}

// NewSeeded returns a Sampler over a deterministic source for seed.
func NewSeeded(seed int64) *Sampler {
	return New(randutil.New(seed))
}

// Sample draws a point uniformly from the region, x first then y.
func (s *Sampler) Sample(region board.Region) board.Point {
	min, max := region.Min(), region.Max()
	x := randutil.Uniform(s.src, min.X, max.X)
	y := randutil.Uniform(s.src, min.Y, max.Y)
	return board.Point{X: x, Y: y}
}

// Scatter is the half-width of the per-axis offset range for skill, before
// dividing by the board scale.
func Scatter(skill int) float64 {
	return float64(MaxSkill - skill)
}

// Throw aims at target and perturbs each axis independently by
// uniform(-(10-skill), 10-skill) / scale. A skill of 10 lands exactly on the
// aim point without consuming randomness.
func (s *Sampler) Throw(aim board.Point, skill int, scale float64) board.Point {
	spread := Scatter(skill)
	if spread == 0 {
		return aim
	}
	dx := randutil.Uniform(s.src, -spread, spread) / scale
	dy := randutil.Uniform(s.src, -spread, spread) / scale
	return board.Point{X: aim.X + dx, Y: aim.Y + dy}
}
