// Package board holds the dartboard geometry and the drawing contract shared by
// the estimator, the game and the renderers.
package board

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidScale  = errors.New("region half-width must be positive")
	ErrInvalidRadius = errors.New("circle radius must be positive")
)

// Point is a position on the board.
type Point struct {
	X, Y float64
}

// Origin is the center of the standard board.
var Origin = Point{}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Region is a square sampling domain: every point within Scale of Center on
// both axes.
type Region struct {
	Center Point
	Scale  float64
}

// UnitSquare is the [-1,1]x[-1,1] board used for pi estimation.
var UnitSquare = Region{Center: Origin, Scale: 1}

// NewRegion validates the half-width and returns the region.
func NewRegion(center Point, scale float64) (Region, error) {
	if !(scale > 0) {
		return Region{}, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	return Region{Center: center, Scale: scale}, nil
}

// Min returns the bottom-left corner.
func (r Region) Min() Point {
	return Point{X: r.Center.X - r.Scale, Y: r.Center.Y - r.Scale}
}

// Max returns the top-right corner.
func (r Region) Max() Point {
	return Point{X: r.Center.X + r.Scale, Y: r.Center.Y + r.Scale}
}

// Width is the full side length.
func (r Region) Width() float64 {
	return 2 * r.Scale
}

// Contains reports whether p lies inside the square, edges included.
func (r Region) Contains(p Point) bool {
	min, max := r.Min(), r.Max()
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// Inscribed returns the largest circle that fits inside the region.
func (r Region) Inscribed() Circle {
	return Circle{Center: r.Center, Radius: r.Scale}
}

// Circle is the classification boundary for a hit.
type Circle struct {
	Center Point
	Radius float64
}

// UnitCircle is the radius-1 circle at the origin.
var UnitCircle = Circle{Center: Origin, Radius: 1}

// NewCircle validates the radius and returns the circle.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// InCircle reports whether p falls strictly inside c. A point exactly on the
// circumference is a miss.
func InCircle(p Point, c Circle) bool {
	return Distance(p, c.Center) < c.Radius
}
