// Package render draws the dartboard and thrown darts on a terminal: a static
// text canvas, a tcell screen, and a bubbletea live view.
package render

import (
	"math"

	"github.com/lox/dartboard/internal/board"
)

// margin leaves room around the board for darts that land just outside it.
const margin = 1.1

// projection maps board coordinates onto a cols x rows cell grid. The y axis
// points up on the board and down on the grid.
type projection struct {
	cols, rows int
	min, max   board.Point
}

func newProjection(cols, rows int, view board.Region) projection {
	view.Scale *= margin
	return projection{cols: cols, rows: rows, min: view.Min(), max: view.Max()}
}

// cell returns the grid cell for p and whether it is on the grid.
func (pr projection) cell(p board.Point) (col, row int, ok bool) {
	if pr.cols < 1 || pr.rows < 1 {
		return 0, 0, false
	}
	fx := (p.X - pr.min.X) / (pr.max.X - pr.min.X)
	fy := (pr.max.Y - p.Y) / (pr.max.Y - pr.min.Y)
	col = int(math.Round(fx * float64(pr.cols-1)))
	row = int(math.Round(fy * float64(pr.rows-1)))
	if col < 0 || col >= pr.cols || row < 0 || row >= pr.rows {
		return col, row, false
	}
	return col, row, true
}

// trace calls plot for every cell along the shape's outline.
func (pr projection) trace(s board.Shape, plot func(col, row int, r rune)) {
	steps := 4 * (pr.cols + pr.rows)
	switch s.Kind {
	case board.ShapeSquare:
		tl := s.From
		tr := board.Point{X: tl.X + s.Size, Y: tl.Y}
		br := board.Point{X: tl.X + s.Size, Y: tl.Y - s.Size}
		bl := board.Point{X: tl.X, Y: tl.Y - s.Size}
		pr.segment(tl, tr, steps, '-', plot)
		pr.segment(bl, br, steps, '-', plot)
		pr.segment(tl, bl, steps, '|', plot)
		pr.segment(tr, br, steps, '|', plot)
		for _, c := range []board.Point{tl, tr, br, bl} {
			if col, row, ok := pr.cell(c); ok {
				plot(col, row, '+')
			}
		}
	case board.ShapeLine:
		r := '-'
		if s.From.X == s.To.X {
			r = '|'
		}
		pr.segment(s.From, s.To, steps, r, plot)
	case board.ShapeCircle:
		for i := 0; i < steps*2; i++ {
			theta := 2 * math.Pi * float64(i) / float64(steps*2)
			p := board.Point{
				X: s.From.X + s.Size*math.Cos(theta),
				Y: s.From.Y + s.Size*math.Sin(theta),
			}
			if col, row, ok := pr.cell(p); ok {
				plot(col, row, '.')
			}
		}
	}
}

func (pr projection) segment(a, b board.Point, steps int, r rune, plot func(col, row int, r rune)) {
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := board.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		if col, row, ok := pr.cell(p); ok {
			plot(col, row, r)
		}
	}
}
