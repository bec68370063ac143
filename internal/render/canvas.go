package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/dartboard/internal/board"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBoard
	cellHit
	cellMiss
	cellPlayer
)

type cell struct {
	r      rune
	kind   cellKind
	player int
}

// Canvas is a text grid that implements board.Renderer. Markers overwrite
// board lines; a later marker in the same cell replaces an earlier one.
type Canvas struct {
	proj    projection
	cells   [][]cell
	palette Palette
	players map[string]int
	offGrid int
}

// NewCanvas creates a cols x rows canvas viewing region.
func NewCanvas(cols, rows int, region board.Region, r *lipgloss.Renderer) *Canvas {
	c := &Canvas{
		proj:    newProjection(cols, rows, region),
		palette: NewPalette(r),
		players: make(map[string]int),
	}
	c.Clear()
	return c
}

// Clear wipes the grid.
func (c *Canvas) Clear() {
	c.cells = make([][]cell, c.proj.rows)
	for i := range c.cells {
		row := make([]cell, c.proj.cols)
		for j := range row {
			row[j] = cell{r: ' '}
		}
		c.cells[i] = row
	}
	c.offGrid = 0
}

func (c *Canvas) DrawShape(s board.Shape) {
	c.proj.trace(s, func(col, row int, r rune) {
		if c.cells[row][col].kind == cellEmpty || c.cells[row][col].kind == cellBoard {
			c.cells[row][col] = cell{r: r, kind: cellBoard}
		}
	})
}

func (c *Canvas) PlaceMarker(x, y float64, m board.Marker) {
	col, row, ok := c.proj.cell(board.Point{X: x, Y: y})
	if !ok {
		c.offGrid++
		return
	}
	switch m.Color {
	case board.ColorHit:
		c.cells[row][col] = cell{r: '*', kind: cellHit}
	case board.ColorMiss:
		c.cells[row][col] = cell{r: 'x', kind: cellMiss}
	default:
		idx, seen := c.players[m.Label]
		if !seen {
			idx = len(c.players)
			c.players[m.Label] = idx
		}
		r := '@'
		if m.Label != "" {
			r = []rune(m.Label)[0]
		}
		c.cells[row][col] = cell{r: r, kind: cellPlayer, player: idx}
	}
}

// OffGrid is how many markers fell outside the visible area.
func (c *Canvas) OffGrid() int {
	return c.offGrid
}

// Rune returns the character at a cell, for tests and debugging.
func (c *Canvas) Rune(col, row int) rune {
	return c.cells[row][col].r
}

// Plain renders the grid without styles.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for i, row := range c.cells {
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		if i < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the grid with styled markers.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.cells {
		for _, cl := range row {
			b.WriteString(c.style(cl).Render(string(cl.r)))
		}
		if i < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) style(cl cell) lipgloss.Style {
	switch cl.kind {
	case cellBoard:
		return c.palette.Board
	case cellHit:
		return c.palette.Hit
	case cellMiss:
		return c.palette.Miss
	case cellPlayer:
		return c.palette.Players[cl.player%len(c.palette.Players)]
	default:
		return c.palette.Dim
	}
}
