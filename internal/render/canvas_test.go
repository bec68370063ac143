package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/dartboard/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainCanvas(cols, rows int) *Canvas {
	return NewCanvas(cols, rows, board.UnitSquare, NewRenderer(&bytes.Buffer{}, false))
}

func TestCanvasDrawsBoard(t *testing.T) {
	c := plainCanvas(41, 21)
	board.DrawBoard(c, board.UnitSquare, board.UnitCircle)

	out := c.Plain()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 21)
	for _, l := range lines {
		assert.Len(t, []rune(l), 41)
	}

	// axes cross at the center cell
	col, row, ok := c.proj.cell(board.Origin)
	require.True(t, ok)
	assert.Contains(t, "-|", string(c.Rune(col, row)))

	assert.Contains(t, out, "+")
	assert.Contains(t, out, ".")
}

func TestCanvasMarkers(t *testing.T) {
	c := plainCanvas(41, 21)
	board.DrawBoard(c, board.UnitSquare, board.UnitCircle)

	c.PlaceMarker(0.5, 0.5, board.HitMarker(true))
	c.PlaceMarker(-0.9, -0.9, board.HitMarker(false))
	c.PlaceMarker(0.2, -0.3, board.Marker{Color: board.ColorPlayer, Label: "Zed"})

	col, row, _ := c.proj.cell(board.Point{X: 0.5, Y: 0.5})
	assert.Equal(t, '*', c.Rune(col, row))
	col, row, _ = c.proj.cell(board.Point{X: -0.9, Y: -0.9})
	assert.Equal(t, 'x', c.Rune(col, row))
	col, row, _ = c.proj.cell(board.Point{X: 0.2, Y: -0.3})
	assert.Equal(t, 'Z', c.Rune(col, row))

	// markers win over board lines drawn later
	c.DrawShape(board.Shape{Kind: board.ShapeLine, From: board.Point{X: -1, Y: 0.5}, To: board.Point{X: 1, Y: 0.5}})
	col, row, _ = c.proj.cell(board.Point{X: 0.5, Y: 0.5})
	assert.Equal(t, '*', c.Rune(col, row))
}

func TestCanvasOffGrid(t *testing.T) {
	c := plainCanvas(21, 11)
	c.PlaceMarker(5, 5, board.HitMarker(false))
	c.PlaceMarker(0, 0, board.HitMarker(true))
	assert.Equal(t, 1, c.OffGrid())

	c.Clear()
	assert.Equal(t, 0, c.OffGrid())
	assert.Equal(t, strings.Repeat(" ", 21), strings.Split(c.Plain(), "\n")[0])
}

func TestCanvasStringWithoutColorMatchesPlain(t *testing.T) {
	c := plainCanvas(21, 11)
	board.DrawBoard(c, board.UnitSquare, board.UnitCircle)
	c.PlaceMarker(0.1, 0.1, board.HitMarker(true))

	assert.Equal(t, c.Plain(), c.String())
}

func TestProjectionCorners(t *testing.T) {
	pr := projection{cols: 11, rows: 11, min: board.Point{X: -1, Y: -1}, max: board.Point{X: 1, Y: 1}}

	col, row, ok := pr.cell(board.Point{X: -1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row, ok = pr.cell(board.Point{X: 1, Y: -1})
	require.True(t, ok)
	assert.Equal(t, 10, col)
	assert.Equal(t, 10, row)

	col, row, ok = pr.cell(board.Origin)
	require.True(t, ok)
	assert.Equal(t, 5, col)
	assert.Equal(t, 5, row)

	_, _, ok = pr.cell(board.Point{X: 2, Y: 0})
	assert.False(t, ok)
}
