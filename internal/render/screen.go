package render

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/lox/dartboard/internal/board"
)

var (
	boardStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hitStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	missStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	playerStyle = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
	}
)

// Screen draws onto a tcell screen, the terminal stand-in for a drawing
// window. The caller owns Init and Fini.
type Screen struct {
	screen  tcell.Screen
	proj    projection
	players map[string]int
}

// NewScreen sizes the projection to the current screen dimensions.
func NewScreen(s tcell.Screen, region board.Region) *Screen {
	w, h := s.Size()
	s.EnableMouse()
	return &Screen{
		screen:  s,
		proj:    newProjection(w, h, region),
		players: make(map[string]int),
	}
}

func (s *Screen) DrawShape(sh board.Shape) {
	s.proj.trace(sh, func(col, row int, r rune) {
		s.screen.SetContent(col, row, r, nil, boardStyle)
	})
}

func (s *Screen) PlaceMarker(x, y float64, m board.Marker) {
	col, row, ok := s.proj.cell(board.Point{X: x, Y: y})
	if !ok {
		return
	}
	switch m.Color {
	case board.ColorHit:
		s.screen.SetContent(col, row, '*', nil, hitStyle)
	case board.ColorMiss:
		s.screen.SetContent(col, row, 'x', nil, missStyle)
	default:
		idx, seen := s.players[m.Label]
		if !seen {
			idx = len(s.players)
			s.players[m.Label] = idx
		}
		r := '@'
		if m.Label != "" {
			r = []rune(m.Label)[0]
		}
		s.screen.SetContent(col, row, r, nil, playerStyle[idx%len(playerStyle)])
	}
}

// Clear blanks the screen.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// WaitForExit blocks until a mouse click or key press, or until ctx is done.
func (s *Screen) WaitForExit(ctx context.Context) error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventMouse:
				if ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0 {
					return nil
				}
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}
}
