package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/estimator"
)

// DartsMsg carries a batch of thrown darts to the live view.
type DartsMsg []estimator.Dart

// DoneMsg ends the live view with the final result or error.
type DoneMsg struct {
	Result estimator.Result
	Err    error
}

// LiveModel is a bubbletea model that redraws the board as darts land.
type LiveModel struct {
	canvas   *Canvas
	bar      progress.Model
	palette  Palette
	total    int
	thrown   int
	hits     int
	done     bool
	result   estimator.Result
	err      error
	quitting bool
}

// NewLiveModel builds a view for a run of total darts.
func NewLiveModel(total, cols, rows int, r *lipgloss.Renderer) *LiveModel {
	canvas := NewCanvas(cols, rows, board.UnitSquare, r)
	board.DrawBoard(canvas, board.UnitSquare, board.UnitCircle)

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = cols

	return &LiveModel{
		canvas:  canvas,
		bar:     bar,
		palette: NewPalette(r),
		total:   total,
	}
}

func (m *LiveModel) Init() tea.Cmd {
	return nil
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DartsMsg:
		for _, d := range msg {
			m.canvas.PlaceMarker(d.Point.X, d.Point.Y, board.HitMarker(d.Hit))
			m.thrown++
			if d.Hit {
				m.hits++
			}
		}
		return m, nil
	case DoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.bar.Width = min(msg.Width-4, m.canvas.proj.cols)
		}
	}
	return m, nil
}

// Estimate is the running pi estimate from darts seen so far.
func (m *LiveModel) Estimate() float64 {
	if m.thrown == 0 {
		return 0
	}
	return float64(m.hits) / float64(m.thrown) * 4
}

// Quitting reports whether the user interrupted the view.
func (m *LiveModel) Quitting() bool {
	return m.quitting
}

func (m *LiveModel) View() string {
	var b strings.Builder
	b.WriteString(m.palette.Header.Render(" Monte Carlo pi "))
	b.WriteString("\n\n")
	b.WriteString(m.canvas.String())
	b.WriteString("\n\n")

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.thrown) / float64(m.total)
	}
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n")

	est := m.Estimate()
	b.WriteString(fmt.Sprintf("%d/%d darts  %d hits  pi≈%.6f  error %+.6f\n",
		m.thrown, m.total, m.hits, est, est-math.Pi))

	switch {
	case m.err != nil:
		b.WriteString(m.palette.Miss.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case m.done:
		b.WriteString(m.palette.Hit.Render(m.result.String()))
		b.WriteString("\n")
	default:
		b.WriteString(m.palette.Dim.Render("q to quit"))
		b.WriteString("\n")
	}
	return b.String()
}
