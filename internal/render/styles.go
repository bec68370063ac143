package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the styles used to draw markers and board lines.
type Palette struct {
	Board   lipgloss.Style
	Hit     lipgloss.Style
	Miss    lipgloss.Style
	Players []lipgloss.Style
	Header  lipgloss.Style
	Dim     lipgloss.Style
}

var playerColors = []string{"#FFD700", "#7D56F4", "#96CEB4", "#FF6B6B", "#4ECDC4", "#FFEAA7"}

// NewPalette builds styles for the given lipgloss renderer.
func NewPalette(r *lipgloss.Renderer) Palette {
	p := Palette{
		Board: r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Hit:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Miss:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Dim: r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
	for _, c := range playerColors {
		p.Players = append(p.Players, r.NewStyle().Foreground(lipgloss.Color(c)).Bold(true))
	}
	return p
}

// NewRenderer returns a lipgloss renderer for w. With color disabled it is
// pinned to the ASCII profile so output carries no escape codes.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
