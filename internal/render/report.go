package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/dartboard/internal/estimator"
	"github.com/lox/dartboard/internal/game"
)

// GameReport formats the per-player records and the winner line.
func GameReport(res *game.Result, r *lipgloss.Renderer) string {
	palette := NewPalette(r)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(palette.Dim).
		Headers("Player", "Total", "Average", "Hits", "Std dev").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.NewStyle().Bold(true).Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		})

	for _, rec := range res.Records {
		t.Row(
			rec.Name,
			formatScore(rec.Total),
			fmt.Sprintf("%.3f", rec.Average),
			fmt.Sprintf("%d/%d", rec.Hits, res.Rounds),
			fmt.Sprintf("%.3f", rec.Stats.StdDev()),
		)
	}

	var b strings.Builder
	b.WriteString(palette.Header.Render(fmt.Sprintf(" %s game %s, %d rounds ", res.Mode, res.ID, res.Rounds)))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")

	top, _ := res.Scores.Score(res.Winner)
	if res.Tied() {
		names := append([]string{res.Winner}, res.TiedWith()...)
		b.WriteString(palette.Players[0].Render(fmt.Sprintf("There is a tie! %s all scored %s", strings.Join(names, ", "), formatScore(top))))
	} else {
		b.WriteString(palette.Hit.Render(fmt.Sprintf("%s wins with %s", res.Winner, formatScore(top))))
	}
	b.WriteString("\n")
	return b.String()
}

// TrialsReport summarises a batch of estimation trials.
func TrialsReport(res *estimator.TrialsResult, r *lipgloss.Renderer) string {
	palette := NewPalette(r)
	s := res.Stats
	low, high := s.ConfidenceInterval95()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(palette.Dim).
		Headers("Statistic", "Value").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.NewStyle().Bold(true).Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		}).
		Row("Trials", fmt.Sprintf("%d", s.Count)).
		Row("Darts", fmt.Sprintf("%d", s.TotalDarts)).
		Row("Mean", fmt.Sprintf("%.6f", s.Mean())).
		Row("Pooled", fmt.Sprintf("%.6f", s.PooledPi())).
		Row("Median", fmt.Sprintf("%.6f", s.Median())).
		Row("Std dev", fmt.Sprintf("%.6f", s.StdDev())).
		Row("95% CI", fmt.Sprintf("[%.6f, %.6f]", low, high)).
		Row("Min / Max", fmt.Sprintf("%.6f / %.6f", s.Min, s.Max)).
		Row("Error", fmt.Sprintf("%+.6f", s.Mean()-math.Pi)).
		Row("Elapsed", res.Elapsed.String())

	return palette.Header.Render(" Monte Carlo pi trials ") + "\n" + t.String() + "\n"
}

func formatScore(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.3f", v)
}
