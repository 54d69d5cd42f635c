package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"learnstyle/internal/soal"
)

// scoreRange is the largest magnitude a dimension score can reach.
const scoreRange = 11

// TextOptions controls terminal rendering.
type TextOptions struct {
	NoColor bool
	// Width wraps paragraphs; zero means 72 columns.
	Width int
}

// RenderText renders a terminal summary of result.
func RenderText(result soal.Result, opts TextOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 72
	}
	var b strings.Builder
	b.WriteString(stylize("Hasil Gaya Belajar", opts.NoColor, lipgloss.NewStyle().Bold(true)))
	b.WriteString("\n")
	if !result.SubmittedAt.IsZero() {
		b.WriteString(stylize("Dikirim "+result.SubmittedAt.Local().Format("02 Jan 2006 15:04"), opts.NoColor, dim()))
		b.WriteString("\n")
	}
	wrap := lipgloss.NewStyle().Width(width - 2)
	for _, r := range rows(result) {
		b.WriteString("\n")
		heading := fmt.Sprintf("%-11s %s (%s)", r.Label, r.Category, formatScore(r.Score))
		b.WriteString(stylize(heading, opts.NoColor, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))))
		b.WriteString("\n  ")
		b.WriteString(ScoreBar(r.Score))
		b.WriteString("\n")
		b.WriteString(indent(wrap.Render(r.Explanation), "  "))
		b.WriteString("\n")
		b.WriteString(indent(wrap.Render(stylize("Saran: ", opts.NoColor, lipgloss.NewStyle().Foreground(lipgloss.Color("42")))+r.Advice), "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// ScoreBar draws a fixed-width gauge from -11 to +11 with a marker at score.
func ScoreBar(score float64) string {
	cells := 2*scoreRange + 1
	pos := int(math.Round(score)) + scoreRange
	pos = max(0, min(cells-1, pos))
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < cells; i++ {
		switch {
		case i == pos:
			b.WriteByte('*')
		case i == scoreRange:
			b.WriteByte('|')
		default:
			b.WriteByte('-')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

func dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
