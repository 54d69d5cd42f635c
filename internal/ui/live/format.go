package live

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"learnstyle/internal/questionnaire"
	"learnstyle/internal/report"
)

const progressWidth = 30

// View renders the current phase.
func (m Model) View() string {
	switch m.phase {
	case phaseLoading:
		return m.spinner.View() + " Memuat soal...\n"
	case phaseFailed:
		return lipgloss.JoinVertical(lipgloss.Left,
			stylize(m.snap.Banner, m.noColor, colorError),
			"",
			m.help.ShortHelpView([]key.Binding{m.keys.Retry, m.keys.Quit}),
		) + "\n"
	case phaseLogin:
		return stylize(m.snap.Banner, m.noColor, colorError) + "\n"
	case phaseResult:
		if m.result == nil {
			return ""
		}
		return report.RenderText(*m.result, report.TextOptions{NoColor: m.noColor, Width: m.width}) +
			"\n" + stylize("Tekan q untuk keluar.", m.noColor, colorMuted) + "\n"
	}
	return m.questionnaireView()
}

func (m Model) questionnaireView() string {
	snap := m.snap
	lines := []string{
		renderHeader(snap, m.noColor),
		renderProgress(snap, m.noColor),
		"",
	}
	for i, item := range snap.Items {
		lines = append(lines, renderItem(item, i == m.cursor, slices.Contains(snap.Missing, item.Number), m.noColor))
	}
	if snap.Validation != "" {
		lines = append(lines, stylize(snap.Validation, m.noColor, colorWarn))
	}
	if snap.Banner != "" {
		lines = append(lines, stylize(snap.Banner, m.noColor, colorError))
	}
	if m.phase == phaseSubmitting {
		lines = append(lines, m.spinner.View()+" "+m.ctrl.Messages().SubmissionActive)
	}
	lines = append(lines, "", m.help.View(m.keys))
	return strings.Join(lines, "\n") + "\n"
}

func renderHeader(snap questionnaire.Snapshot, noColor bool) string {
	title := "Kuesioner Gaya Belajar"
	if !noColor {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	page := fmt.Sprintf("Halaman %d/%d", snap.Page.CurrentPage+1, snap.Page.TotalPages)
	return title + "  " + stylize(page, noColor, colorMuted)
}

// renderProgress draws a fixed-width bar with the answered count.
func renderProgress(snap questionnaire.Snapshot, noColor bool) string {
	filled := progressWidth * snap.Progress / 100
	bar := stylize(strings.Repeat("█", filled), noColor, colorOK) + strings.Repeat("░", progressWidth-filled)
	return fmt.Sprintf("%s %3d%%  %d/%d dijawab", bar, snap.Progress, snap.Answered, questionnaire.TotalQuestions)
}

func renderItem(item questionnaire.Item, selected, missing, noColor bool) string {
	pointer := "  "
	if selected {
		pointer = stylize("> ", noColor, colorAccent)
	}
	number := fmt.Sprintf("%2d.", item.Number)
	if missing {
		number = stylize(number, noColor, colorWarn)
	}
	choice, answered := item.Answer.Choice()
	option := func(c questionnaire.Choice, text string) string {
		mark := "( )"
		if answered && choice == c {
			mark = stylize("(•)", noColor, colorOK)
		}
		return fmt.Sprintf("      %s %s. %s", mark, c.Letter(), text)
	}
	return strings.Join([]string{
		pointer + number + " " + item.Question.Prompt,
		option(questionnaire.ChoiceA, item.Question.OptionA),
		option(questionnaire.ChoiceB, item.Question.OptionB),
	}, "\n")
}

var (
	colorOK     = lipgloss.Color("42")
	colorWarn   = lipgloss.Color("220")
	colorError  = lipgloss.Color("196")
	colorAccent = lipgloss.Color("39")
	colorMuted  = lipgloss.Color("244")
)

// stylize applies a foreground color unless color is disabled.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
