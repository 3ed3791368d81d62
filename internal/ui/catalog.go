package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftbook/internal/program"
	"github.com/five82/liftbook/internal/view"
)

// renderCatalog renders the program selection screen, or the startup and
// failure states of the single-program view.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()
	height := max(1, m.height-chromeHeight)

	if m.single {
		msg := styles.MutedText.Render("Loading " + m.singleID + "...")
		if m.view.Phase() == view.PhaseNoProgram {
			msg = styles.DangerText.Render(m.notice) + "\n" +
				styles.MutedText.Render("press r to retry")
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	if len(m.snapshot.Summaries) == 0 {
		msg := styles.MutedText.Render("No programs available")
		if m.catalogLoading {
			msg = styles.MutedText.Render("Loading programs...")
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Choose a workout program"))
	b.WriteString("\n")

	width := max(20, m.width-4)
	for i, sum := range m.snapshot.Summaries {
		card := styles.Card
		if i == m.cursor {
			card = styles.CardFocus
		}
		b.WriteString(card.Width(width).Render(m.summaryCard(sum, styles, width-4)))
		b.WriteString("\n")
	}

	// Keep the cursor visible on short terminals.
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) > height {
		perCard := max(1, (len(lines)-1)/len(m.snapshot.Summaries))
		start := min(len(lines)-height, 1+m.cursor*perCard)
		lines = lines[max(0, start):]
		lines = lines[:min(len(lines), height)]
	}
	return strings.Join(lines, "\n")
}

func (m Model) summaryCard(sum program.Summary, styles Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(sum.Name))
	if sum.Description != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Width(width).Render(sum.Description))
	}
	if sum.Goals.Primary != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Goal "))
		b.WriteString(styles.Text.Render(sum.Goals.Primary))
	}
	if line := structureLine(sum.Structure); line != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(truncate(line, width)))
	}
	return b.String()
}

// structureLine formats the four section durations, skipping blanks.
func structureLine(s program.Structure) string {
	parts := make([]string, 0, 4)
	add := func(label, value string) {
		if v := strings.TrimSpace(value); v != "" {
			parts = append(parts, label+" "+v)
		}
	}
	add("Warm-up", s.Warmup)
	add("Workout", s.Workout)
	add("Cardio", s.Cardio)
	add("Cool-down", s.Cooldown)
	return strings.Join(parts, " · ")
}
