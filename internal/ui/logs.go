package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftbook/internal/logging"
)

// logTailLines is how many lines of the log file the overlay shows.
const logTailLines = 200

func tailLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logTailMsg{}
		}
		lines, err := logging.Tail(path, logTailLines)
		return logTailMsg{lines: lines, err: err}
	}
}

// renderLogs renders the recent log overlay, newest lines at the bottom.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	width := max(20, m.width-6)
	height := max(3, m.height-6)

	var body []string
	switch {
	case m.logErr != nil:
		body = []string{styles.DangerText.Render(m.logErr.Error())}
	case len(m.logLines) == 0:
		body = []string{styles.MutedText.Render("Log is empty")}
	default:
		lines := m.logLines
		if len(lines) > height {
			lines = lines[len(lines)-height:]
		}
		for _, line := range lines {
			body = append(body, colorizeLogLine(truncate(line, width), styles))
		}
	}

	title := styles.Text.Bold(true).Render("Recent log")
	if m.logPath != "" {
		title += "  " + styles.FaintText.Render(truncateMiddle(m.logPath, width-12))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(width + 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(title+"\n\n"+strings.Join(body, "\n")),
	)
}

// colorizeLogLine tints slog text lines by level.
func colorizeLogLine(line string, styles Styles) string {
	switch {
	case strings.Contains(line, "level=ERROR"):
		return styles.DangerText.Render(line)
	case strings.Contains(line, "level=WARN"):
		return styles.WarningText.Render(line)
	case strings.Contains(line, "level=DEBUG"):
		return styles.FaintText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}
