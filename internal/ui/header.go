package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftbook/internal/view"
)

// chromeHeight is the number of lines used by the header and command bar.
const chromeHeight = 2

// renderMain renders the header, command bar and the active screen.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	if m.view.Document() != nil {
		b.WriteString(m.renderProgram())
	} else {
		b.WriteString(m.renderCatalog())
	}
	return b.String()
}

// renderHeader renders the status line: logo, location, load state and notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	b := newBar(m.theme.Surface)
	b.add("liftbook", styles.Logo)

	if doc := m.view.Document(); doc != nil {
		b.add(truncate(doc.Name, 40), styles.Text.Bold(true))
	} else if !m.single {
		b.add("Programs", styles.Text.Bold(true))
	}

	if id, ok := m.view.Pending(); ok {
		b.add("Loading "+id+"...", styles.WarningText.Bold(true))
	} else if m.catalogLoading {
		b.add("Loading programs...", styles.WarningText.Bold(true))
	}

	if failed := m.snapshot.Failed(); failed > 0 && m.view.Document() == nil && !m.single {
		b.add(fmt.Sprintf("%d unavailable", failed), styles.DangerText)
	}

	if m.notice != "" {
		b.add(m.notice, styles.DangerText)
	}

	line := lipgloss.NewStyle().MaxWidth(max(0, m.width-2)).Render(b.join(2))
	return styles.Header.Width(m.width).Render(line)
}

// renderCommandBar shows the bindings that apply to the current screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	var bindings []key.Binding
	switch {
	case m.view.Document() != nil:
		bindings = []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.JumpDay, m.keys.Down}
		if !m.single {
			bindings = append(bindings, m.keys.Back)
		}
	case m.single:
		if m.view.Phase() == view.PhaseNoProgram {
			bindings = []key.Binding{m.keys.Reload}
		}
	default:
		bindings = []key.Binding{m.keys.Down, m.keys.Open, m.keys.Reload}
	}
	bindings = append(bindings, m.keys.Help, m.keys.Quit)

	b := newBar(m.theme.Surface)
	for _, binding := range bindings {
		h := binding.Help()
		b.addPair(h.Key, styles.AccentText, h.Desc, styles.MutedText)
	}
	line := b.join(2)
	return styles.Footer.Width(m.width).Render(lipgloss.NewStyle().MaxWidth(max(0, m.width-2)).Render(line))
}

// bar builds a one-line status bar on a single background color. Styled
// segments end with a reset, so every gap is painted explicitly or the bar
// shows holes. See https://github.com/charmbracelet/lipgloss/discussions/78
type bar struct {
	bg    lipgloss.Color
	gap   string
	parts []string
}

func newBar(color string) *bar {
	bg := lipgloss.Color(color)
	return &bar{bg: bg, gap: lipgloss.NewStyle().Background(bg).Render(" ")}
}

func (b *bar) add(text string, style lipgloss.Style) {
	if text == "" {
		return
	}
	b.parts = append(b.parts, b.paint(text, style))
}

// addPair adds a key hint and its description as one segment.
func (b *bar) addPair(hint string, hintStyle lipgloss.Style, desc string, descStyle lipgloss.Style) {
	b.parts = append(b.parts, b.paint(hint, hintStyle)+b.gap+b.paint(desc, descStyle))
}

func (b *bar) paint(text string, style lipgloss.Style) string {
	style = style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.gap)
}

// join separates segments by width painted spaces.
func (b *bar) join(width int) string {
	return strings.Join(b.parts, strings.Repeat(b.gap, width))
}
