package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftbook/internal/program"
	"github.com/five82/liftbook/internal/view"
)

// renderProgram renders the fixed program header and tab strip above the
// scrollable day viewport.
func (m Model) renderProgram() string {
	page, ok := m.view.Page()
	if !ok {
		return ""
	}
	return m.programTop(page, m.theme.Styles()) + "\n" + m.dayViewport.View()
}

// refreshDayViewport resizes the viewport to the space left under the
// program header and reloads the visible day. reset scrolls back to the top.
func (m *Model) refreshDayViewport(reset bool) {
	page, ok := m.view.Page()
	if !ok {
		return
	}
	styles := m.theme.Styles()
	top := m.programTop(page, styles)

	m.dayViewport.Width = m.width
	m.dayViewport.Height = max(3, m.height-chromeHeight-lipgloss.Height(top))
	m.dayViewport.SetContent(m.renderDay(page, styles))
	if reset {
		m.dayViewport.GotoTop()
	}
}

func (m Model) programTop(page view.Page, styles Styles) string {
	h := page.Header
	width := max(20, m.width-2)

	lines := []string{styles.AccentText.Bold(true).Render(h.Title)}
	if h.Description != "" {
		lines = append(lines, styles.MutedText.Width(width).Render(h.Description))
	}
	if h.PrimaryGoal != "" {
		lines = append(lines, styles.FaintText.Render("Goal   ")+styles.Text.Render(h.PrimaryGoal))
	}
	if h.SafetyNote != "" {
		lines = append(lines, styles.FaintText.Render("Safety ")+styles.WarningText.Render(h.SafetyNote))
	}
	structure := structureLine(program.Structure{
		Warmup:   h.WarmupDuration,
		Workout:  h.WorkoutMoves,
		Cardio:   h.CardioDuration,
		Cooldown: h.CooldownDuration,
	})
	if structure != "" {
		lines = append(lines, styles.FaintText.Render(truncate(structure, width)))
	}
	lines = append(lines, "", m.renderTabs(page.Tabs, styles))
	return strings.Join(lines, "\n")
}

// renderTabs renders the day tab strip with the active tab highlighted. When
// the strip is wider than the screen it scrolls to keep the active tab shown.
func (m Model) renderTabs(tabs []view.Tab, styles Styles) string {
	rendered := make([]string, 0, len(tabs))
	widths := make([]int, 0, len(tabs))
	active := 0
	for i, tab := range tabs {
		label := tab.Label
		if tab.Index < 9 {
			label = strconv.Itoa(tab.Index+1) + " " + label
		}
		style := styles.Tab
		if tab.Active {
			style = styles.TabActive
			active = i
		}
		r := style.Render(label)
		rendered = append(rendered, r)
		widths = append(widths, lipgloss.Width(r))
	}
	if len(rendered) == 0 {
		return ""
	}

	limit := max(1, m.width)
	total := 0
	for _, w := range widths {
		total += w
	}
	if total > limit {
		// One cell on each side for the overflow markers.
		start, end := tabWindow(widths, active, max(1, limit-2))
		parts := []string{styles.FaintText.Render(" ")}
		if start > 0 {
			parts[0] = styles.FaintText.Render("‹")
		}
		parts = append(parts, rendered[start:end]...)
		if end < len(rendered) {
			parts = append(parts, styles.FaintText.Render("›"))
		}
		rendered = parts
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.NewStyle().MaxWidth(limit).Render(strip)
}

// tabWindow returns the widest run of tabs [start, end) around active that
// fits in limit cells.
func tabWindow(widths []int, active, limit int) (start, end int) {
	start, end = active, active+1
	used := widths[active]
	for {
		grew := false
		if end < len(widths) && used+widths[end] <= limit {
			used += widths[end]
			end++
			grew = true
		}
		if start > 0 && used+widths[start-1] <= limit {
			start--
			used += widths[start]
			grew = true
		}
		if !grew {
			return start, end
		}
	}
}

// renderDay renders the visible day followed by the cooldown section.
func (m Model) renderDay(page view.Page, styles Styles) string {
	day, ok := page.ActiveDay()
	if !ok {
		return ""
	}
	width := max(20, m.width-4)

	var b strings.Builder
	writeWarmup(&b, day.Warmup, styles, width)

	b.WriteString("\n")
	b.WriteString(styles.Section(sectionWorkout).Render("💪 " + day.Name))
	b.WriteString("\n")
	if len(day.Exercises) == 0 {
		b.WriteString(styles.MutedText.Render("Rest day"))
		b.WriteString("\n")
	}
	for _, ex := range day.Exercises {
		b.WriteString(styles.Card.Width(width).Render(exerciseCard(ex, styles, width-4)))
		b.WriteString("\n")
	}

	if page.Cooldown != nil {
		b.WriteString("\n")
		b.WriteString(styles.Section(sectionCooldown).Render(page.Cooldown.Title))
		b.WriteString("\n")
		for _, card := range []*view.CooldownCard{page.Cooldown.Cardio, page.Cooldown.Stretch} {
			if card == nil {
				continue
			}
			b.WriteString(styles.Card.Width(width).Render(cooldownCard(*card, styles, width-4)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeWarmup(b *strings.Builder, w view.WarmupBlock, styles Styles, width int) {
	b.WriteString(styles.Section(sectionWarmup).Render(w.Title))
	b.WriteString("\n")
	if len(w.Options) == 0 {
		return
	}
	b.WriteString(styles.MutedText.Render(w.Prompt))
	b.WriteString("\n")
	for _, opt := range w.Options {
		line := "• " + strings.TrimSpace(opt.Emoji+" "+opt.Name)
		if opt.Duration != "" {
			line += styles.FaintText.Render(" (" + opt.Duration + ")")
		}
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(styles.MutedText.PaddingLeft(2).Width(width).Render(opt.Description))
			b.WriteString("\n")
		}
	}
}

func exerciseCard(ex view.ExerciseBlock, styles Styles, width int) string {
	lines := []string{styles.Text.Bold(true).Render(ex.Heading())}

	var detail []string
	if ex.Sets != "" {
		detail = append(detail, "Sets "+ex.Sets)
	}
	if ex.Reps != "" {
		detail = append(detail, "Reps "+ex.Reps)
	}
	if ex.Rest != "" {
		detail = append(detail, "Rest "+ex.Rest)
	}
	if len(detail) > 0 {
		lines = append(lines, styles.Text.Render(strings.Join(detail, " · ")))
	}
	if ex.Notes != "" {
		lines = append(lines, styles.MutedText.Width(width).Render(ex.Notes))
	}
	if ex.VideoURL != "" {
		lines = append(lines, styles.InfoText.Render(ex.VideoURL))
	}
	return strings.Join(lines, "\n")
}

func cooldownCard(c view.CooldownCard, styles Styles, width int) string {
	lines := []string{styles.Text.Bold(true).Render(c.Heading())}
	if c.Description != "" {
		lines = append(lines, styles.MutedText.Width(width).Render(c.Description))
	}
	if c.VideoURL != "" {
		lines = append(lines, styles.InfoText.Render(c.VideoURL))
	}
	return strings.Join(lines, "\n")
}
