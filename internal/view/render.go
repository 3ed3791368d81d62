package view

import (
	"strconv"
	"strings"

	"github.com/five82/liftbook/internal/program"
)

// Page is the render model for one loaded program. Both the terminal and the
// HTML surfaces draw from it; neither keeps visual state of its own.
type Page struct {
	Header   Header
	Tabs     []Tab
	Days     []DaySection
	Cooldown *CooldownSection
}

// Header holds the program-detail header fields.
type Header struct {
	Title            string
	Description      string
	PrimaryGoal      string
	SafetyNote       string
	WarmupDuration   string
	WorkoutMoves     string
	CardioDuration   string
	CooldownDuration string
}

// Tab is one entry of the day tab strip.
type Tab struct {
	DayID  string
	Label  string
	Index  int
	Active bool
}

// DaySection is the content of one day. Visible is true for exactly one
// section of a Page.
type DaySection struct {
	DayID     string
	Name      string
	Visible   bool
	Warmup    WarmupBlock
	Exercises []ExerciseBlock
}

// WarmupBlock lists the interchangeable warmup options shown before every day.
type WarmupBlock struct {
	Title   string
	Prompt  string
	Options []program.WarmupOption
}

// ExerciseBlock is one exercise card.
type ExerciseBlock struct {
	Emoji    string
	Name     string
	Sets     string
	Reps     string
	Notes    string
	Rest     string
	VideoURL string
}

// Heading returns "<emoji> <name>", or just the name.
func (e ExerciseBlock) Heading() string {
	return joinNonEmpty(e.Emoji, e.Name)
}

// CooldownSection is the post-workout block.
type CooldownSection struct {
	Title   string
	Cardio  *CooldownCard
	Stretch *CooldownCard
}

// CooldownCard is one cooldown activity.
type CooldownCard struct {
	Emoji       string
	Name        string
	Description string
	VideoURL    string
}

// Heading returns "<emoji> <name>", or just the name.
func (c CooldownCard) Heading() string {
	return joinNonEmpty(c.Emoji, c.Name)
}

const (
	warmupTitle       = "🔥 Warm-up"
	warmupPrompt      = "Choose one of the following options to prepare your body:"
	cooldownTitle     = "Cardio & Stretch (Cool-down)"
	untitledDayPrefix = "Day "
)

// Render projects doc into a Page with activeDayID selected. An empty or
// unknown activeDayID selects the first day, so a Page built from a valid
// document always has exactly one visible section and one active tab.
func Render(doc *program.Document, activeDayID string) Page {
	if doc == nil || len(doc.Days) == 0 {
		return Page{}
	}

	active := doc.DayIndex(activeDayID)
	if active < 0 {
		active = 0
	}

	page := Page{
		Header: Header{
			Title:            doc.Name,
			Description:      doc.Description,
			PrimaryGoal:      doc.Goals.Primary,
			SafetyNote:       doc.Goals.Safety,
			WarmupDuration:   doc.Structure.Warmup,
			WorkoutMoves:     doc.Structure.Workout,
			CardioDuration:   doc.Structure.Cardio,
			CooldownDuration: doc.Structure.Cooldown,
		},
		Tabs: make([]Tab, 0, len(doc.Days)),
		Days: make([]DaySection, 0, len(doc.Days)),
	}

	warmup := renderWarmup(doc)
	for i, day := range doc.Days {
		label := strings.TrimSpace(day.Name)
		if label == "" {
			label = untitledDayPrefix + strconv.Itoa(i+1)
		}
		page.Tabs = append(page.Tabs, Tab{
			DayID:  day.ID,
			Label:  label,
			Index:  i,
			Active: i == active,
		})

		section := DaySection{
			DayID:     day.ID,
			Name:      label,
			Visible:   i == active,
			Warmup:    warmup,
			Exercises: make([]ExerciseBlock, 0, len(day.Exercises)),
		}
		for _, ex := range day.Exercises {
			section.Exercises = append(section.Exercises, ExerciseBlock{
				Emoji:    ex.Emoji,
				Name:     ex.Name,
				Sets:     ex.Sets.String(),
				Reps:     ex.Reps.String(),
				Notes:    ex.Notes,
				Rest:     ex.Rest,
				VideoURL: program.VideoSearchURL(ex.VideoQuery),
			})
		}
		page.Days = append(page.Days, section)
	}

	page.Cooldown = renderCooldown(doc.Cooldown)
	return page
}

// ActiveDay returns the visible section.
func (p Page) ActiveDay() (DaySection, bool) {
	for _, d := range p.Days {
		if d.Visible {
			return d, true
		}
	}
	return DaySection{}, false
}

func renderWarmup(doc *program.Document) WarmupBlock {
	title := warmupTitle
	if d := strings.TrimSpace(doc.Structure.Warmup); d != "" {
		title += " (" + d + ")"
	}
	return WarmupBlock{
		Title:   title,
		Prompt:  warmupPrompt,
		Options: append([]program.WarmupOption(nil), doc.WarmupOptions...),
	}
}

func renderCooldown(c *program.Cooldown) *CooldownSection {
	if c == nil || (c.Cardio == nil && c.Stretch == nil) {
		return nil
	}
	section := &CooldownSection{Title: cooldownTitle}
	if c.Cardio != nil {
		// The cardio entry never carries a demo link.
		section.Cardio = &CooldownCard{
			Emoji:       c.Cardio.Emoji,
			Name:        c.Cardio.Name,
			Description: c.Cardio.Description,
		}
	}
	if c.Stretch != nil {
		section.Stretch = &CooldownCard{
			Emoji:       c.Stretch.Emoji,
			Name:        c.Stretch.Name,
			Description: c.Stretch.Description,
			VideoURL:    program.VideoSearchURL(c.Stretch.VideoQuery),
		}
	}
	return section
}

func joinNonEmpty(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
