package program

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document mirrors a data/<id>.json program file.
type Document struct {
	Name          string         `json:"name" yaml:"name"`
	Description   string         `json:"description" yaml:"description"`
	Goals         Goals          `json:"goals" yaml:"goals"`
	Structure     Structure      `json:"structure" yaml:"structure"`
	WarmupOptions []WarmupOption `json:"warmupOptions" yaml:"warmupOptions"`
	Days          []Day          `json:"days" yaml:"days"`
	Cooldown      *Cooldown      `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`
}

// Goals describes what a program is for.
type Goals struct {
	Primary string `json:"primary" yaml:"primary"`
	Safety  string `json:"safety" yaml:"safety"`
}

// Structure holds the display durations of each session phase.
type Structure struct {
	Warmup   string `json:"warmup" yaml:"warmup"`
	Workout  string `json:"workout" yaml:"workout"`
	Cardio   string `json:"cardio" yaml:"cardio"`
	Cooldown string `json:"cooldown" yaml:"cooldown"`
}

// WarmupOption is one interchangeable preparatory activity.
type WarmupOption struct {
	Emoji       string `json:"emoji" yaml:"emoji"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"`
}

// Day is one training day in a program.
type Day struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// Exercise is a single movement prescription.
type Exercise struct {
	Emoji      string   `json:"emoji" yaml:"emoji"`
	Name       string   `json:"name" yaml:"name"`
	Sets       Quantity `json:"sets" yaml:"sets"`
	Reps       Quantity `json:"reps" yaml:"reps"`
	Notes      string   `json:"notes" yaml:"notes"`
	Rest       string   `json:"rest" yaml:"rest"`
	VideoQuery string   `json:"videoQuery" yaml:"videoQuery"`
}

// Cooldown is the fixed cardio + stretch pair that closes every session.
type Cooldown struct {
	Cardio  *CooldownEntry `json:"cardio,omitempty" yaml:"cardio,omitempty"`
	Stretch *CooldownEntry `json:"stretch,omitempty" yaml:"stretch,omitempty"`
}

// CooldownEntry describes one cooldown activity.
type CooldownEntry struct {
	Emoji       string `json:"emoji" yaml:"emoji"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	VideoQuery  string `json:"videoQuery" yaml:"videoQuery"`
}

// Summary is the subset of a Document shown on the selection screen.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Goals       Goals     `json:"goals"`
	Structure   Structure `json:"structure"`
}

// Summary extracts the selection-screen fields for the program stored under id.
func (d *Document) Summary(id string) Summary {
	if d == nil {
		return Summary{ID: id}
	}
	return Summary{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Goals:       d.Goals,
		Structure:   d.Structure,
	}
}

// DayIndex returns the position of the day with the given id, or -1.
func (d *Document) DayIndex(id string) int {
	if d == nil {
		return -1
	}
	for i, day := range d.Days {
		if day.ID == id {
			return i
		}
	}
	return -1
}

// Quantity is a set or rep count. Program files use both numbers (3) and
// free text ("8-12", "AMRAP"), so the value is kept as display text.
type Quantity string

// String returns the display text.
func (q Quantity) String() string {
	return string(q)
}

// UnmarshalJSON accepts a JSON number or string.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*q = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("quantity must be a number or string: %w", err)
	}
	*q = Quantity(formatNumber(n.String()))
	return nil
}

// MarshalJSON writes whole numbers as JSON numbers and everything else as strings.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(q)); err == nil && strconv.Itoa(n) == string(q) {
		return []byte(q), nil
	}
	return json.Marshal(string(q))
}

// UnmarshalYAML accepts a YAML scalar of any type.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: quantity must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*q = ""
		return nil
	}
	value := strings.TrimSpace(node.Value)
	if node.Tag == "!!int" || node.Tag == "!!float" {
		value = formatNumber(value)
	}
	*q = Quantity(value)
	return nil
}

func formatNumber(value string) string {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
