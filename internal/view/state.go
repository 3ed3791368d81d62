package view

import (
	"errors"
	"fmt"

	"github.com/five82/liftbook/internal/program"
)

var (
	// ErrUnknownDay is returned by SelectDay for an id the program does not have.
	ErrUnknownDay = errors.New("unknown day")
	// ErrNoProgram is returned by day selection while no program is loaded.
	ErrNoProgram = errors.New("no program loaded")
	// ErrStaleLoad is returned by Complete for a ticket superseded by a newer
	// BeginLoad or by ReturnToCatalog.
	ErrStaleLoad = errors.New("stale program load")
)

// Phase is the coarse state of a State.
type Phase int

const (
	PhaseNoProgram Phase = iota
	PhaseLoading
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	default:
		return "no-program"
	}
}

// Navigation is the user-visible selection: which program and which day.
// A zero Navigation means the selection screen is shown.
type Navigation struct {
	ProgramID string
	DayID     string
}

// Ticket identifies one program load. Only the most recent ticket can
// complete.
type Ticket struct {
	Seq       uint64
	ProgramID string
}

// State is the program view state machine:
//
//	NoProgram --BeginLoad--> Loading --Complete(ok)--> Loaded(first day)
//	Loading --Complete(err)--> state before BeginLoad
//	Loaded(d) --SelectDay(d')--> Loaded(d')
//	any --ReturnToCatalog--> NoProgram
//
// The zero value is NoProgram. State is not safe for concurrent use; each
// surface owns its own.
type State struct {
	phase   Phase
	seq     uint64
	pending string
	doc     *program.Document
	nav     Navigation
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Navigation returns the current selection.
func (s *State) Navigation() Navigation {
	return s.nav
}

// Document returns the loaded program, or nil.
func (s *State) Document() *program.Document {
	return s.doc
}

// Pending returns the program id of the in-flight load, if any.
func (s *State) Pending() (string, bool) {
	if s.phase != PhaseLoading {
		return "", false
	}
	return s.pending, true
}

// BeginLoad starts loading id and returns the ticket the caller must pass to
// Complete. Any earlier ticket becomes stale.
func (s *State) BeginLoad(id string) Ticket {
	s.seq++
	s.phase = PhaseLoading
	s.pending = id
	return Ticket{Seq: s.seq, ProgramID: id}
}

// Complete finishes the load identified by t. A stale ticket leaves the state
// untouched and returns ErrStaleLoad. A fetch error, or a document that fails
// validation, restores the state from before BeginLoad and returns the error.
// On success the program becomes active with its first day selected.
func (s *State) Complete(t Ticket, doc *program.Document, err error) error {
	if t.Seq != s.seq || s.phase != PhaseLoading {
		return ErrStaleLoad
	}
	s.pending = ""

	if err == nil {
		err = doc.Validate()
	}
	if err != nil {
		s.restore()
		return fmt.Errorf("load program %q: %w", t.ProgramID, err)
	}

	s.doc = doc
	s.nav = Navigation{ProgramID: t.ProgramID, DayID: doc.Days[0].ID}
	s.phase = PhaseLoaded
	return nil
}

func (s *State) restore() {
	if s.doc != nil {
		s.phase = PhaseLoaded
		return
	}
	s.phase = PhaseNoProgram
	s.nav = Navigation{}
}

// SelectDay makes dayID the visible day. Unknown ids return ErrUnknownDay and
// change nothing.
func (s *State) SelectDay(dayID string) error {
	if s.doc == nil {
		return ErrNoProgram
	}
	if s.doc.DayIndex(dayID) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownDay, dayID)
	}
	s.nav.DayID = dayID
	return nil
}

// SelectDayIndex selects the day at 0-based position i.
func (s *State) SelectDayIndex(i int) error {
	if s.doc == nil {
		return ErrNoProgram
	}
	if i < 0 || i >= len(s.doc.Days) {
		return fmt.Errorf("%w: position %d", ErrUnknownDay, i+1)
	}
	return s.SelectDay(s.doc.Days[i].ID)
}

// NextDay selects the following day, wrapping to the first.
func (s *State) NextDay() error {
	return s.stepDay(1)
}

// PrevDay selects the preceding day, wrapping to the last.
func (s *State) PrevDay() error {
	return s.stepDay(-1)
}

func (s *State) stepDay(delta int) error {
	if s.doc == nil {
		return ErrNoProgram
	}
	n := len(s.doc.Days)
	cur := s.doc.DayIndex(s.nav.DayID)
	if cur < 0 {
		cur = 0
	}
	return s.SelectDayIndex(((cur+delta)%n + n) % n)
}

// ReturnToCatalog discards the loaded program and any in-flight load.
func (s *State) ReturnToCatalog() {
	s.seq++
	s.phase = PhaseNoProgram
	s.pending = ""
	s.doc = nil
	s.nav = Navigation{}
}

// Page renders the loaded program for the current navigation. It returns
// false when no program is loaded.
func (s *State) Page() (Page, bool) {
	if s.doc == nil {
		return Page{}, false
	}
	return Render(s.doc, s.nav.DayID), true
}
