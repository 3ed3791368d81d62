// Package ui is the terminal surface of liftbook, built on Bubble Tea.
//
// # Screens
//
//   - Catalog: one card per program summary from the shared state.Store.
//     j/k move the cursor, enter opens the program, r reloads the catalog.
//   - Program: the header (title, description, goal, safety note, section
//     durations), the day tab strip and a scrollable viewport holding the
//     active day followed by the cool-down. h/l and tab cycle days, 1-9 jump
//     directly, esc or b returns to the catalog.
//
// With a single configured program, or when started as "liftbook view <id>",
// the catalog is skipped and returning to it is disabled.
//
// # State
//
// Program selection and day navigation are owned by a view.State kept in the
// Model. Every load runs as a tea.Cmd and reports back a programLoadedMsg
// carrying the ticket it was started with; view.State drops completions whose
// ticket was superseded, so the last program the user picked always wins.
// A failed load leaves the previous screen in place and shows a notice in
// the header.
//
// Rendering goes through view.Render, the same projection the web surface
// uses, so both surfaces agree on tabs, sections and video links.
//
// # Overlays
//
//   - ?: keyboard shortcuts
//   - L: the tail of liftbook's own log file
//
// T cycles the theme (Nightfox, Kanagawa, Slate) and persists the choice
// through the prefs package.
package ui
