// Package ui implements carlot's terminal interface on Bubble Tea.
//
// The Model renders the store's paginated view as a table and translates key
// presses into store operations. It never computes filtering, sorting or
// pagination itself; every redraw starts from state.Store.Snapshot.
//
// # Layout
//
//   - Header: logo, page current/total, filtered and total counts, sort
//     descriptor, and a spinner while a load is in flight
//   - Status line: load error, range errors, or the active filter summary
//   - Table: one row per vehicle on the current page; the focused column is
//     bracketed and the sort column carries an arrow
//   - Detail pane (toggle with d): every field of the selected vehicle plus
//     its coordinates. Beside the table on wide terminals, below otherwise
//   - Footer: short key help
//
// # Loading
//
// Remote loads run as a tea.Cmd that calls state.Store.Load, so the fetch
// happens off the UI goroutine. The spinner keeps ticking while any load
// started from the UI is pending or the store reports loading. Starting a
// second load while one is running is allowed; whichever finishes last wins.
//
// # Filter form
//
// The f key opens a modal with one text input per criterion. Blank inputs
// clear their criterion. Numeric inputs that do not parse are reported under
// the field and nothing is applied until they are fixed. Range errors such as
// a minimum year above the maximum are applied and surface in the status
// line, matching the store's behavior of showing an empty list.
//
// # Themes
//
// Nightfox, Kanagawa and Slate are available; T cycles them and the choice is
// saved through the ThemeSaver option.
package ui
