// Package overlay implements the small always-visible weather surface as a
// Bubble Tea program.
//
// The model owns the displayed text and mutates it only inside Update.
// Fetches run elsewhere and reach the model through a Handle, a revocable
// reference that posts results onto the program's message queue:
//
//	fetch goroutine ── Handle.Deliver ──▶ tea.Program.Send ──▶ Model.Update
//
// When the program exits, Run revokes the handle. Deliveries that arrive
// later are dropped, so a fetch that outlives the window is harmless.
//
// The model also owns the refresh timer. Every Settings.RefreshInterval it
// fires the OnRefresh callback, which in turn issues a new fetch. Results
// are applied in completion order: whichever fetch finishes last decides the
// text.
//
// Key bindings:
//
//	r          refresh now
//	T          cycle theme (saved to prefs)
//	q, esc     quit
//	ctrl+c     quit
package overlay
