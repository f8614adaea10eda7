// Package stealth tucks the overlay window next to the taskbar and hides
// it from alt-tab and the taskbar button list.
//
// The routine runs once, shortly after the overlay starts:
//
//	Scheduled → Waiting (Delay) → Locating (by window title)
//	  → Positioning (only with Reposition) → Hiding → Done
//
// Any step can end in Failed instead. Failures are logged and otherwise
// ignored; the overlay keeps working where the OS left it.
//
// Placement keeps a 10 px margin from the taskbar:
//
//	top     (R-w-10, B+10)
//	left    (R+10,   B-h-10)
//	right   (L-w-10, B-h-10)
//	bottom  (R-w-10, T-h-10)
//
// w and h are the window's real outer size, or the nominal surface size
// when the OS cannot report it. When the taskbar cannot be queried the
// window goes to (20, 20).
//
// The three hiding calls (reparent, tool-window style, placement) are all
// attempted even when one of them fails; any failure ends in Failed.
//
// Native() talks to user32/shell32 on Windows. Elsewhere every call fails
// with ErrUnsupported, so the routine ends in Failed at the locating step.
package stealth
