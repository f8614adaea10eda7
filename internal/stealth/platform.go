package stealth

import "errors"

var (
	// ErrUnsupported is returned on hosts without a window system we know.
	ErrUnsupported = errors.New("stealth positioning is not supported on this platform")
	// ErrNotFound is returned when no window carries the requested title.
	ErrNotFound = errors.New("window not found")
)

// Window is an opaque native window handle.
type Window uintptr

// Placement is the final SetWindowPos-style request.
type Placement struct {
	Point Point
	// Move is false when the window keeps its current position.
	Move bool
}

// Platform is the OS surface the positioner drives.
type Platform interface {
	LocateByTitle(title string) (Window, error)
	TaskbarGeometry() (Taskbar, error)
	// WindowSize returns the window's outer width and height in pixels.
	WindowSize(w Window) (width, height int, err error)
	ReparentToDesktopRoot(w Window) error
	// SetToolWindowStyle removes the window from alt-tab and the taskbar.
	SetToolWindowStyle(w Window) error
	ApplyPlacement(w Window, p Placement) error
}
