// Package surface holds the fixed properties of the overlay surface that
// several components must agree on.
package surface

import "time"

// Settings describes the overlay surface. The same value is handed to the
// overlay model, the refresh scheduler and the stealth positioner so the
// title, size and refresh cadence are declared once.
type Settings struct {
	// Title is the window title the overlay sets and the stealth
	// positioner searches for.
	Title string
	// Width and Height are the nominal overlay size in pixels. Placement
	// uses them only when the real window size cannot be read.
	Width  int
	Height int
	// RefreshInterval drives both the headless loop and the overlay's
	// refresh timer.
	RefreshInterval time.Duration
}

const (
	defaultTitle           = "TaskbarWeather"
	defaultWidth           = 160
	defaultHeight          = 40
	defaultRefreshInterval = 15 * time.Minute
)

// Default returns the settings used by the shipped binary.
func Default() Settings {
	return Settings{
		Title:           defaultTitle,
		Width:           defaultWidth,
		Height:          defaultHeight,
		RefreshInterval: defaultRefreshInterval,
	}
}

// Interval returns RefreshInterval, falling back to the default when unset.
func (s Settings) Interval() time.Duration {
	if s.RefreshInterval <= 0 {
		return defaultRefreshInterval
	}
	return s.RefreshInterval
}
