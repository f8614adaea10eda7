package overlay

import (
	"fmt"

	"github.com/five82/taskbar-weather/internal/schedule"
)

// Unavailable is the fixed text shown for any failed fetch.
const Unavailable = "Weather unavailable."

// FormatResult renders the overlay text for a fetch result.
func FormatResult(res schedule.Result) string {
	if !res.OK() {
		return Unavailable
	}
	return fmt.Sprintf("%.1f°C in %s", schedule.Round1(res.Reading.Temperature), res.Location.City)
}
