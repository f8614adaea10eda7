package weather

import (
	"context"

	"github.com/five82/taskbar-weather/internal/location"
)

// Reading is one current-conditions sample, in degrees Celsius.
type Reading struct {
	Temperature float64
	FeelsLike   float64
}

// Fetcher is implemented by *Client and by test fakes.
type Fetcher interface {
	Fetch(ctx context.Context, loc location.Location) (Reading, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)
