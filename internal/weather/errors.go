package weather

import "fmt"

// Kind classifies fetch failures.
type Kind int

const (
	// KindNetwork means the service could not be reached.
	KindNetwork Kind = iota + 1
	// KindService means the service answered with a non-success status.
	KindService
	// KindMalformed means the response could not be decoded.
	KindMalformed
	// KindMissingCredential means the provider needs an API key and none was set.
	KindMissingCredential
)

// Error is returned by Fetch for every failure.
type Error struct {
	Kind   Kind
	Status int // HTTP status for KindService
	Err    error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrNetworkUnreachable = &Error{Kind: KindNetwork}
	ErrService            = &Error{Kind: KindService}
	ErrMalformedResponse  = &Error{Kind: KindMalformed}
	ErrMissingCredential  = &Error{Kind: KindMissingCredential}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return "could not connect to the weather service"
	case KindService:
		return fmt.Sprintf("weather service responded with status %d", e.Status)
	case KindMalformed:
		return "received an undecipherable response from the weather service"
	case KindMissingCredential:
		return "weather service API key is not configured"
	default:
		return "weather fetch failed"
	}
}

// Hint is a one-line remediation suggestion for command-line output.
func (e *Error) Hint() string {
	switch e.Kind {
	case KindNetwork:
		return "check your internet connection; the next refresh will retry"
	case KindService:
		return "the service might be temporarily down; try again later"
	case KindMalformed:
		return "check the configured endpoint points at a compatible weather API"
	case KindMissingCredential:
		return "set TASKBAR_WEATHER_API_KEY or switch provider to \"proxy\""
	default:
		return ""
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind, and on Status when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Status == 0 || t.Status == e.Status
}
