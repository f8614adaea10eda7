package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/five82/taskbar-weather/internal/location"
)

const (
	// DefaultProxyEndpoint serves OpenWeather-shaped JSON without a key.
	DefaultProxyEndpoint = "https://msukanen.net/api/weather"
	// DefaultOpenWeatherEndpoint is the OpenWeatherMap current weather API.
	DefaultOpenWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

	defaultUserAgent = "taskbar-weather/0.1"
	requestTimeout   = 10 * time.Second

	breakerTrips   = 3
	breakerTimeout = 5 * time.Minute
)

// Options configure a Client.
type Options struct {
	// Endpoint overrides the provider's default URL.
	Endpoint string
	// APIKey is sent as appid, and only with OpenWeatherQuery.
	APIKey string
	// RequireKey makes Fetch fail with ErrMissingCredential when APIKey is empty.
	RequireKey bool
	// OpenWeatherQuery switches to the q=City,CC&units=metric query style.
	OpenWeatherQuery bool
	HTTPClient       *http.Client
}

// Client fetches current weather over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	apiKey    string
	needKey   bool
	owmQuery  bool
	breaker   *gobreaker.CircuitBreaker
}

// NewClient builds a Client. An empty Endpoint picks the provider default.
func NewClient(opts Options) (*Client, error) {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = DefaultProxyEndpoint
		if opts.OpenWeatherQuery {
			endpoint = DefaultOpenWeatherEndpoint
		}
	}
	base, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	// The breaker only short-circuits overlapping refresh storms against a
	// dead service; its timeout is shorter than the refresh interval so the
	// next scheduled tick always tries the service again.
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather",
		MaxRequests: 1,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTrips
		},
	})

	return &Client{
		baseURL:   base,
		http:      httpClient,
		userAgent: defaultUserAgent,
		apiKey:    strings.TrimSpace(opts.APIKey),
		needKey:   opts.RequireKey,
		owmQuery:  opts.OpenWeatherQuery,
		breaker:   breaker,
	}, nil
}

// Fetch retrieves the current reading for loc. Every failure is an *Error.
func (c *Client) Fetch(ctx context.Context, loc location.Location) (Reading, error) {
	if c == nil {
		return Reading{}, fmt.Errorf("client is nil")
	}
	if c.needKey && c.apiKey == "" {
		return Reading{}, &Error{Kind: KindMissingCredential}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(loc), nil)
	if err != nil {
		return Reading{}, &Error{Kind: KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("execute request: %w", err)}
		}
		if resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			return nil, &Error{Kind: KindService, Status: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		var werr *Error
		if errors.As(err, &werr) {
			return Reading{}, werr
		}
		// Open breaker: the service failed repeatedly and is being skipped.
		return Reading{}, &Error{Kind: KindNetwork, Err: err}
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return Reading{}, &Error{Kind: KindMalformed, Err: fmt.Errorf("unexpected result type %T", result)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Reading{}, &Error{Kind: KindService, Status: resp.StatusCode}
	}
	return decodeReading(resp)
}

func decodeReading(resp *http.Response) (Reading, error) {
	var payload struct {
		Main struct {
			Temp      *float64 `json:"temp"`
			FeelsLike *float64 `json:"feels_like"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reading{}, &Error{Kind: KindMalformed, Err: fmt.Errorf("decode response: %w", err)}
	}
	if payload.Main.Temp == nil {
		return Reading{}, &Error{Kind: KindMalformed, Err: fmt.Errorf("response has no main.temp")}
	}

	reading := Reading{Temperature: *payload.Main.Temp, FeelsLike: *payload.Main.Temp}
	if payload.Main.FeelsLike != nil {
		reading.FeelsLike = *payload.Main.FeelsLike
	}
	return reading, nil
}

func (c *Client) requestURL(loc location.Location) string {
	values := url.Values{}
	if c.owmQuery {
		values.Set("q", loc.City+","+loc.Country)
		values.Set("units", "metric")
		if c.apiKey != "" {
			values.Set("appid", c.apiKey)
		}
	} else {
		values.Set("city", loc.City)
		values.Set("country", loc.Country)
	}
	u := *c.baseURL
	u.RawQuery = values.Encode()
	return u.String()
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
