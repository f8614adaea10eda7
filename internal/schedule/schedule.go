package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/five82/taskbar-weather/internal/location"
	"github.com/five82/taskbar-weather/internal/state"
	"github.com/five82/taskbar-weather/internal/surface"
	"github.com/five82/taskbar-weather/internal/weather"
)

// Mode selects how the scheduler runs.
type Mode int

const (
	ModeInteractive Mode = iota
	ModeHeadless
	ModeOneShot
)

// ModeFor maps the command-line switches to a Mode. One-shot wins.
func ModeFor(headless, oneShot bool) Mode {
	switch {
	case oneShot:
		return ModeOneShot
	case headless:
		return ModeHeadless
	default:
		return ModeInteractive
	}
}

func (m Mode) String() string {
	switch m {
	case ModeHeadless:
		return "headless"
	case ModeOneShot:
		return "oneshot"
	default:
		return "interactive"
	}
}

// Result is the outcome of one fetch unit.
type Result struct {
	FetchID  string
	Location location.Location
	Reading  weather.Reading
	Err      error
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Sink receives results. Deliver may be called from any goroutine.
type Sink interface {
	Deliver(Result)
}

// Options configure a Scheduler.
type Options struct {
	Fetcher  weather.Fetcher
	Location location.Location
	Settings surface.Settings
	Store    *state.Store
	// SkipOverlapping drops an Issue while a previous fetch is in flight.
	SkipOverlapping bool
	Logger          *zerolog.Logger
}

// Scheduler owns the repeating-fetch lifecycle.
type Scheduler struct {
	fetcher     weather.Fetcher
	loc         location.Location
	interval    time.Duration
	store       *state.Store
	skipOverlap bool
	log         zerolog.Logger

	inFlight   atomic.Bool
	credWarned atomic.Bool
	wg         sync.WaitGroup
}

// New builds a Scheduler. The location is copied and never changes.
func New(opts Options) *Scheduler {
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Scheduler{
		fetcher:     opts.Fetcher,
		loc:         opts.Location,
		interval:    opts.Settings.Interval(),
		store:       store,
		skipOverlap: opts.SkipOverlapping,
		log:         log,
	}
}

// Issue starts one fetch unit and returns immediately. The unit is
// detached from ctx cancellation and always runs to completion; its result
// goes to sink in completion order. Issue returns false only when
// SkipOverlapping is set and a fetch is already in flight.
func (s *Scheduler) Issue(ctx context.Context, sink Sink) bool {
	if s.skipOverlap && !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().Msg("refresh skipped, previous fetch still in flight")
		return false
	}
	unitCtx := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if s.skipOverlap {
			defer s.inFlight.Store(false)
		}
		sink.Deliver(s.fetch(unitCtx))
	}()
	return true
}

// Wait blocks until every issued fetch unit has delivered its result.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// OneShot performs a single fetch and prints the result line to out.
func (s *Scheduler) OneShot(ctx context.Context, out io.Writer) error {
	res := s.fetch(ctx)
	if res.Err != nil {
		return res.Err
	}
	_, err := fmt.Fprintln(out, FormatLine(res.Reading, res.Location))
	return err
}

// Headless fetches and prints every interval until ctx is cancelled.
// Failures are reported on errOut and never stop the loop.
func (s *Scheduler) Headless(ctx context.Context, out, errOut io.Writer) error {
	cron := gocron.NewScheduler(time.Local)
	cron.SingletonModeAll()

	_, err := cron.Every(s.interval).Do(func() {
		res := s.fetch(ctx)
		if res.Err != nil {
			fmt.Fprintln(errOut, DescribeError(res.Err))
			return
		}
		fmt.Fprintln(out, FormatLine(res.Reading, res.Location))
	})
	if err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}

	cron.StartAsync()
	<-ctx.Done()
	cron.Stop()
	return nil
}

func (s *Scheduler) fetch(ctx context.Context) Result {
	res := Result{FetchID: uuid.NewString(), Location: s.loc}
	log := s.log.With().Str("fetch_id", res.FetchID).Str("location", s.loc.String()).Logger()
	log.Debug().Msg("fetching weather")

	if s.fetcher == nil {
		res.Err = errors.New("no weather fetcher configured")
	} else {
		res.Reading, res.Err = s.fetcher.Fetch(ctx, s.loc)
	}

	if errors.Is(res.Err, weather.ErrMissingCredential) {
		if s.credWarned.CompareAndSwap(false, true) {
			log.Warn().Err(res.Err).Msg("weather provider needs an API key, not fetching")
		}
		return res
	}
	if res.Err != nil {
		snap := s.store.Update(nil, res.Err)
		log.Error().Err(res.Err).Int("consecutive_failures", snap.ConsecutiveFailures).Msg("could not fetch weather data")
		if snap.IsOffline() && snap.HasReading {
			log.Warn().Time("last_success", snap.LastSuccess).Msg("weather service offline, last reading is stale")
		}
		return res
	}
	s.store.Update(&res.Reading, nil)
	log.Info().Float64("temp", res.Reading.Temperature).Float64("feels_like", res.Reading.FeelsLike).Msg("weather data")
	return res
}

// FormatLine renders the line printed in one-shot and headless modes.
func FormatLine(r weather.Reading, loc location.Location) string {
	return fmt.Sprintf("%.1f°C (feels like %.1f°C) at %s", Round1(r.Temperature), Round1(r.FeelsLike), loc)
}

// DescribeError renders a fetch error with a remediation hint.
func DescribeError(err error) string {
	var werr *weather.Error
	if errors.As(err, &werr) {
		if hint := werr.Hint(); hint != "" {
			return fmt.Sprintf("Error: %v (%s)", werr, hint)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}

// Round1 rounds half away from zero to one decimal and folds -0 into 0.
func Round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0
	}
	return r
}
