package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/taskbar-weather/internal/config"
	"github.com/five82/taskbar-weather/internal/location"
	"github.com/five82/taskbar-weather/internal/logging"
	"github.com/five82/taskbar-weather/internal/overlay"
	"github.com/five82/taskbar-weather/internal/prefs"
	"github.com/five82/taskbar-weather/internal/schedule"
	"github.com/five82/taskbar-weather/internal/state"
	"github.com/five82/taskbar-weather/internal/stealth"
	"github.com/five82/taskbar-weather/internal/surface"
	"github.com/five82/taskbar-weather/internal/weather"
)

// Options configure a taskbar-weather run.
type Options struct {
	ConfigPath string // empty uses the platform default
	PrefsPath  string // empty uses the platform default
	EnvFiles   []string

	// City and Country come from the command line; nil when not given.
	City    *string
	Country *string

	Headless bool
	OneShot  bool

	Stdout io.Writer
	Stderr io.Writer

	// Fetcher replaces the HTTP weather client when set.
	Fetcher weather.Fetcher
	// Platform replaces the native stealth platform when set.
	Platform stealth.Platform
	// ProgramOptions are passed to the overlay's tea.Program.
	ProgramOptions []tea.ProgramOption
}

// reportedError marks an error whose message has already reached the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already written to stderr by Run.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// Run resolves the location and runs the selected mode until it finishes
// or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	mode := schedule.ModeFor(opts.Headless, opts.OneShot)
	initLogging(mode, stderr)
	log := logging.Named("app")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Path).Msg("ignoring configuration file")
	}
	if cfg.Created {
		fmt.Fprintf(stderr, "NOTE: configuration file established, do edit/uncomment the appropriate values in\n  %s\n\n", cfg.Path)
	}

	env, err := config.LoadEnv(opts.EnvFiles...)
	if err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	loc, err := location.Resolve(
		location.Source{Name: "command line", City: opts.City, Country: opts.Country},
		location.Source{Name: "environment", City: env.City, Country: env.Country},
		location.Source{Name: "config file", City: cfg.City, Country: cfg.Country},
	)
	if err != nil {
		writeGuidance(stderr, cfg)
		return reportedError{err: err}
	}
	log.Info().Str("city", loc.City).Msg("city set")
	log.Info().Str("country", loc.Country).Msg("country set")

	fetcher := opts.Fetcher
	if fetcher == nil {
		client, err := newClient(cfg, env)
		if err != nil {
			return fmt.Errorf("init weather client: %w", err)
		}
		fetcher = client
	}

	settings := surface.Default()
	sched := schedule.New(schedule.Options{
		Fetcher:         fetcher,
		Location:        loc,
		Settings:        settings,
		Store:           &state.Store{},
		SkipOverlapping: cfg.SkipOverlapping,
		Logger:          logging.Named("schedule"),
	})

	switch mode {
	case schedule.ModeOneShot:
		if err := sched.OneShot(ctx, stdout); err != nil {
			fmt.Fprintln(stderr, schedule.DescribeError(err))
			return reportedError{err: err}
		}
		return nil
	case schedule.ModeHeadless:
		return sched.Headless(ctx, stdout, stderr)
	}

	return runOverlay(ctx, opts, cfg, loc, settings, sched)
}

func runOverlay(ctx context.Context, opts Options, cfg config.Config, loc location.Location, settings surface.Settings, sched *schedule.Scheduler) error {
	log := logging.Named("app")

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring prefs file")
	}

	positioner := stealth.New(stealth.Options{
		Platform:   opts.Platform,
		Settings:   settings,
		Reposition: cfg.Reposition,
		Logger:     logging.Named("stealth"),
	})

	return overlay.Run(ctx, overlay.Options{
		Settings:  settings,
		Location:  loc,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
		Logger:    logging.Named("overlay"),
		OnStart: func(h overlay.Handle) {
			positioner.Start(ctx)
			log.Info().Msg("initial weather fetch")
			sched.Issue(ctx, h)
		},
		OnRefresh: func(h overlay.Handle) {
			sched.Issue(ctx, h)
		},
		ProgramOptions: opts.ProgramOptions,
	})
}

func newClient(cfg config.Config, env config.Env) (*weather.Client, error) {
	o := weather.Options{Endpoint: cfg.Endpoint}
	if cfg.Provider == config.ProviderOpenWeather {
		o.APIKey = env.APIKey
		o.RequireKey = true
		o.OpenWeatherQuery = true
	}
	return weather.NewClient(o)
}

// initLogging routes logs to a file while the overlay owns the terminal.
// The file stays open for the life of the process.
func initLogging(mode schedule.Mode, stderr io.Writer) {
	opt := logging.FromEnv()
	switch {
	case mode != schedule.ModeInteractive:
		opt.Writer = stderr
	default:
		f, err := logging.OpenFile()
		if err != nil {
			opt.Writer = io.Discard
		} else {
			opt.Writer = f
		}
	}
	logging.Init(opt)
}

func writeGuidance(w io.Writer, cfg config.Config) {
	if cfg.Created {
		fmt.Fprintln(w, "Location not yet concretely configured, please edit the above mentioned configuration file.")
	} else {
		fmt.Fprintln(w, "Error: location is not (yet) concretely configured.")
		if cfg.Path != "" {
			fmt.Fprintf(w, "\nTo fix this, please create or edit the config file at:\n  %s\n", cfg.Path)
			fmt.Fprintln(w, "\nAnd add your location, for example:\n  city = \"YourCity\"\n  country = \"XY\"")
		}
	}
	fmt.Fprintf(w, "\nAlternatively, specify a location using command-line arguments or the %s and %s environment variables.\n",
		config.EnvCity, config.EnvCountry)
	fmt.Fprintln(w, "Run with  --help  to see all the available options and their usage.")
}
