// Package logging provides a zerolog wrapper with the defaults
// taskbar-weather uses.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger
type Options struct {
	Level     string
	Format    string // console or json
	Writer    io.Writer
	Component string
}

// Environment knobs, read by FromEnv.
const (
	envLevel  = "TASKBAR_WEATHER_LOG"
	envFormat = "TASKBAR_WEATHER_LOG_FORMAT"
)

// FromEnv builds Options from TASKBAR_WEATHER_LOG / TASKBAR_WEATHER_LOG_FORMAT.
func FromEnv() Options {
	return Options{
		Level:  strings.ToLower(getenv(envLevel, "warn")),
		Format: strings.ToLower(getenv(envFormat, "console")),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// New builds a logger without touching the process-wide root.
func New(opt Options) Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	return ctx.Logger()
}

// Init configures the root logger; only the first call has an effect.
func Init(opt Options) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log := New(opt)
		root.Store(&log)
		inited.Store(true)
	})
}

// Get returns the process-wide root logger.
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Named returns a child logger with a component field.
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}

// OpenFile opens (appending) the log file used while the overlay owns the
// terminal: <user cache dir>/taskbar-weather/taskbar-weather.log.
func OpenFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "taskbar-weather")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "taskbar-weather.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
