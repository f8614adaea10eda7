// Package config loads taskbar-weather's on-disk configuration and its
// environment overrides.
//
// # Configuration File
//
// The file lives at the platform config directory:
//
//   - Linux: ~/.config/taskbar-weather/config.toml
//   - macOS: ~/Library/Application Support/taskbar-weather/config.toml
//   - Windows: %AppData%\taskbar-weather\config.toml
//
// When it does not exist, Load writes a template with commented-out
// example values and reports Created = true. The template never resolves a
// location on its own; the user has to uncomment and edit it.
//
// # TOML Format
//
//	city = "Oulu"
//	country = "FI"
//	provider = "proxy"          # or "openweathermap"
//	endpoint = ""               # optional base URL override
//	reposition = true           # move the overlay next to the taskbar
//	skip_overlapping = false    # skip a refresh while one is in flight
//
// Every key is optional. City and Country stay nil when absent or blank so
// the location cascade can tell "unset" apart from a real value.
//
// # Environment
//
// LoadEnv reads TASKBAR_WEATHER_CITY, TASKBAR_WEATHER_COUNTRY and
// TASKBAR_WEATHER_API_KEY, after seeding the environment from a .env file
// in the working directory if one exists. Variables already set in the
// process environment take priority over .env entries.
//
// # Error Handling
//
// Load returns errors for path resolution, unreadable files and TOML
// syntax or an unknown provider. The returned Config still carries Path
// and Created so callers can degrade gracefully.
package config
