package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Provider selects the weather service flavour.
type Provider string

const (
	// ProviderProxy is the keyless proxy endpoint.
	ProviderProxy Provider = "proxy"
	// ProviderOpenWeather talks to OpenWeatherMap directly and needs an API key.
	ProviderOpenWeather Provider = "openweathermap"
)

// Config captures the settings read from config.toml.
type Config struct {
	// City and Country are nil when the key is absent or blank.
	City    *string
	Country *string

	Provider        Provider
	Endpoint        string
	Reposition      bool
	SkipOverlapping bool

	// Path is the resolved config file location.
	Path string
	// Created reports whether Load wrote the template during this call.
	Created bool
}

const (
	appDirName     = "taskbar-weather"
	configFileName = "config.toml"

	// DefaultCity and DefaultCountry only seed the template file.
	DefaultCity    = "Oulu"
	DefaultCountry = "FI"
)

// DefaultPath returns the platform config path, e.g.
// ~/.config/taskbar-weather/config.toml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Template is the content written when no config file exists yet.
func Template() string {
	return fmt.Sprintf("# Set your (favorite?) city and country here:\n#city = %q\n#country = %q\n",
		DefaultCity, DefaultCountry)
}

// Load reads the config file at path (or the default path), writing the
// commented template first when the file does not exist. A missing file
// that could not be created yields an empty Config, not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Provider:   ProviderProxy,
		Reposition: true,
		Path:       resolved,
	}

	if _, err := os.Stat(resolved); errors.Is(err, os.ErrNotExist) {
		cfg.Created = writeTemplate(resolved) == nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		City            *string `toml:"city"`
		Country         *string `toml:"country"`
		Provider        string  `toml:"provider"`
		Endpoint        string  `toml:"endpoint"`
		Reposition      *bool   `toml:"reposition"`
		SkipOverlapping bool    `toml:"skip_overlapping"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.City = trimmed(raw.City)
	cfg.Country = trimmed(raw.Country)
	cfg.Endpoint = strings.TrimSpace(raw.Endpoint)
	cfg.SkipOverlapping = raw.SkipOverlapping
	if raw.Reposition != nil {
		cfg.Reposition = *raw.Reposition
	}

	switch p := Provider(strings.ToLower(strings.TrimSpace(raw.Provider))); p {
	case "":
	case ProviderProxy, ProviderOpenWeather:
		cfg.Provider = p
	default:
		return cfg, fmt.Errorf("parse config: unknown provider %q", raw.Provider)
	}

	return cfg, nil
}

func writeTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template()), 0o644); err != nil {
		return fmt.Errorf("write config template: %w", err)
	}
	return nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
