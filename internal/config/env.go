package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvCity      = "TASKBAR_WEATHER_CITY"
	EnvCountry   = "TASKBAR_WEATHER_COUNTRY"
	EnvAPIKey    = "TASKBAR_WEATHER_API_KEY"
	EnvLogLevel  = "TASKBAR_WEATHER_LOG"
	EnvLogFormat = "TASKBAR_WEATHER_LOG_FORMAT"
)

// Env holds the location override and credential taken from the environment.
type Env struct {
	City    *string
	Country *string
	APIKey  string
}

// LoadEnv seeds the process environment from the given .env files (missing
// files are fine, existing variables win) and reads the overrides.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return readEnv(), err
		}
	}
	return readEnv(), nil
}

func readEnv() Env {
	return Env{
		City:    lookup(EnvCity),
		Country: lookup(EnvCountry),
		APIKey:  strings.TrimSpace(os.Getenv(EnvAPIKey)),
	}
}

func lookup(key string) *string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	return trimmed(&v)
}
