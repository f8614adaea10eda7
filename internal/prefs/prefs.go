// Package prefs persists overlay preferences that the user changes at
// runtime (currently only the theme). They live beside the config file in
// prefs.toml and never affect fetching.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds overlay preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

// DefaultTheme is used when no preference has been saved.
const DefaultTheme = "Nightfox"

const fileName = "prefs.toml"

// DefaultPath returns <user config dir>/taskbar-weather/prefs.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("~", ".config", "taskbar-weather", fileName)
	}
	return filepath.Join(dir, "taskbar-weather", fileName)
}

// Load reads preferences from path (DefaultPath when empty). A missing file
// yields defaults with no error. An unreadable or malformed file yields
// defaults together with the error so the caller can log it.
func Load(path string) (Prefs, error) {
	p := Prefs{Theme: DefaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return p, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read prefs: %w", err)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: DefaultTheme}, fmt.Errorf("parse prefs: %w", err)
	}

	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath()
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
