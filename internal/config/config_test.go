package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Created {
		t.Fatal("Created = false, want true for a fresh config")
	}
	if cfg.City != nil || cfg.Country != nil {
		t.Fatalf("template resolved a location: city=%v country=%v", cfg.City, cfg.Country)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != Template() {
		t.Fatalf("template content = %q, want %q", content, Template())
	}
	if !strings.Contains(string(content), `#city = "Oulu"`) {
		t.Fatalf("template should carry the commented default city, got %q", content)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}
	if again.Created {
		t.Fatal("Created = true on second Load, want false")
	}
}

func TestLoad_ParsesAndTrimsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
city = "  Oulu  "
country = "fi"
provider = "OpenWeatherMap"
endpoint = " http://127.0.0.1:9999/weather "
reposition = false
skip_overlapping = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.City == nil || *cfg.City != "Oulu" {
		t.Fatalf("City = %v, want Oulu", cfg.City)
	}
	if cfg.Country == nil || *cfg.Country != "fi" {
		t.Fatalf("Country = %v, want fi (upper-casing happens in the resolver)", cfg.Country)
	}
	if cfg.Provider != ProviderOpenWeather {
		t.Fatalf("Provider = %q, want %q", cfg.Provider, ProviderOpenWeather)
	}
	if cfg.Endpoint != "http://127.0.0.1:9999/weather" {
		t.Fatalf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.Reposition {
		t.Fatal("Reposition = true, want false")
	}
	if !cfg.SkipOverlapping {
		t.Fatal("SkipOverlapping = false, want true")
	}
	if cfg.Created {
		t.Fatal("Created = true for an existing file")
	}
}

func TestLoad_DefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("city = \"\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.City != nil {
		t.Fatalf("blank city should be nil, got %q", *cfg.City)
	}
	if cfg.Provider != ProviderProxy {
		t.Fatalf("Provider = %q, want %q", cfg.Provider, ProviderProxy)
	}
	if !cfg.Reposition {
		t.Fatal("Reposition should default to true")
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`city = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q even on error", cfg.Path, path)
	}
}

func TestLoad_UnknownProviderFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`provider = "metoffice"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("Load error = %v, want unknown provider", err)
	}
}

func TestDefaultPath_UsesUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath returned error: %v", err)
	}
	if !strings.HasPrefix(got, dir) {
		t.Fatalf("DefaultPath = %q, want it under %q", got, dir)
	}
	if !strings.HasSuffix(got, filepath.Join(appDirName, configFileName)) {
		t.Fatalf("DefaultPath = %q, want suffix %q", got, filepath.Join(appDirName, configFileName))
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLoadEnv_ReadsOverrides(t *testing.T) {
	t.Setenv(EnvCity, " Turku ")
	t.Setenv(EnvCountry, "")
	t.Setenv(EnvAPIKey, "secret")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadEnv returned error: %v", err)
	}
	if env.City == nil || *env.City != "Turku" {
		t.Fatalf("City = %v, want Turku", env.City)
	}
	if env.Country != nil {
		t.Fatalf("blank country should be nil, got %q", *env.Country)
	}
	if env.APIKey != "secret" {
		t.Fatalf("APIKey = %q, want secret", env.APIKey)
	}
}

func TestLoadEnv_DotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(dotenv, []byte(EnvCity+"=FromFile\n"+EnvCountry+"=se\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvCity, "FromProcess")
	// Register cleanup for the variable godotenv is about to set.
	t.Setenv(EnvCountry, "")
	if err := os.Unsetenv(EnvCountry); err != nil {
		t.Fatalf("Unsetenv: %v", err)
	}

	env, err := LoadEnv(dotenv)
	if err != nil {
		t.Fatalf("LoadEnv returned error: %v", err)
	}
	if env.City == nil || *env.City != "FromProcess" {
		t.Fatalf("City = %v, want FromProcess", env.City)
	}
	if env.Country == nil || *env.Country != "se" {
		t.Fatalf("Country = %v, want se from .env", env.Country)
	}
}
