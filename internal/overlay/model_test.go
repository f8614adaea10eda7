package overlay

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/taskbar-weather/internal/prefs"
	"github.com/five82/taskbar-weather/internal/schedule"
	"github.com/five82/taskbar-weather/internal/surface"
	"github.com/five82/taskbar-weather/internal/weather"
)

func newTestModel(refresh func()) Model {
	return NewModel(Options{Settings: surface.Default(), Location: oulu}, refresh)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func TestModel_SuccessText(t *testing.T) {
	m := newTestModel(nil)
	m, _ = update(t, m, resultMsg(schedule.Result{
		Location: oulu,
		Reading:  weather.Reading{Temperature: 7.35, FeelsLike: 3},
	}))

	if got, want := m.Text(), "7.4°C in Oulu"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if !strings.Contains(m.View(), "7.4°C in Oulu") {
		t.Fatalf("View() missing reading: %q", m.View())
	}
}

func TestModel_FailureShowsPlaceholder(t *testing.T) {
	m := newTestModel(nil)
	m, _ = update(t, m, resultMsg(schedule.Result{
		Location: oulu,
		Err:      weather.ErrNetworkUnreachable,
	}))

	if m.Text() != Unavailable {
		t.Fatalf("Text() = %q, want %q", m.Text(), Unavailable)
	}
}

func TestModel_LastCompletionWins(t *testing.T) {
	m := newTestModel(nil)
	// Issued second, completed first.
	m, _ = update(t, m, resultMsg(schedule.Result{FetchID: "b", Location: oulu, Reading: weather.Reading{Temperature: 2}}))
	// Issued first, completed last.
	m, _ = update(t, m, resultMsg(schedule.Result{FetchID: "a", Location: oulu, Err: errors.New("timeout")}))

	if m.Text() != Unavailable {
		t.Fatalf("Text() = %q, want %q", m.Text(), Unavailable)
	}
}

func TestModel_EmptyBeforeFirstResult(t *testing.T) {
	m := newTestModel(nil)
	if m.Text() != "" {
		t.Fatalf("Text() = %q, want empty", m.Text())
	}
}

func TestModel_TickRequestsRefreshAndReschedules(t *testing.T) {
	calls := 0
	m := newTestModel(func() { calls++ })

	m, cmd := update(t, m, refreshTickMsg(time.Now()))
	if calls != 1 {
		t.Fatalf("refresh calls = %d, want 1", calls)
	}
	if cmd == nil {
		t.Fatal("expected next tick command")
	}

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if calls != 2 {
		t.Fatalf("refresh calls = %d, want 2", calls)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(nil)
		_, cmd := update(t, m, key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: command did not quit", key.String())
		}
	}
}

func TestModel_ThemeCycleSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := NewModel(Options{Settings: surface.Default(), Location: oulu, ThemeName: "Nightfox", PrefsPath: path}, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("T")})
	if m.ThemeName() != "Kanagawa" {
		t.Fatalf("ThemeName() = %q, want Kanagawa", m.ThemeName())
	}

	p, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", p.Theme)
	}
}
