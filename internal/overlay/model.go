package overlay

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/taskbar-weather/internal/location"
	"github.com/five82/taskbar-weather/internal/prefs"
	"github.com/five82/taskbar-weather/internal/schedule"
	"github.com/five82/taskbar-weather/internal/surface"
)

// Model is the overlay's Bubble Tea state. Its text is only ever changed
// inside Update, on the program's goroutine.
type Model struct {
	settings  surface.Settings
	location  location.Location
	theme     Theme
	prefsPath string
	refresh   func()
	log       zerolog.Logger

	spinner     spinner.Model
	text        string
	hasResult   bool
	ok          bool
	lastUpdated time.Time
}

// Messages

type resultMsg schedule.Result

type refreshTickMsg time.Time

// Commands

func refreshTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// NewModel builds the overlay model. refresh is the outbound "refresh
// requested" signal fired by the model's timer and the r key.
func NewModel(opts Options, refresh func()) Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return Model{
		settings:  opts.Settings,
		location:  opts.Location,
		theme:     GetTheme(opts.ThemeName),
		prefsPath: opts.PrefsPath,
		refresh:   refresh,
		log:       log,
		spinner:   s,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.settings.Title),
		m.spinner.Tick,
		refreshTickCmd(m.settings.Interval()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		res := schedule.Result(msg)
		m.text = FormatResult(res)
		m.hasResult = true
		m.ok = res.OK()
		m.lastUpdated = time.Now()
		return m, nil

	case refreshTickMsg:
		m.log.Debug().Msg("re-fetching weather data")
		m.requestRefresh()
		return m, refreshTickCmd(m.settings.Interval())

	case spinner.TickMsg:
		if m.hasResult {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "r":
		m.requestRefresh()
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.log.Warn().Err(err).Msg("could not save prefs")
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) requestRefresh() {
	if m.refresh != nil {
		m.refresh()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	styles := m.theme.Styles()

	var content string
	switch {
	case !m.hasResult:
		content = styles.Pending.Render(m.spinner.View() + " " + m.location.City)
	case m.ok:
		content = styles.Reading.Render(m.text)
	default:
		content = styles.Unavailable.Render(m.text)
	}
	return styles.Frame.Render(content)
}

// Text returns the overlay's observable text; empty until the first result.
func (m Model) Text() string {
	return m.text
}

// ThemeName returns the active theme.
func (m Model) ThemeName() string {
	return m.theme.Name
}
