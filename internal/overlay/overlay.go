package overlay

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/taskbar-weather/internal/location"
	"github.com/five82/taskbar-weather/internal/surface"
)

// Options configure the overlay.
type Options struct {
	Settings  surface.Settings
	Location  location.Location
	ThemeName string
	PrefsPath string
	Logger    *zerolog.Logger

	// OnStart runs once after the surface exists and before it draws. The
	// handle is live; this is where the first fetch and the stealth
	// routine are kicked off.
	OnStart func(Handle)
	// OnRefresh is called on the overlay goroutine whenever the refresh
	// timer fires. It must not block.
	OnRefresh func(Handle)

	// ProgramOptions replace the default tea options (alt screen).
	ProgramOptions []tea.ProgramOption
}

// Run starts the overlay and blocks until the user quits or ctx is
// cancelled. The handle passed to the callbacks is revoked before Run
// returns, so late fetch results are dropped.
func Run(ctx context.Context, opts Options) error {
	h := Handle{cell: &liveness{}}
	defer h.Revoke()

	m := NewModel(opts, func() {
		if opts.OnRefresh != nil {
			opts.OnRefresh(h)
		}
	})

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.ProgramOptions == nil {
		progOpts = append(progOpts, tea.WithAltScreen())
	} else {
		progOpts = append(progOpts, opts.ProgramOptions...)
	}

	p := tea.NewProgram(m, progOpts...)
	h.bind(p)

	if opts.OnStart != nil {
		opts.OnStart(h)
	}

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
