package stealth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/taskbar-weather/internal/surface"
)

// State is a step of the stealth routine.
type State int

const (
	StateScheduled State = iota
	StateWaiting
	StateLocating
	StatePositioning
	StateHiding
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateWaiting:
		return "waiting"
	case StateLocating:
		return "locating"
	case StatePositioning:
		return "positioning"
	case StateHiding:
		return "hiding"
	case StateDone:
		return "done"
	default:
		return "failed"
	}
}

// DefaultDelay gives the surface time to create and title its window.
const DefaultDelay = time.Second

// Options configure a Positioner.
type Options struct {
	Platform Platform
	Settings surface.Settings
	// Delay before looking up the window. Zero means DefaultDelay; use a
	// negative value for no wait.
	Delay time.Duration
	// Reposition moves the window next to the taskbar. When false the
	// window is only hidden from alt-tab and the taskbar.
	Reposition bool
	Logger     *zerolog.Logger
}

// Positioner runs the stealth routine once.
type Positioner struct {
	opts Options
	log  zerolog.Logger

	once sync.Once
	done chan State
}

// New returns a Positioner. A nil Platform selects Native().
func New(opts Options) *Positioner {
	if opts.Platform == nil {
		opts.Platform = Native()
	}
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Positioner{
		opts: opts,
		log:  log.With().Str("component", "stealth").Logger(),
		done: make(chan State, 1),
	}
}

// Start runs the routine on its own goroutine the first time it is called.
// The returned channel yields the terminal state once and is then closed.
// Later calls return the same channel without starting another run.
func (p *Positioner) Start(ctx context.Context) <-chan State {
	p.once.Do(func() {
		go func() {
			p.done <- p.Run(ctx)
			close(p.done)
		}()
	})
	return p.done
}

// Run executes the routine synchronously and returns its terminal state.
// Failures are logged; they never propagate.
func (p *Positioner) Run(ctx context.Context) State {
	state := StateScheduled
	step := func(next State) {
		p.log.Debug().Str("from", state.String()).Str("to", next.String()).Msg("stealth step")
		state = next
	}

	step(StateWaiting)
	if p.opts.Delay > 0 {
		timer := time.NewTimer(p.opts.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			p.log.Debug().Msg("stealth routine cancelled before lookup")
			return StateFailed
		case <-timer.C:
		}
	}

	step(StateLocating)
	title := p.opts.Settings.Title
	win, err := p.opts.Platform.LocateByTitle(title)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			p.log.Debug().Err(err).Msg("stealth routine skipped")
		} else {
			p.log.Error().Err(err).Str("title", title).Msg("could not find overlay window")
		}
		return StateFailed
	}

	placement := Placement{}
	if p.opts.Reposition {
		step(StatePositioning)
		placement = Placement{Point: p.target(win), Move: true}
	}

	step(StateHiding)
	failed := false
	if err := p.opts.Platform.ReparentToDesktopRoot(win); err != nil {
		p.log.Error().Err(err).Msg("could not reparent overlay window")
		failed = true
	}
	if err := p.opts.Platform.SetToolWindowStyle(win); err != nil {
		p.log.Error().Err(err).Msg("could not update window style")
		failed = true
	}
	if err := p.opts.Platform.ApplyPlacement(win, placement); err != nil {
		p.log.Error().Err(err).Msg("could not apply window placement")
		failed = true
	}
	if failed {
		return StateFailed
	}

	step(StateDone)
	if placement.Move {
		p.log.Info().Int("x", placement.Point.X).Int("y", placement.Point.Y).Msg("overlay positioned")
	}
	return StateDone
}

func (p *Positioner) target(win Window) Point {
	tb, err := p.opts.Platform.TaskbarGeometry()
	if err != nil {
		p.log.Warn().Err(err).Int("x", Fallback.X).Int("y", Fallback.Y).Msg("taskbar geometry unavailable, using fallback position")
		return Fallback
	}
	w, h := p.size(win)
	return Place(tb, w, h)
}

// size prefers the window's real outer size; Settings only describes the
// nominal overlay size.
func (p *Positioner) size(win Window) (int, int) {
	w, h, err := p.opts.Platform.WindowSize(win)
	if err != nil || w <= 0 || h <= 0 {
		p.log.Warn().Err(err).Int("width", p.opts.Settings.Width).Int("height", p.opts.Settings.Height).Msg("window size unavailable, using configured size")
		return p.opts.Settings.Width, p.opts.Settings.Height
	}
	return w, h
}
