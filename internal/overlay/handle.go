package overlay

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/taskbar-weather/internal/schedule"
)

// Poster is the part of *tea.Program the handle needs.
type Poster interface {
	Send(msg tea.Msg)
}

// liveness is shared by every copy of a Handle. Revoke waits for in-progress
// deliveries, so a delivery never overlaps teardown.
type liveness struct {
	mu     sync.RWMutex
	dead   bool
	poster Poster
}

// Handle is a non-owning, revocable reference to the overlay surface.
// Copies share the same liveness cell; the zero Handle is already revoked.
type Handle struct {
	cell *liveness
}

// NewHandle returns a live handle posting to p.
func NewHandle(p Poster) Handle {
	return Handle{cell: &liveness{poster: p}}
}

// Deliver hands a fetch result to the surface's own goroutine. It is safe
// to call concurrently and after teardown, where it does nothing.
func (h Handle) Deliver(res schedule.Result) {
	if h.cell == nil {
		return
	}
	h.cell.mu.RLock()
	defer h.cell.mu.RUnlock()
	if h.cell.dead || h.cell.poster == nil {
		return
	}
	h.cell.poster.Send(resultMsg(res))
}

// Alive reports whether deliveries still reach the surface.
func (h Handle) Alive() bool {
	if h.cell == nil {
		return false
	}
	h.cell.mu.RLock()
	defer h.cell.mu.RUnlock()
	return !h.cell.dead
}

// Revoke marks the surface gone. Later calls are no-ops.
func (h Handle) Revoke() {
	if h.cell == nil {
		return
	}
	h.cell.mu.Lock()
	h.cell.dead = true
	h.cell.poster = nil
	h.cell.mu.Unlock()
}

func (h Handle) bind(p Poster) {
	h.cell.mu.Lock()
	if !h.cell.dead {
		h.cell.poster = p
	}
	h.cell.mu.Unlock()
}

// Ensure Handle implements schedule.Sink at compile time.
var _ schedule.Sink = Handle{}
