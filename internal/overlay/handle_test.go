package overlay

import (
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/taskbar-weather/internal/location"
	"github.com/five82/taskbar-weather/internal/schedule"
	"github.com/five82/taskbar-weather/internal/weather"
)

type recordingPoster struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (p *recordingPoster) Send(msg tea.Msg) {
	p.mu.Lock()
	p.msgs = append(p.msgs, msg)
	p.mu.Unlock()
}

func (p *recordingPoster) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.msgs)
}

var oulu = location.Location{City: "Oulu", Country: "FI"}

func TestHandle_DeliverPostsResult(t *testing.T) {
	p := &recordingPoster{}
	h := NewHandle(p)

	h.Deliver(schedule.Result{Location: oulu, Reading: weather.Reading{Temperature: 1}})

	if p.count() != 1 {
		t.Fatalf("posted %d messages, want 1", p.count())
	}
	msg, ok := p.msgs[0].(resultMsg)
	if !ok {
		t.Fatalf("posted %T, want resultMsg", p.msgs[0])
	}
	if msg.Location != oulu {
		t.Fatalf("Location = %v, want %v", msg.Location, oulu)
	}
}

func TestHandle_RevokedIsNoop(t *testing.T) {
	p := &recordingPoster{}
	h := NewHandle(p)
	copyOfH := h

	h.Revoke()
	copyOfH.Deliver(schedule.Result{Location: oulu})

	if p.count() != 0 {
		t.Fatalf("posted %d messages after revoke, want 0", p.count())
	}
	if copyOfH.Alive() {
		t.Fatal("copy still alive after revoke")
	}

	// Second revoke is harmless.
	h.Revoke()
}

func TestHandle_ZeroValueIsRevoked(t *testing.T) {
	var h Handle
	if h.Alive() {
		t.Fatal("zero Handle reports alive")
	}
	h.Deliver(schedule.Result{Err: errors.New("x")})
	h.Revoke()
}

func TestHandle_BindAfterRevokeStaysDead(t *testing.T) {
	h := Handle{cell: &liveness{}}
	h.Revoke()

	p := &recordingPoster{}
	h.bind(p)
	h.Deliver(schedule.Result{Location: oulu})

	if p.count() != 0 {
		t.Fatalf("posted %d messages, want 0", p.count())
	}
}

func TestHandle_ConcurrentDeliverAndRevoke(t *testing.T) {
	p := &recordingPoster{}
	h := NewHandle(p)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Deliver(schedule.Result{Location: oulu})
		}()
	}
	h.Revoke()
	delivered := p.count()
	wg.Wait()

	if p.count() != delivered {
		t.Fatalf("deliveries after revoke: before=%d after=%d", delivered, p.count())
	}
}
