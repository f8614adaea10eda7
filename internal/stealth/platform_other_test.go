//go:build !windows

package stealth

import (
	"context"
	"errors"
	"testing"

	"github.com/five82/taskbar-weather/internal/surface"
)

func TestNative_Unsupported(t *testing.T) {
	if _, err := Native().LocateByTitle("x"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("LocateByTitle err = %v, want ErrUnsupported", err)
	}

	p := New(Options{Settings: surface.Default(), Delay: -1, Reposition: true})
	if got := p.Run(context.Background()); got != StateFailed {
		t.Fatalf("Run() = %v, want %v", got, StateFailed)
	}
}
