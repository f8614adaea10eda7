//go:build !windows

package stealth

type unsupported struct{}

// Native returns the platform for the running OS.
func Native() Platform { return unsupported{} }

func (unsupported) LocateByTitle(string) (Window, error)   { return 0, ErrUnsupported }
func (unsupported) TaskbarGeometry() (Taskbar, error)      { return Taskbar{}, ErrUnsupported }
func (unsupported) WindowSize(Window) (int, int, error)    { return 0, 0, ErrUnsupported }
func (unsupported) ReparentToDesktopRoot(Window) error     { return ErrUnsupported }
func (unsupported) SetToolWindowStyle(Window) error        { return ErrUnsupported }
func (unsupported) ApplyPlacement(Window, Placement) error { return ErrUnsupported }
