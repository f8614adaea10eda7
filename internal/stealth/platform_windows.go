//go:build windows

package stealth

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procFindWindowW      = user32.NewProc("FindWindowW")
	procGetDesktopWindow = user32.NewProc("GetDesktopWindow")
	procSetParent        = user32.NewProc("SetParent")
	procGetWindowLong    = user32.NewProc(windowLongProc("GetWindowLong"))
	procSetWindowLong    = user32.NewProc(windowLongProc("SetWindowLong"))
	procSetWindowPos     = user32.NewProc("SetWindowPos")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procSHAppBarMessage  = shell32.NewProc("SHAppBarMessage")
	procSetLastError     = kernel32.NewProc("SetLastError")
)

const (
	gwlExStyle = -20

	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpFrameChanged = 0x0020

	abmGetTaskbarPos = 0x00000005

	abeLeft   = 0
	abeTop    = 1
	abeRight  = 2
	abeBottom = 3
)

// appBarData mirrors APPBARDATA.
type appBarData struct {
	cbSize           uint32
	hWnd             windows.HWND
	uCallbackMessage uint32
	uEdge            uint32
	rc               windows.Rect
	lParam           uintptr
}

// The *Ptr variants only exist as exports on 64-bit user32.
func windowLongProc(base string) string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return base + "PtrW"
	}
	return base + "W"
}

type win32 struct{}

// Native returns the platform for the running OS.
func Native() Platform { return win32{} }

func (win32) LocateByTitle(title string) (Window, error) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("encode title: %w", err)
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return Window(hwnd), nil
}

func (win32) TaskbarGeometry() (Taskbar, error) {
	abd := appBarData{}
	abd.cbSize = uint32(unsafe.Sizeof(abd))
	ok, _, _ := procSHAppBarMessage.Call(abmGetTaskbarPos, uintptr(unsafe.Pointer(&abd)))
	if ok == 0 {
		return Taskbar{}, errors.New("taskbar position unavailable")
	}

	edge := EdgeUnknown
	switch abd.uEdge {
	case abeLeft:
		edge = EdgeLeft
	case abeTop:
		edge = EdgeTop
	case abeRight:
		edge = EdgeRight
	case abeBottom:
		edge = EdgeBottom
	}

	return Taskbar{
		Rect: Rect{
			Left:   int(abd.rc.Left),
			Top:    int(abd.rc.Top),
			Right:  int(abd.rc.Right),
			Bottom: int(abd.rc.Bottom),
		},
		Edge: edge,
	}, nil
}

func (win32) WindowSize(w Window) (int, int, error) {
	var rc windows.Rect
	ok, _, err := procGetWindowRect.Call(uintptr(w), uintptr(unsafe.Pointer(&rc)))
	if ok == 0 {
		return 0, 0, fmt.Errorf("get window rect: %w", err)
	}
	return int(rc.Right - rc.Left), int(rc.Bottom - rc.Top), nil
}

func (win32) ReparentToDesktopRoot(w Window) error {
	desktop, _, _ := procGetDesktopWindow.Call()
	if desktop == 0 {
		return errors.New("desktop window unavailable")
	}
	clearLastError()
	prev, _, err := procSetParent.Call(uintptr(w), desktop)
	if prev == 0 {
		if err := lastError(err); err != nil {
			return fmt.Errorf("set parent: %w", err)
		}
	}
	return nil
}

func (win32) SetToolWindowStyle(w Window) error {
	clearLastError()
	style, _, err := procGetWindowLong.Call(uintptr(w), signed(gwlExStyle))
	if style == 0 {
		if err := lastError(err); err != nil {
			return fmt.Errorf("get extended style: %w", err)
		}
	}

	style = style&^wsExAppWindow | wsExToolWindow

	clearLastError()
	prev, _, err := procSetWindowLong.Call(uintptr(w), signed(gwlExStyle), style)
	if prev == 0 {
		if err := lastError(err); err != nil {
			return fmt.Errorf("set extended style: %w", err)
		}
	}
	return nil
}

func (win32) ApplyPlacement(w Window, p Placement) error {
	flags := uintptr(swpFrameChanged | swpNoSize | swpNoZOrder)
	if !p.Move {
		flags |= swpNoMove
	}
	ok, _, err := procSetWindowPos.Call(
		uintptr(w),
		0,
		uintptr(int32(p.Point.X)),
		uintptr(int32(p.Point.Y)),
		0, 0,
		flags,
	)
	if ok == 0 {
		return fmt.Errorf("set window pos: %w", err)
	}
	return nil
}

func signed(v int32) uintptr {
	return uintptr(v)
}

func clearLastError() {
	_, _, _ = procSetLastError.Call(0)
}

func lastError(err error) error {
	if err == nil || errors.Is(err, windows.ERROR_SUCCESS) {
		return nil
	}
	return err
}
