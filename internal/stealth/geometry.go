package stealth

// Edge is the screen edge the taskbar is docked to.
type Edge int

const (
	EdgeUnknown Edge = iota
	EdgeLeft
	EdgeTop
	EdgeRight
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Taskbar is the taskbar rectangle and the edge it is docked to.
type Taskbar struct {
	Rect Rect
	Edge Edge
}

// Point is a screen position in pixels.
type Point struct {
	X, Y int
}

// Margin is the gap kept between the overlay and the taskbar.
const Margin = 10

// Fallback is used when the taskbar geometry cannot be read.
var Fallback = Point{X: 20, Y: 20}

// Place computes the overlay's top-left corner next to the taskbar for an
// overlay of w x h pixels. Bottom and unknown edges share a rule.
func Place(tb Taskbar, w, h int) Point {
	r := tb.Rect
	switch tb.Edge {
	case EdgeTop:
		return Point{X: r.Right - w - Margin, Y: r.Bottom + Margin}
	case EdgeLeft:
		return Point{X: r.Right + Margin, Y: r.Bottom - h - Margin}
	case EdgeRight:
		return Point{X: r.Left - w - Margin, Y: r.Bottom - h - Margin}
	default:
		return Point{X: r.Right - w - Margin, Y: r.Top - h - Margin}
	}
}
