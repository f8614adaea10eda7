package overlay

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the overlay palette.
type Theme struct {
	Name string

	Surface string
	Border  string
	Text    string
	Muted   string
	Accent  string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Frame       lipgloss.Style
	Reading     lipgloss.Style
	Unavailable lipgloss.Style
	Pending     lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Reading: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Unavailable: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Danger)),

		Pending: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:    "Nightfox",
		Surface: "#192330", // bg1
		Border:  "#39506d", // bg4
		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Accent:  "#719cd6", // blue
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:    "Kanagawa",
		Surface: "#1F1F28", // sumiInk3
		Border:  "#54546D", // sumiInk6
		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Accent:  "#7E9CD8", // crystalBlue
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:    "Slate",
		Surface: "#0f172a", // slate-900
		Border:  "#334155", // slate-700
		Text:    "#e2e8f0", // slate-200
		Muted:   "#94a3b8", // slate-400
		Accent:  "#38bdf8", // sky-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400
	}
}
