// Package theme owns the light/dark preference and the terminal styles
// derived from it.
package theme

import "github.com/charmbracelet/lipgloss"

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode maps a stored preference to a mode. Anything but "dark" is
// light.
func ParseMode(s string) Mode {
	if Mode(s) == Dark {
		return Dark
	}
	return Light
}

// Palette is the colour scheme of one mode.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Booking    lipgloss.Color
	Message    lipgloss.Color
	Dark       bool
}

func LightPalette() Palette {
	return Palette{
		Background: lipgloss.Color("#f9fafb"),
		Foreground: lipgloss.Color("#111827"),
		Primary:    lipgloss.Color("#7c3aed"), // violet-600
		Accent:     lipgloss.Color("#ede9fe"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#e5e7eb"),
		Booking:    lipgloss.Color("#22c55e"),
		Message:    lipgloss.Color("#3b82f6"),
	}
}

func DarkPalette() Palette {
	return Palette{
		Background: lipgloss.Color("#111827"),
		Foreground: lipgloss.Color("#f3f4f6"),
		Primary:    lipgloss.Color("#a78bfa"), // violet-400
		Accent:     lipgloss.Color("#312e81"),
		Muted:      lipgloss.Color("#9ca3af"),
		Border:     lipgloss.Color("#374151"),
		Booking:    lipgloss.Color("#4ade80"),
		Message:    lipgloss.Color("#60a5fa"),
		Dark:       true,
	}
}

func PaletteFor(m Mode) Palette {
	if m == Dark {
		return DarkPalette()
	}
	return LightPalette()
}

// Styles holds every style the renderers use.
type Styles struct {
	Palette Palette

	Header     lipgloss.Style
	Sidebar    lipgloss.Style
	Link       lipgloss.Style
	ActiveLink lipgloss.Style
	Content    lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Badge      lipgloss.Style
	Card       lipgloss.Style
	Booking    lipgloss.Style
	Message    lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border),

		Sidebar: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(p.Border),

		Link: lipgloss.NewStyle().
			Foreground(p.Foreground),

		ActiveLink: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16a34a")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dc2626")),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#ef4444")).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		Booking: lipgloss.NewStyle().Foreground(p.Booking),
		Message: lipgloss.NewStyle().Foreground(p.Message),
	}
}
