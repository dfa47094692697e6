package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Search        lipgloss.Style
	Header        lipgloss.Style
	Checked       lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	Arrow         lipgloss.Style
	Popup         lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		TabActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Search:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Checked: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2).
			Width(48),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Arrow:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// CategoryColor returns the accent color for a category tag
func CategoryColor(tag string) string {
	switch tag {
	case "SOFTWARE":
		return "33" // blue
	case "PLUGIN":
		return "78" // green
	case "TEMPLATE":
		return "214" // yellow
	case "PRESET", "PROJECT", "PACK":
		return "170" // magenta
	default:
		return "245"
	}
}
