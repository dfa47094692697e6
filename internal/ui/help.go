package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Navigation", [][2]string{
		{"↑/↓, j/k", "Move cursor"},
		{"PgUp/PgDn", "Page up/down"},
		{"Home/End", "Go to top/bottom"},
		{"←/→, h/l", "Previous/next card (preset slider)"},
		{"Tab/S-Tab", "Next/previous category"},
		{"1-9", "Jump to category"},
	}},
	{"Selection", [][2]string{
		{"Space", "Toggle entry"},
		{"a", "Select/deselect everything visible"},
		{"Enter", "Build download manifest"},
		{"m", "Reopen last manifest"},
	}},
	{"Search", [][2]string{
		{"/", "Search all categories by name"},
		{"Esc", "Clear search"},
	}},
	{"Manifest", [][2]string{
		{"↑/↓", "Move between items"},
		{"i", "Show install guide"},
		{"v", "View full manifest"},
		{"y", "Copy mirror links"},
		{"p", "Copy archive password"},
		{"Esc", "Close"},
	}},
	{"Other", [][2]string{
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title string
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(title string) *HelpRenderer {
	return &HelpRenderer{title: title}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render(r.title + " Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, kv := range section.keys {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(kv[0]), descStyle.Render(kv[1])))
		}
		if i < len(helpSections)-1 {
			help.WriteString("\n")
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
