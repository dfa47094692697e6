package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the popup over a greyed-out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}

	pad := strings.Repeat(" ", x)
	for i, line := range popupLines {
		if y+i >= len(base) {
			base = append(base, pad+line)
			continue
		}
		base[y+i] = pad + line
	}
	return strings.Join(base[:max(height, y+len(popupLines))], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderManifest renders the download manifest overlay body
func (r *Renderer) renderManifest(mv ManifestView) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Download manifest"))
	b.WriteString("\n\n")

	for i, row := range mv.Rows {
		marker := "  "
		name := row.Name
		if i == mv.Cursor {
			marker = r.styles.Highlight.Render("› ")
			name = r.styles.Highlight.Render(name)
		}
		fmt.Fprintf(&b, "%s%s", marker, name)
		if row.Size != "" {
			b.WriteString(r.styles.Dim.Render("  " + row.Size))
		}
		b.WriteString("\n")

		if len(row.Mirrors) == 0 {
			b.WriteString(r.styles.Dim.Render("    no mirrors available"))
			b.WriteString("\n")
		}
		for _, mirror := range row.Mirrors {
			b.WriteString("    " + mirror + "\n")
		}
		if row.HasGuide {
			b.WriteString(r.styles.Search.Render("    install guide available (i)"))
			b.WriteString("\n")
		}
	}

	if mv.PasswordHint && mv.Password != "" {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Archive password: %s", r.styles.Highlight.Render(mv.Password)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("↑/↓ move • i guide • v view all • y copy links • p copy password • esc close"))
	return b.String()
}
