package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSlider renders the single-card carousel used for the preset tab
func (r *Renderer) renderSlider(state ViewState) string {
	card := state.Card
	if card == nil {
		return r.styles.Dim.Render("No presets available")
	}

	var body strings.Builder
	body.WriteString(r.styles.CardTitle.Render(card.Name))
	body.WriteString("\n")

	tag := lipgloss.NewStyle().Foreground(lipgloss.Color(CategoryColor(card.Category))).Render(card.Category)
	body.WriteString(tag)
	body.WriteString("\n\n")

	fmt.Fprintf(&body, "Version:  %s\n", card.OS)
	fmt.Fprintf(&body, "Type:     %s\n", card.FileType)
	fmt.Fprintf(&body, "Size:     %s\n", card.Size)
	if state.ShowPreview && card.Preview != "" {
		fmt.Fprintf(&body, "Preview:  %s\n", card.Preview)
	}
	body.WriteString("\n")

	mark := Checkbox(card.Selected) + " Select"
	if card.Selected {
		mark = r.styles.Checked.Render(mark)
	}
	body.WriteString(mark)

	left := r.arrow("◀", card.HasPrev)
	right := r.arrow("▶", card.HasNext)
	boxed := r.styles.Card.Render(body.String())

	row := lipgloss.JoinHorizontal(lipgloss.Center, left, " ", boxed, " ", right)
	counter := r.styles.Dim.Render(fmt.Sprintf("%d / %d", card.Position, card.Total))
	return lipgloss.JoinVertical(lipgloss.Center, row, counter)
}

func (r *Renderer) arrow(glyph string, enabled bool) string {
	if !enabled {
		return r.styles.Dim.Render(glyph)
	}
	return r.styles.Arrow.Render(glyph)
}
