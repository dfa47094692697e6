package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Checkbox renders a selection marker
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// HeaderCheckbox renders the select-all marker including the mixed state
func HeaderCheckbox(state SelectAll) string {
	switch {
	case state.Checked:
		return "[x]"
	case state.Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// renderTable renders table mode with a viewport around the cursor
func (r *Renderer) renderTable(state ViewState) string {
	if len(state.Rows) == 0 {
		if state.SearchQuery != "" {
			return r.styles.Dim.Render(fmt.Sprintf("No entries match %q", state.SearchQuery))
		}
		return r.styles.Dim.Render("No entries in this category")
	}

	nameWidth := 40
	if state.Width > 0 {
		nameWidth = state.Width - 4 - 4 - 18 - 12 - 8
		if nameWidth < 16 {
			nameWidth = 16
		}
	}

	var lines []string
	header := fmt.Sprintf("%s %-*s %-16s", HeaderCheckbox(state.SelectAll), nameWidth, "Name", state.OSColumn)
	if state.ShowSize {
		header += fmt.Sprintf(" %10s", "Size")
	}
	lines = append(lines, r.styles.Header.Render(header))

	pageSize := state.PageSize
	if pageSize <= 0 || pageSize > len(state.Rows) {
		pageSize = len(state.Rows)
	}
	offset := state.Offset
	if offset > len(state.Rows)-pageSize {
		offset = len(state.Rows) - pageSize
	}
	if offset < 0 {
		offset = 0
	}

	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	end := offset + pageSize
	for i := offset; i < end; i++ {
		lines = append(lines, r.renderRow(state.Rows[i], i == state.Cursor, nameWidth, state.ShowSize))
	}

	if below := len(state.Rows) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderRow(row Row, isCursor bool, nameWidth int, showSize bool) string {
	mark := Checkbox(row.Selected)
	if row.Selected {
		mark = r.styles.Checked.Render(mark)
	}

	name := truncate(row.Name, nameWidth)
	line := fmt.Sprintf("%s %-*s %-16s", mark, nameWidth, name, truncate(row.OS, 16))
	if showSize {
		line += fmt.Sprintf(" %10s", truncate(row.Size, 10))
	}

	if isCursor {
		return r.styles.HighlightBg.Render(line)
	}
	return line
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
