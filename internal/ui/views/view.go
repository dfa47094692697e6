package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one category tab
type Tab struct {
	Label  string
	Active bool
}

// Row is one catalog entry in table mode
type Row struct {
	Name     string
	OS       string
	Size     string
	FileType string
	Selected bool
}

// Card is the catalog entry shown in slider mode
type Card struct {
	Name     string
	Category string
	OS       string
	FileType string
	Size     string
	Preview  string // "video", "image" or ""
	Selected bool
	Position int // 1-based
	Total    int
	HasPrev  bool
	HasNext  bool
}

// ManifestRow is one item of the download manifest overlay
type ManifestRow struct {
	Name     string
	Size     string
	Mirrors  []string // rendered "Mirror N: url" lines
	HasGuide bool
}

// ManifestView contains the overlay state
type ManifestView struct {
	Rows         []ManifestRow
	Cursor       int
	Password     string
	PasswordHint bool
}

// SelectAll mirrors the header checkbox state
type SelectAll struct {
	Checked       bool
	Indeterminate bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title string
	Tabs  []Tab

	SearchActive bool
	SearchInput  string // rendered text input while searching
	SearchQuery  string

	Loading bool

	// Table mode
	Rows      []Row
	Cursor    int
	Offset    int
	PageSize  int
	SelectAll SelectAll
	OSColumn  string
	ShowSize  bool

	// Slider mode
	Slider      bool
	Card        *Card
	ShowPreview bool

	SelectedCount int
	TotalSize     string
	UnknownSizes  int

	StatusMessage string
	StatusIsError bool

	Manifest *ManifestView
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")
	content.WriteString(r.renderTabs(state.Tabs))
	content.WriteString("\n")

	if state.SearchActive {
		content.WriteString(r.styles.Search.Render("Search: ") + state.SearchInput)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	switch {
	case state.Loading:
		content.WriteString(r.styles.Dim.Render("Loading catalog..."))
	case state.Slider:
		content.WriteString(r.renderSlider(state))
	default:
		content.WriteString(r.renderTable(state))
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))

	helpText := r.styles.Help.Render("space select • a all • enter confirm • / search • ? help • q quit")
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - 1; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.Manifest != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderManifest(*state.Manifest), state.Height, state.Width, r.styles.Popup)
	}
	return finalContent
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)
	if state.SearchQuery == "" || state.SearchActive {
		return logo
	}

	right := r.styles.Search.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderTabs(tabs []Tab) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label)
		if tab.Active {
			parts = append(parts, r.styles.TabActive.Render(label))
		} else {
			parts = append(parts, r.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		if state.StatusIsError {
			return r.styles.StatusError.Render(state.StatusMessage)
		}
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	}

	line := fmt.Sprintf("%d selected", state.SelectedCount)
	if state.SelectedCount > 0 && state.TotalSize != "" {
		line += " · " + state.TotalSize
		if state.UnknownSizes > 0 {
			line += fmt.Sprintf(" (+%d unknown)", state.UnknownSizes)
		}
	}
	return r.styles.StatusLoading.Render(line)
}
