// Package engine is the catalog selection and presentation state machine:
// view filtering, selection, tri-state select-all and slider pagination.
package engine

import (
	"log"
	"strings"

	"github.com/dustin/go-humanize"

	"mirrorpick/internal/domain"
	"mirrorpick/internal/eventbus"
	"mirrorpick/internal/manifest"
)

// ManifestBuilder turns the current selection into a download manifest
type ManifestBuilder interface {
	Build(selected []domain.CatalogEntry) (*manifest.Manifest, error)
}

// Engine owns the catalog and the view state. It is not safe for concurrent
// use; callers drive it from a single event loop.
type Engine struct {
	opts    Options
	catalog []domain.CatalogEntry
	view    domain.ViewState
}

// New creates an engine with an empty catalog and the default view
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		opts: opts,
		view: domain.ViewState{Category: opts.DefaultCategory},
	}
}

// SetCatalog installs the loaded catalog. Every entry starts unselected.
func (e *Engine) SetCatalog(entries []domain.CatalogEntry) {
	e.catalog = make([]domain.CatalogEntry, len(entries))
	copy(e.catalog, entries)
	for i := range e.catalog {
		e.catalog[i].Selected = false
	}
	e.view.SlideIndex = 0
	e.publishView()
}

// Len returns the catalog size
func (e *Engine) Len() int {
	return len(e.catalog)
}

// ViewState returns a copy of the current view state
func (e *Engine) ViewState() domain.ViewState {
	return e.view
}

// PresetCategory returns the pseudo-category that expands to preset-like entries
func (e *Engine) PresetCategory() domain.Category {
	return e.opts.PresetCategory
}

// View returns the entries visible under the current category and query.
// It is recomputed on every call.
func (e *Engine) View() []*domain.CatalogEntry {
	return Filter(e.catalog, e.view, e.opts.PresetCategory, e.opts.PresetMembers)
}

// SetCategory switches the category filter and rewinds the slider
func (e *Engine) SetCategory(category domain.Category) {
	e.view.Category = category
	e.view.SlideIndex = 0
	e.publishView()
}

// SetQuery sets the trimmed search query and rewinds the slider
func (e *Engine) SetQuery(query string) {
	e.view.SearchQuery = strings.TrimSpace(query)
	e.view.SlideIndex = 0
	e.publishView()
}

// Mode reports whether the view renders as a table or a single-card slider
func (e *Engine) Mode() Mode {
	if e.view.Category == e.opts.PresetCategory && e.view.SearchQuery == "" {
		return ModeSlider
	}
	return ModeTable
}

// Toggle sets the selected flag of the entry with id. Unknown ids are ignored.
func (e *Engine) Toggle(id string, selected bool) {
	for i := range e.catalog {
		if e.catalog[i].ID != id {
			continue
		}
		if e.catalog[i].Selected == selected {
			return
		}
		e.catalog[i].Selected = selected
		if selected {
			e.publishSelection([]string{id}, nil)
		} else {
			e.publishSelection(nil, []string{id})
		}
		return
	}
}

// SelectAll applies selected to every entry in the current view only
func (e *Engine) SelectAll(selected bool) {
	var changed []string
	for _, entry := range e.View() {
		if entry.Selected != selected {
			entry.Selected = selected
			changed = append(changed, entry.ID)
		}
	}
	if len(changed) == 0 {
		return
	}
	if selected {
		e.publishSelection(changed, nil)
	} else {
		e.publishSelection(nil, changed)
	}
}

// TriState computes the select-all checkbox state for a view
func TriState(view []*domain.CatalogEntry) SelectAllState {
	selected := 0
	for _, entry := range view {
		if entry.Selected {
			selected++
		}
	}
	all := len(view) > 0 && selected == len(view)
	return SelectAllState{
		Checked:       all,
		Indeterminate: selected > 0 && !all,
	}
}

// SelectAllState returns the tri-state of the current view
func (e *Engine) SelectAllState() SelectAllState {
	return TriState(e.View())
}

// ToggleAll mirrors a click on the select-all checkbox: a checked box clears
// the view, an unchecked or indeterminate box selects it.
func (e *Engine) ToggleAll() {
	e.SelectAll(!e.SelectAllState().Checked)
}

// Current returns the slider entry, or nil when the view is empty
func (e *Engine) Current() *domain.CatalogEntry {
	view := e.View()
	if len(view) == 0 {
		return nil
	}
	if e.view.SlideIndex >= len(view) || e.view.SlideIndex < 0 {
		e.view.SlideIndex = 0
	}
	return view[e.view.SlideIndex]
}

// Prev moves the slider back one entry; a no-op at the first entry
func (e *Engine) Prev() {
	if e.Mode() != ModeSlider {
		return
	}
	if e.view.SlideIndex > 0 {
		e.view.SlideIndex--
	}
}

// Next moves the slider forward one entry; a no-op at the last entry
func (e *Engine) Next() {
	if e.Mode() != ModeSlider {
		return
	}
	if e.view.SlideIndex < len(e.View())-1 {
		e.view.SlideIndex++
	}
}

// HasPrev reports whether Prev would move
func (e *Engine) HasPrev() bool {
	return e.view.SlideIndex > 0
}

// HasNext reports whether Next would move
func (e *Engine) HasNext() bool {
	return e.view.SlideIndex < len(e.View())-1
}

// ToggleCurrent flips the selection of the slider entry
func (e *Engine) ToggleCurrent() {
	if entry := e.Current(); entry != nil {
		e.Toggle(entry.ID, !entry.Selected)
	}
}

// Selected returns a snapshot of the selected entries in catalog order
func (e *Engine) Selected() []domain.CatalogEntry {
	var out []domain.CatalogEntry
	for _, entry := range e.catalog {
		if entry.Selected {
			out = append(out, entry)
		}
	}
	return out
}

// SelectedCount returns the number of selected entries across the catalog
func (e *Engine) SelectedCount() int {
	count := 0
	for _, entry := range e.catalog {
		if entry.Selected {
			count++
		}
	}
	return count
}

// SelectedSize sums the parseable display sizes of the selection. unknown
// counts selected entries whose size could not be parsed.
func (e *Engine) SelectedSize() (total uint64, unknown int) {
	for _, entry := range e.catalog {
		if !entry.Selected {
			continue
		}
		n, err := humanize.ParseBytes(entry.Size)
		if err != nil {
			unknown++
			continue
		}
		total += n
	}
	return total, unknown
}

// Confirm builds a manifest from the current selection
func (e *Engine) Confirm(builder ManifestBuilder) (*manifest.Manifest, error) {
	selected := e.Selected()
	if len(selected) == 0 {
		return nil, ErrNothingSelected
	}
	m, err := builder.Build(selected)
	if err != nil {
		return nil, err
	}
	log.Printf("Manifest built: %d entries", len(m.Items))
	e.opts.Bus.Publish(eventbus.ManifestBuiltEvent{Items: len(m.Items), Instructions: m.InstructionCount()})
	return m, nil
}

func (e *Engine) publishView() {
	e.opts.Bus.Publish(eventbus.ViewChangedEvent{
		Category:    e.view.Category,
		SearchQuery: e.view.SearchQuery,
		Visible:     len(e.View()),
	})
}

func (e *Engine) publishSelection(added, removed []string) {
	e.opts.Bus.Publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   e.SelectedCount(),
	})
}
