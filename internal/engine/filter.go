package engine

import (
	"slices"
	"strings"

	"mirrorpick/internal/domain"
)

// Filter derives the visible entries from the catalog and view state, in
// catalog order. A non-empty search query ignores the category entirely.
// The returned pointers alias catalog so selection changes land on it.
func Filter(catalog []domain.CatalogEntry, view domain.ViewState, presetCategory domain.Category, presetMembers []domain.Category) []*domain.CatalogEntry {
	visible := make([]*domain.CatalogEntry, 0)

	if view.SearchQuery != "" {
		query := strings.ToLower(view.SearchQuery)
		for i := range catalog {
			if strings.Contains(strings.ToLower(catalog[i].Filename), query) {
				visible = append(visible, &catalog[i])
			}
		}
		return visible
	}

	for i := range catalog {
		if matchesCategory(catalog[i].Category, view.Category, presetCategory, presetMembers) {
			visible = append(visible, &catalog[i])
		}
	}
	return visible
}

func matchesCategory(entry, current, presetCategory domain.Category, presetMembers []domain.Category) bool {
	if current == presetCategory {
		return slices.Contains(presetMembers, entry)
	}
	return entry == current
}
