// Package manifest builds download manifests for a selection of catalog
// entries and keeps their install instructions in a registry.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/uuid"

	"mirrorpick/internal/domain"
)

// ErrEmptySelection is returned when Build is called without entries
var ErrEmptySelection = errors.New("manifest requires at least one entry")

// Item is one selected entry with its resolved mirrors
type Item struct {
	EntryID  string
	Filename string
	Size     string
	Category domain.Category
	Mirrors  []domain.Mirror

	// InstructionKey is empty when the entry has no instruction to show
	InstructionKey string
}

// Manifest is the result of confirming a selection
type Manifest struct {
	Items []Item
}

// InstructionCount returns how many items carry an instruction key
func (m *Manifest) InstructionCount() int {
	n := 0
	for _, item := range m.Items {
		if item.InstructionKey != "" {
			n++
		}
	}
	return n
}

// URLs returns every mirror URL in item then index order
func (m *Manifest) URLs() []string {
	var urls []string
	for _, item := range m.Items {
		for _, mirror := range item.Mirrors {
			urls = append(urls, mirror.URL)
		}
	}
	return urls
}

// Render writes a plain-text listing of the manifest
func (m *Manifest) Render(w io.Writer) error {
	var b strings.Builder
	for i, item := range m.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s", item.Filename)
		if item.Size != "" {
			fmt.Fprintf(&b, "  (%s)", item.Size)
		}
		b.WriteString("\n")
		if len(item.Mirrors) == 0 {
			b.WriteString("  no mirrors available\n")
		}
		for _, mirror := range item.Mirrors {
			fmt.Fprintf(&b, "  Mirror %d: %s\n", mirror.Index, mirror.URL)
		}
		if item.InstructionKey != "" {
			b.WriteString("  install guide available\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Builder assembles manifests and registers instructions
type Builder struct {
	registry       *Registry
	presetCategory domain.Category
	newKey         func() string
}

// NewBuilder creates a builder writing to registry. Entries of presetCategory
// never get an instruction.
func NewBuilder(registry *Registry, presetCategory domain.Category) *Builder {
	return &Builder{
		registry:       registry,
		presetCategory: presetCategory,
		newKey:         uuid.NewString,
	}
}

// Build resolves mirrors and instructions for the selected entries, in order
func (b *Builder) Build(selected []domain.CatalogEntry) (*Manifest, error) {
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	m := &Manifest{Items: make([]Item, 0, len(selected))}
	for _, entry := range selected {
		item := Item{
			EntryID:  entry.ID,
			Filename: entry.Filename,
			Size:     entry.Size,
			Category: entry.Category,
			Mirrors:  resolveMirrors(entry),
		}

		if entry.HasInstruction() && entry.Category != b.presetCategory {
			key, err := b.register(entry)
			if err != nil {
				return nil, err
			}
			item.InstructionKey = key
		}
		m.Items = append(m.Items, item)
	}
	return m, nil
}

// WithKeyFunc replaces the registry key generator
func (b *Builder) WithKeyFunc(fn func() string) *Builder {
	b.newKey = fn
	return b
}

const maxKeyAttempts = 8

func (b *Builder) register(entry domain.CatalogEntry) (string, error) {
	inst := Instruction{
		Title: entry.Filename + " Guide",
		Body:  entry.InstructionText,
	}
	for range maxKeyAttempts {
		key := b.newKey()
		if b.registry.Put(key, inst) {
			return key, nil
		}
	}
	return "", fmt.Errorf("failed to register instruction for %s: key space exhausted", entry.ID)
}

// resolveMirrors returns numbered mirrors sorted by index, falling back to the
// legacy link only when no numbered mirror exists
func resolveMirrors(entry domain.CatalogEntry) []domain.Mirror {
	if len(entry.Mirrors) > 0 {
		mirrors := slices.Clone(entry.Mirrors)
		slices.SortStableFunc(mirrors, func(a, b domain.Mirror) int { return a.Index - b.Index })
		return mirrors
	}
	if entry.LegacyLink != "" {
		return []domain.Mirror{{Index: 1, URL: entry.LegacyLink}}
	}
	return []domain.Mirror{}
}
