package engine

import (
	"errors"

	"mirrorpick/internal/domain"
	"mirrorpick/internal/eventbus"
)

// ErrNothingSelected is returned by Confirm when no entry is selected
var ErrNothingSelected = errors.New("select at least one entry")

// Mode is the presentation layout of the current view
type Mode int

const (
	ModeTable Mode = iota
	ModeSlider
)

func (m Mode) String() string {
	switch m {
	case ModeSlider:
		return "slider"
	default:
		return "table"
	}
}

// SelectAllState is the tri-state select-all checkbox
type SelectAllState struct {
	Checked       bool
	Indeterminate bool
}

// Options parameterize an engine for one platform
type Options struct {
	PresetCategory  domain.Category   // pseudo-category that expands to PresetMembers
	PresetMembers   []domain.Category // categories shown under PresetCategory
	DefaultCategory domain.Category
	Bus             eventbus.EventBus
}

func (o Options) withDefaults() Options {
	if o.PresetCategory == "" {
		o.PresetCategory = domain.CategoryPreset
	}
	if len(o.PresetMembers) == 0 {
		o.PresetMembers = []domain.Category{domain.CategoryPreset, domain.CategoryProject, domain.CategoryPack}
	}
	if o.DefaultCategory == "" {
		o.DefaultCategory = domain.CategorySoftware
	}
	if o.Bus == nil {
		o.Bus = eventbus.Null{}
	}
	return o
}
