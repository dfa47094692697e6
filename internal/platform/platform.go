// Package platform describes the per-platform differences of the catalog
// browser: which list files to load, how categories are labelled and how the
// minimum OS version is displayed.
package platform

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"mirrorpick/internal/domain"
)

// ErrUnknownProfile is returned by Lookup for names without a built-in profile
var ErrUnknownProfile = errors.New("unknown platform profile")

// CategoryTab is one entry of the category tab bar
type CategoryTab struct {
	Tag   domain.Category `yaml:"tag"`
	Label string          `yaml:"label"`
}

// Profile holds everything that varies between platform variants
type Profile struct {
	Name            string            `yaml:"name"`
	Title           string            `yaml:"title"`
	PrimarySource   string            `yaml:"primary_source"`
	AugmentSource   string            `yaml:"augment_source"`
	AugmentCategory domain.Category   `yaml:"augment_category"`
	PresetCategory  domain.Category   `yaml:"preset_category"`
	PresetMembers   []domain.Category `yaml:"preset_members"`
	DefaultCategory domain.Category   `yaml:"default_category"`
	Categories      []CategoryTab     `yaml:"categories"`
	OSColumn        string            `yaml:"os_column"`
	OSLabels        map[string]string `yaml:"os_labels"`
	OSFallback      string            `yaml:"os_fallback"` // fmt pattern, e.g. "macOS %s+"
	PresetOSPrefix  string            `yaml:"preset_os_prefix"`
	ArchivePassword string            `yaml:"archive_password"`
}

var presetMembers = []domain.Category{domain.CategoryPreset, domain.CategoryProject, domain.CategoryPack}

// Windows is the built-in Windows profile
func Windows() *Profile {
	return &Profile{
		Name:            "windows",
		Title:           "Windows Downloads",
		PrimarySource:   "list_win.json",
		AugmentSource:   "list_presets.json",
		AugmentCategory: domain.CategoryPreset,
		PresetCategory:  domain.CategoryPreset,
		PresetMembers:   presetMembers,
		DefaultCategory: domain.CategorySoftware,
		Categories: []CategoryTab{
			{Tag: domain.CategorySoftware, Label: "Software"},
			{Tag: domain.CategoryPlugin, Label: "Plugins"},
			{Tag: domain.CategoryTemplate, Label: "Templates"},
			{Tag: domain.CategoryPreset, Label: "Presets"},
		},
		OSColumn:        "Windows",
		PresetOSPrefix:  "AE",
		ArchivePassword: "EDITINGSTUFF",
	}
}

// Mac is the built-in macOS profile
func Mac() *Profile {
	return &Profile{
		Name:            "mac",
		Title:           "Mac Downloads",
		PrimarySource:   "list_mac.json",
		AugmentSource:   "list_presets.json",
		AugmentCategory: domain.CategoryPreset,
		PresetCategory:  domain.CategoryPreset,
		PresetMembers:   presetMembers,
		DefaultCategory: domain.CategorySoftware,
		Categories: []CategoryTab{
			{Tag: domain.CategorySoftware, Label: "Applications"},
			{Tag: domain.CategoryPlugin, Label: "Plugins"},
			{Tag: domain.CategoryTemplate, Label: "Templates"},
			{Tag: domain.CategoryPreset, Label: "Presets"},
		},
		OSColumn: "Min OS",
		OSLabels: map[string]string{
			"10":    "High Sierra",
			"10.13": "High Sierra",
			"10.14": "Mojave",
			"10.15": "Catalina",
			"11":    "Big Sur",
			"12":    "Monterey",
			"13":    "Ventura",
			"14":    "Sonoma",
			"15":    "Sequoia",
		},
		OSFallback:      "macOS %s+",
		PresetOSPrefix:  "AE",
		ArchivePassword: "EDITINGSTUFF",
	}
}

var builtins = map[string]func() *Profile{
	"windows": Windows,
	"mac":     Mac,
}

// Names returns the built-in profile names, sorted
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of a built-in profile
func Lookup(name string) (*Profile, error) {
	ctor, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return ctor(), nil
}

// LoadProfile reads a YAML profile. Fields left empty fall back to the profile
// named by its "name" key, or to the Windows profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	base := Windows()
	if ctor, ok := builtins[p.Name]; ok {
		base = ctor()
	}
	p.fillFrom(base)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) fillFrom(base *Profile) {
	if p.Name == "" {
		p.Name = base.Name
	}
	if p.Title == "" {
		p.Title = base.Title
	}
	if p.PrimarySource == "" {
		p.PrimarySource = base.PrimarySource
	}
	if p.AugmentSource == "" && p.AugmentCategory == "" {
		p.AugmentSource = base.AugmentSource
		p.AugmentCategory = base.AugmentCategory
	}
	if p.PresetCategory == "" {
		p.PresetCategory = base.PresetCategory
	}
	if len(p.PresetMembers) == 0 {
		p.PresetMembers = base.PresetMembers
	}
	if p.DefaultCategory == "" {
		p.DefaultCategory = base.DefaultCategory
	}
	if len(p.Categories) == 0 {
		p.Categories = base.Categories
	}
	if p.OSColumn == "" {
		p.OSColumn = base.OSColumn
	}
	if p.OSLabels == nil {
		p.OSLabels = base.OSLabels
	}
	if p.OSFallback == "" {
		p.OSFallback = base.OSFallback
	}
	if p.PresetOSPrefix == "" {
		p.PresetOSPrefix = base.PresetOSPrefix
	}
	if p.ArchivePassword == "" {
		p.ArchivePassword = base.ArchivePassword
	}
}

// Validate checks that the profile can drive the browser
func (p *Profile) Validate() error {
	if len(p.Categories) == 0 {
		return errors.New("no categories")
	}
	if p.AugmentSource != "" && p.AugmentCategory == "" {
		return errors.New("augment_source requires augment_category")
	}
	for _, tab := range p.Categories {
		if tab.Tag == p.DefaultCategory {
			return nil
		}
	}
	return fmt.Errorf("default category %s is not one of the categories", p.DefaultCategory)
}

// OSDisplay returns the table label for an entry's minimum OS version
func (p *Profile) OSDisplay(osMin string) string {
	if label, ok := p.OSLabels[osMin]; ok {
		return label
	}
	if p.OSFallback != "" {
		return fmt.Sprintf(p.OSFallback, osMin)
	}
	return osMin
}

// PresetOSDisplay returns the host-application requirement shown on preset cards
func (p *Profile) PresetOSDisplay(osMin string) string {
	if p.PresetOSPrefix == "" {
		return osMin
	}
	return p.PresetOSPrefix + " " + osMin
}

// CategoryLabel returns the tab label for tag, or the tag itself
func (p *Profile) CategoryLabel(tag domain.Category) string {
	for _, tab := range p.Categories {
		if tab.Tag == tag {
			return tab.Label
		}
	}
	return string(tag)
}
