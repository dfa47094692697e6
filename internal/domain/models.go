package domain

import "strings"

// Category is the classification tag of a catalog entry
type Category string

// Known categories. Platform profiles may introduce others.
const (
	CategorySoftware Category = "SOFTWARE"
	CategoryPreset   Category = "PRESET"
	CategoryProject  Category = "PROJECT"
	CategoryPack     Category = "PACK"
	CategoryPlugin   Category = "PLUGIN"
	CategoryTemplate Category = "TEMPLATE"
)

// Mirror is one numbered download link of an entry
type Mirror struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

// CatalogEntry is one downloadable item in the catalog
type CatalogEntry struct {
	ID              string
	Filename        string
	Category        Category
	OSMin           string
	Size            string
	Preview         string   // optional media reference
	OriginalName    string   // optional, used for the displayed file type
	Mirrors         []Mirror // sorted ascending by Index
	LegacyLink      string   // unnumbered "link" field
	InstructionText string

	// Selected is owned by the engine and never written back to a list file.
	Selected bool
}

// FileType returns the upper-cased extension of the original file name, or ZIP
// when there is none.
func (e *CatalogEntry) FileType() string {
	name := e.OriginalName
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "ZIP"
	}
	return strings.ToUpper(name)
}

// PreviewIsVideo reports whether the preview is a video clip
func (e *CatalogEntry) PreviewIsVideo() bool {
	return strings.HasSuffix(e.Preview, ".mp4") || strings.HasSuffix(e.Preview, ".webm")
}

// HasInstruction reports whether the entry carries install instructions
func (e *CatalogEntry) HasInstruction() bool {
	return e.InstructionText != ""
}

// ViewState is the user-controlled filter and pagination state
type ViewState struct {
	Category    Category
	SearchQuery string
	SlideIndex  int
}
