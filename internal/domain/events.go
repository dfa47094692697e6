package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded     EventType = "CatalogLoaded"
	EventCatalogLoadFailed EventType = "CatalogLoadFailed"
	EventViewChanged       EventType = "ViewChanged"
	EventSelectionChanged  EventType = "SelectionChanged"
	EventManifestBuilt     EventType = "ManifestBuilt"
	EventListSaved         EventType = "ListSaved"
	EventFileUploaded      EventType = "FileUploaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the catalog sources have been merged
type CatalogLoadedEvent struct {
	Sources []string
	Entries int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogLoadFailedEvent is emitted when any catalog source could not be loaded
type CatalogLoadFailedEvent struct {
	Err error
}

func (e CatalogLoadFailedEvent) Type() EventType { return EventCatalogLoadFailed }

// ViewChangedEvent is emitted when the category or search query changes
type ViewChangedEvent struct {
	Category    Category
	SearchQuery string
	Visible     int
}

func (e ViewChangedEvent) Type() EventType { return EventViewChanged }

// SelectionChangedEvent is emitted after toggle or select-all
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ManifestBuiltEvent is emitted when a download manifest is produced
type ManifestBuiltEvent struct {
	Items        int
	Instructions int
}

func (e ManifestBuiltEvent) Type() EventType { return EventManifestBuilt }

// ListSavedEvent is emitted when a list file is written through the save endpoint
type ListSavedEvent struct {
	Filename string
}

func (e ListSavedEvent) Type() EventType { return EventListSaved }

// FileUploadedEvent is emitted when a file is stored through the upload endpoint
type FileUploadedEvent struct {
	Path string
	Size int64
}

func (e FileUploadedEvent) Type() EventType { return EventFileUploaded }
