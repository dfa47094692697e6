package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SlideAction moves the slider card
type SlideAction struct {
	Delta int // -1 previous, +1 next
}

func (a SlideAction) Type() string { return "slide" }

// CategoryAction switches the category tab, either by offset or by position
type CategoryAction struct {
	Delta int
	Index int // -1 when Delta applies
}

func (a CategoryAction) Type() string { return "category" }

// Selection actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Manifest actions
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

type ManifestNavigateAction struct {
	Delta int
}

func (a ManifestNavigateAction) Type() string { return "manifest_navigate" }

type ShowInstructionsAction struct{}

func (a ShowInstructionsAction) Type() string { return "show_instructions" }

// ViewManifestAction opens the full manifest listing in the pager
type ViewManifestAction struct{}

func (a ViewManifestAction) Type() string { return "view_manifest" }

type ShowManifestAction struct{}

func (a ShowManifestAction) Type() string { return "show_manifest" }

type CopyURLsAction struct{}

func (a CopyURLsAction) Type() string { return "copy_urls" }

type CopyPasswordAction struct{}

func (a CopyPasswordAction) Type() string { return "copy_password" }

type CloseManifestAction struct{}

func (a CloseManifestAction) Type() string { return "close_manifest" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
