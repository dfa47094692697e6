package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"mirrorpick/internal/ui/input/types"
)

// ManifestMode drives the download manifest overlay
type ManifestMode struct{}

func NewManifestMode() *ManifestMode {
	return &ManifestMode{}
}

func (m *ManifestMode) Name() string {
	return "manifest"
}

func (m *ManifestMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ManifestMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseManifestAction{}}
}

func (m *ManifestMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.ManifestNavigateAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.ManifestNavigateAction{Delta: 1}}, true
	case "i", "enter":
		return []types.Action{types.ShowInstructionsAction{}}, true
	case "v":
		return []types.Action{types.ViewManifestAction{}}, true
	case "y":
		return []types.Action{types.CopyURLsAction{}}, true
	case "p":
		return []types.Action{types.CopyPasswordAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	// The overlay is modal
	return nil, true
}
