package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"mirrorpick/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc clears an active search, otherwise it does nothing
		if ctx.SearchQuery() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		if ctx.InSlider() {
			return []types.Action{types.SlideAction{Delta: -1}}, true
		}
		return nil, false

	case tea.KeyRight:
		if ctx.InSlider() {
			return []types.Action{types.SlideAction{Delta: 1}}, true
		}
		return nil, false

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.CategoryAction{Delta: 1, Index: -1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CategoryAction{Delta: -1, Index: -1}}, true

	case tea.KeyEnter:
		return []types.Action{types.ConfirmAction{}}, true
	}

	switch key := msg.String(); key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		if ctx.InSlider() {
			return []types.Action{types.SlideAction{Delta: -1}}, true
		}
		return nil, false

	case "l":
		if ctx.InSlider() {
			return []types.Action{types.SlideAction{Delta: 1}}, true
		}
		return nil, false

	case " ":
		if ctx.VisibleCount() == 0 {
			return nil, false
		}
		return []types.Action{types.SelectAction{}}, true

	case "a", "A":
		// select-all belongs to the table; the slider only toggles its card
		if ctx.InSlider() {
			return nil, false
		}
		return []types.Action{types.ToggleAllAction{}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "m":
		return []types.Action{types.ShowManifestAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx >= ctx.CategoryCount() {
			return nil, false
		}
		return []types.Action{types.CategoryAction{Index: idx}}, true
	}

	return nil, false
}
