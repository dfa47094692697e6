package views

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var stripANSI = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return stripANSI.ReplaceAllString(s, "")
}

func baseState() ViewState {
	return ViewState{
		Width:    100,
		Height:   30,
		Title:    "mirrorpick",
		Tabs:     []Tab{{Label: "Software", Active: true}, {Label: "Plugins"}},
		OSColumn: "Windows",
		ShowSize: true,
	}
}

func TestHeaderCheckbox(t *testing.T) {
	assert.Equal(t, "[ ]", HeaderCheckbox(SelectAll{}))
	assert.Equal(t, "[-]", HeaderCheckbox(SelectAll{Indeterminate: true}))
	assert.Equal(t, "[x]", HeaderCheckbox(SelectAll{Checked: true}))
}

func TestRenderTable(t *testing.T) {
	state := baseState()
	state.Rows = []Row{
		{Name: "Editor Pro", OS: "Win 10+", Size: "1 GB", Selected: true},
		{Name: "Audio Editor", OS: "Win 7+", Size: "200 MB"},
	}
	state.SelectAll = SelectAll{Indeterminate: true}
	state.SelectedCount = 1
	state.TotalSize = "1.0 GB"

	out := plain(NewRenderer().Render(state))
	assert.Contains(t, out, "[-] Name")
	assert.Contains(t, out, "[x] Editor Pro")
	assert.Contains(t, out, "[ ] Audio Editor")
	assert.Contains(t, out, "1 selected · 1.0 GB")
	assert.Contains(t, out, "1 Software")
	assert.Contains(t, out, "2 Plugins")
}

func TestRenderTableScrollIndicators(t *testing.T) {
	state := baseState()
	for i := 0; i < 20; i++ {
		state.Rows = append(state.Rows, Row{Name: strings.Repeat("x", i+1)})
	}
	state.PageSize = 5
	state.Offset = 3

	out := plain(NewRenderer().Render(state))
	assert.Contains(t, out, "↑ 3 more above ↑")
	assert.Contains(t, out, "↓ 12 more below ↓")
}

func TestRenderEmptyViews(t *testing.T) {
	state := baseState()
	assert.Contains(t, plain(NewRenderer().Render(state)), "No entries in this category")

	state.SearchQuery = "zzz"
	assert.Contains(t, plain(NewRenderer().Render(state)), `No entries match "zzz"`)
}

func TestRenderSlider(t *testing.T) {
	state := baseState()
	state.Slider = true
	state.ShowPreview = true
	state.Card = &Card{
		Name:     "Glow Pack",
		Category: "PACK",
		OS:       "AE 2020",
		FileType: "ZIP",
		Size:     "500 MB",
		Preview:  "video",
		Position: 1,
		Total:    3,
		HasNext:  true,
	}

	out := plain(NewRenderer().Render(state))
	assert.Contains(t, out, "Glow Pack")
	assert.Contains(t, out, "AE 2020")
	assert.Contains(t, out, "Preview:  video")
	assert.Contains(t, out, "1 / 3")
	assert.Contains(t, out, "◀")
	assert.Contains(t, out, "▶")
}

func TestRenderManifestOverlay(t *testing.T) {
	state := baseState()
	state.Manifest = &ManifestView{
		Rows: []ManifestRow{
			{Name: "Editor Pro", Size: "1 GB", Mirrors: []string{"Mirror 1: https://a"}, HasGuide: true},
			{Name: "Glow Pack"},
		},
		Password:     "SECRET",
		PasswordHint: true,
	}

	out := plain(NewRenderer().Render(state))
	assert.Contains(t, out, "Download manifest")
	assert.Contains(t, out, "Mirror 1: https://a")
	assert.Contains(t, out, "install guide available")
	assert.Contains(t, out, "no mirrors available")
	assert.Contains(t, out, "Archive password: SECRET")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
