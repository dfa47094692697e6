//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const fixtureWinList = `[
	{"id": 1, "filename": "Editor Pro", "category": "SOFTWARE", "os_min": "10", "size": "1.2 GB",
	 "link1": "https://mirror-a.example/editor", "link2": "https://mirror-b.example/editor",
	 "instruction": "Run the installer and apply the patch."},
	{"id": 2, "filename": "Sound Forge", "category": "SOFTWARE", "os_min": "10", "size": "300 MB",
	 "link1": "https://mirror-a.example/sound"},
	{"id": 3, "filename": "Color Plugin", "category": "PLUGIN", "os_min": "11", "size": "512 MB",
	 "link": "https://legacy.example/color"}
]`

const fixturePresetList = `[
	{"id": 100, "filename": "Glow Pack", "category": "PACK", "os_min": "2022", "size": "80 MB",
	 "link1": "https://p.example/glow"}
]`

// CatalogOption configures the list files written to a workspace
type CatalogOption func(files map[string]string)

// WithList replaces or adds a list file
func WithList(name, contents string) CatalogOption {
	return func(files map[string]string) {
		files[name] = contents
	}
}

// CreateTestWorkspace creates a temporary directory for list files and config
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes the Windows fixture lists into the workspace
func (tf *TUITestFramework) WriteCatalog(options ...CatalogOption) error {
	files := map[string]string{
		"list_win.json":     fixtureWinList,
		"list_presets.json": fixturePresetList,
	}
	for _, opt := range options {
		opt(files)
	}
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(tf.workspace, name), []byte(contents), 0644); err != nil {
			return err
		}
	}
	return nil
}

// StartWithCatalog creates a workspace with the fixture lists and starts the browser
func (tf *TUITestFramework) StartWithCatalog(options ...CatalogOption) error {
	workspace, err := tf.CreateTestWorkspace()
	if err != nil {
		return err
	}
	if err := tf.WriteCatalog(options...); err != nil {
		return err
	}
	return tf.StartApp("browse", "-d", workspace)
}
