package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mirrorpick/internal/catalog"
	"mirrorpick/internal/manifest"
	"mirrorpick/internal/ui"
)

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the catalog browser",
		Example: `  # Windows catalog from the current directory
  mirrorpick browse

  # Mac catalog from a list directory
  mirrorpick browse --platform mac --dir ./lists`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(flags)
		},
	}
}

func runBrowse(flags *globalFlags) error {
	a, err := setup(flags, false)
	if err != nil {
		return err
	}
	defer a.close()

	loader := catalog.NewLoader(catalog.NewDefaultFetcher(a.cfg.DataDir), a.bus)
	model := ui.NewModel(ui.Options{
		Bus:       a.bus,
		Config:    a.cfg,
		Profile:   a.profile,
		Loader:    loader,
		Sources:   a.sources(),
		Registry:  manifest.NewRegistry(),
		Clipboard: ui.SystemClipboard(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
