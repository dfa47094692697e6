package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mirrorpick",
		Short: "Browse a download catalog and collect mirror links",
		Long: `mirrorpick loads the platform catalog lists (list_win.json, list_mac.json,
list_presets.json), lets you filter and select entries in a terminal UI and
builds a download manifest with mirror links and install guides.

Running without a subcommand starts the browser.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(flags)
		},
	}

	registerGlobalFlags(rootCmd, flags)

	rootCmd.AddCommand(newBrowseCmd(flags))
	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newConfigCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
