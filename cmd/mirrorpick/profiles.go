package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mirrorpick/internal/platform"
)

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in platform profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(os.Stdout, "Available profiles:")
			for _, name := range platform.Names() {
				p, err := platform.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "  %-10s %s (%s)\n", name, p.Title, p.PrimarySource)
			}
			return nil
		},
	}
	cmd.AddCommand(newProfilesPrintCmd())
	return cmd
}

// newProfilesPrintCmd prints a built-in profile as YAML, a starting point for --profile
func newProfilesPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <name>",
		Short: "Print a built-in profile as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := platform.Lookup(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(p); err != nil {
				return fmt.Errorf("failed to encode profile: %w", err)
			}
			return enc.Close()
		},
	}
}
