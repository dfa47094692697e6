package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mirrorpick/internal/config"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(os.Stdout, configService(flags).Path())
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := configService(flags)
			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", svc.Path())
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Wrote %s\n", svc.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

func configService(flags *globalFlags) config.ConfigService {
	if flags.configPath != "" {
		return config.NewConfigServiceAt(flags.configPath)
	}
	return config.NewConfigService()
}
