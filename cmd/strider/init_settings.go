package main

import (
	"fmt"

	"github.com/oomph-ac/strider/settings"
	"github.com/spf13/cobra"
)

func newInitSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-settings [path]",
		Short: "Write the default settings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "strider.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := settings.SaveDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote default settings to %s\n", path)
			return nil
		},
	}
}
