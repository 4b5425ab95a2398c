// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
)

// NewSetupCommand creates the setup command.
func NewSetupCommand(rootOpts *RootOptions) *cobra.Command {
	var values map[string]string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the configuration and core database of a new room",
		Long: `Create the configuration file and the core database in the directory
named by MUSICROOM_DIR. Values not given with --set are asked for on
standard input. Setup refuses to run when the room is already configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openRoom(cmd.Context(), rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			room := s.room
			defer room.ShutdownAll()

			prompter := musicroom.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := room.Configure(cmd.Context(), values, prompter); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configured %s\n", room.ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&values, "set", nil, "configuration value as key=value (repeatable)")

	return cmd
}
