// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
)

// NewCreatePartCommand creates the create-part command.
func NewCreatePartCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create-part <name>",
		Short: "Create the tables of a part from the logical model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				if err := room.CreatePart(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created part %s\n", args[0])
				return nil
			})
		},
	}
}

// NewDestroyPartCommand creates the destroy-part command.
func NewDestroyPartCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "destroy-part <name>",
		Short: "Delete the database file of a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == musicroom.CorePart {
				return fmt.Errorf("refusing to destroy the %s part", musicroom.CorePart)
			}
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				return room.DestroyPart(cmd.Context(), args[0])
			})
		},
	}
}
