// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the room is configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openRoom(cmd.Context(), rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			room := s.room
			defer room.ShutdownAll()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "root:    %s\n", room.Root())
			fmt.Fprintf(w, "phase:   %s\n", room.Phase())
			fmt.Fprintf(w, "version: %s\n", musicroom.SchemaVersion)
			if !room.IsActive() {
				fmt.Fprintln(w, "run \"musicroom setup\" to configure this room")
				return nil
			}
			name, _, _ := room.Get("room_name")
			fmt.Fprintf(w, "name:    %s\n", name)
			fmt.Fprintf(w, "parts:   %s\n", strings.Join(room.Parts(), ", "))
			return nil
		},
	}
}
