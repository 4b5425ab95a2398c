// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <part> <dir>",
		Short: "Apply pending YYYYMMDDHHMMSS_comment.sql scripts to a part",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(args[1])
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s: not a directory", args[1])
			}
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				if err := openIfNeeded(cmd, room, args[0]); err != nil {
					return err
				}
				n, err := room.Migrate(cmd.Context(), args[0], os.DirFS(args[1]))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
				return nil
			})
		},
	}
}
