// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program and configuration versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "musicroom %s (configuration version %s)\n", musicroom.Version().String(), musicroom.SchemaVersion)
			return nil
		},
	}
}
