// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
)

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change configuration values",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				value, ok, err := room.Get(args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s: not set", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				ok, err := room.Set(args[0], args[1])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s: value not accepted", args[0])
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				keys, err := room.Keys()
				if err != nil {
					return err
				}
				for _, key := range keys {
					value, _, _ := room.Get(key)
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
				}
				return nil
			})
		},
	})

	return cmd
}
