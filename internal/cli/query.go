// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
)

// openIfNeeded opens a part other than core, which Bootstrap already opened.
func openIfNeeded(cmd *cobra.Command, room *musicroom.Room, name string) error {
	for _, open := range room.Parts() {
		if open == name {
			return nil
		}
	}
	return room.OpenPart(cmd.Context(), name)
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	var where string

	cmd := &cobra.Command{
		Use:   "select <part> <table> <column>...",
		Short: "Print rows of a table, tab separated",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				if err := openIfNeeded(cmd, room, args[0]); err != nil {
					return err
				}
				rows, err := room.Select(cmd.Context(), args[0], args[1], args[2:], where)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, row := range rows {
					fields := make([]string, len(row))
					for i, v := range row {
						if v != nil {
							fields[i] = fmt.Sprint(v)
						}
					}
					fmt.Fprintln(w, strings.Join(fields, "\t"))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&where, "where", "w", "", "WHERE clause")

	return cmd
}

// NewInsertCommand creates the insert command.
func NewInsertCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <part> <table> <column=value>...",
		Short: "Insert one row",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var columns, values []string
			for _, pair := range args[2:] {
				column, value, ok := strings.Cut(pair, "=")
				if !ok || column == "" {
					return fmt.Errorf("%q: expected column=value", pair)
				}
				columns = append(columns, column)
				values = append(values, value)
			}
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				if err := openIfNeeded(cmd, room, args[0]); err != nil {
					return err
				}
				ok, err := room.Insert(cmd.Context(), args[0], args[1], columns, values)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("insert into %s failed", args[1])
				}
				return nil
			})
		},
	}
}

// NewSQLCommand creates the sql command.
func NewSQLCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sql <part> <statement>",
		Short: "Run a raw statement and print the rows affected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActiveRoom(cmd, rootOpts, func(room *musicroom.Room) error {
				if err := openIfNeeded(cmd, room, args[0]); err != nil {
					return err
				}
				n, err := room.Execute(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				if n < 0 {
					return fmt.Errorf("statement failed")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) affected\n", n)
				return nil
			})
		},
	}
}
