// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mdhender/musicroom"
	"github.com/mdhender/musicroom/schema"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Schema  string // path to a logical model; empty uses the built-in model
}

// NewRootCommand creates the root command for the musicroom CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "musicroom",
		Short:         "musicroom - manage a personal music library",
		Long:          "Set up and query the databases of a music room.\n\nThe room lives in the directory named by MUSICROOM_DIR.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Schema, "schema", "", "logical model file (default: built-in model)")

	// Add subcommands
	cmd.AddCommand(NewSetupCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewCreatePartCommand(opts))
	cmd.AddCommand(NewDestroyPartCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewInsertCommand(opts))
	cmd.AddCommand(NewSQLCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// session is a bootstrapped room plus the logger level it writes with.
type session struct {
	room  *musicroom.Room
	level *slog.LevelVar
}

// openRoom creates and bootstraps a room for one command.
func openRoom(ctx context.Context, opts *RootOptions, stderr io.Writer) (*session, error) {
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var provider musicroom.SchemaProvider
	if opts.Schema != "" {
		model, err := schema.Load(opts.Schema)
		if err != nil {
			return nil, err
		}
		provider = model
	}

	room := musicroom.New(musicroom.Options{Logger: logger, Schema: provider})
	if err := room.Bootstrap(ctx); err != nil {
		return nil, err
	}
	s := &session{room: room, level: level}
	s.applyLogLevel(opts.Verbose)
	return s, nil
}

// applyLogLevel switches to the configured log level unless --verbose won.
func (s *session) applyLogLevel(verbose bool) {
	if verbose || !s.room.IsActive() {
		return
	}
	value, ok, err := s.room.Get("log_level")
	if err != nil || !ok {
		return
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err == nil {
		s.level.Set(level)
	}
}

// withActiveRoom runs fn on an active room and closes its parts afterwards.
func withActiveRoom(cmd *cobra.Command, opts *RootOptions, fn func(room *musicroom.Room) error) error {
	s, err := openRoom(cmd.Context(), opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.room.ShutdownAll()

	if !s.room.IsActive() {
		return fmt.Errorf("%s is not configured: run \"musicroom setup\" first", s.room.Root())
	}
	return fn(s.room)
}
