// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package musicroom is the runtime core shared by the music library tools.
//
// A Room owns three things:
//   - the lifecycle phase (unconfigured, configuring, active)
//   - the configuration map, stored in a file under the root directory
//   - the open "parts", independent databases such as core and lyrics
//
// # Lifecycle
//
// Every tool creates a Room and calls Bootstrap. If the root directory has
// no configuration file the room stays unconfigured and the tool should
// tell the user to run setup, which calls Configure. Configure writes the
// configuration file, creates the core part from the schema provider and
// bootstraps the room. It refuses to run when a configuration file exists.
//
//	room := musicroom.New(musicroom.Options{})
//	if err := room.Bootstrap(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if !room.IsActive() {
//	    log.Fatal("run musicroom setup first")
//	}
//	defer room.ShutdownAll()
//
// The root directory comes from the MUSICROOM_DIR environment variable.
//
// # Data access
//
// Select, Insert, Execute and Quote work on any open part and require an
// active room. Schema content comes from a SchemaProvider; the default is
// the model built into the schema package.
//
// Two kinds of failure are reported differently. Structural problems
// (inactive room, part never opened, version mismatch, table without an
// id or name column) are returned as errors wrapping the Err values of
// this package. Bad arguments and statements the backend rejects are
// logged as warnings and reported through the result: nil rows, false,
// or -1.
//
// # Driver Support
//
// SQLite parts use modernc.org/sqlite by default (pure Go, no CGO) or
// github.com/mattn/go-sqlite3 when built with -tags mattn. A part whose
// backend is "postgres" uses github.com/lib/pq and keeps its connection
// string in the part's file entry.
package musicroom
