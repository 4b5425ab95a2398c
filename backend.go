// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lib/pq"
)

// Backend is the kind of store behind a part.
type Backend string

const (
	// BackendSQLite stores the part in a local file.
	BackendSQLite Backend = "sqlite"
	// BackendPostgres connects to a server; the part's file entry holds
	// the connection string.
	BackendPostgres Backend = "postgres"
)

func parseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case "", BackendSQLite:
		return BackendSQLite, nil
	case BackendPostgres:
		return BackendPostgres, nil
	}
	return "", fmt.Errorf("unknown backend %q", s)
}

// openBackend opens and pings a connection.
func openBackend(ctx context.Context, kind Backend, file string) (*sql.DB, error) {
	var driver, dsn string
	switch kind {
	case BackendSQLite:
		if info, err := os.Stat(filepath.Dir(file)); err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%s: parent directory does not exist", filepath.Dir(file))
		}
		if info, err := os.Stat(file); err == nil && info.IsDir() {
			return nil, fmt.Errorf("%s: path is a directory", file)
		}
		driver, dsn = sqliteDriver, buildDSN(file, partPragmas)
	case BackendPostgres:
		driver, dsn = "postgres", file
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// One connection per part; the room is single threaded.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// quoteLiteral formats value as a string literal for the backend.
func quoteLiteral(ctx context.Context, kind Backend, db *sql.DB, value string) (string, error) {
	switch kind {
	case BackendPostgres:
		return pq.QuoteLiteral(value), nil
	case BackendSQLite:
		var quoted string
		if err := db.QueryRowContext(ctx, "SELECT quote(?)", value).Scan(&quoted); err != nil {
			return "", fmt.Errorf("quote: %w", err)
		}
		return quoted, nil
	}
	return "", fmt.Errorf("unknown backend %q", kind)
}
