// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
)

// migrationScript represents a single migration file.
type migrationScript struct {
	ID      int64
	Comment string
	Path    string
}

// reMigrationFile matches YYYYMMDDHHMMSS_comment.sql
var reMigrationFile = regexp.MustCompile(`^(\d{14})_(.+)\.sql$`)

// migrationsTable records the scripts applied to a part.
const migrationsTable = "schema_migrations"

// Migrate applies pending migration scripts from scripts to an open part
// and returns the number applied. Scripts are named
// YYYYMMDDHHMMSS_comment.sql and run in lexicographic order; each applied
// script is recorded in the part's schema_migrations table.
//
// A script that fails stops the run. Scripts are not wrapped in a
// transaction, so a failing script may leave partial changes behind.
func (r *Room) Migrate(ctx context.Context, partName string, scripts fs.FS) (int, error) {
	if err := r.RequireActive(); err != nil {
		return 0, err
	}
	p, err := r.openPart(partName)
	if err != nil {
		return 0, err
	}

	list, err := listMigrationFiles(scripts)
	if err != nil {
		return 0, fmt.Errorf("list migrations: %w", err)
	}
	for _, name := range list.skipped {
		r.logger.Debug("skipping non-migration file", "name", name)
	}
	if len(list.scripts) == 0 {
		r.logger.Debug("no migrations to apply", "part", partName)
		return 0, nil
	}

	_, err = p.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationsTable+` (
	path TEXT NOT NULL,
	id INTEGER NOT NULL,
	comment TEXT,
	applied_at TEXT NOT NULL,
	PRIMARY KEY (path)
)`)
	if err != nil {
		return 0, fmt.Errorf("part %s: create %s: %w", partName, migrationsTable, err)
	}

	appliedPaths, err := appliedMigrations(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("part %s: %w", partName, err)
	}

	applied := 0
	for _, s := range list.scripts {
		if appliedPaths[s.Path] {
			continue
		}

		sqlBytes, err := fs.ReadFile(scripts, s.Path)
		if err != nil {
			return applied, fmt.Errorf("read %s: %w", s.Path, err)
		}

		r.logger.Info("applying migration", "part", partName, "path", s.Path)
		if _, err := p.db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return applied, fmt.Errorf("apply %s: %w", s.Path, err)
		}

		ok, err := r.Insert(ctx, partName, migrationsTable,
			[]string{"path", "id", "comment", "applied_at"},
			[]string{s.Path, strconv.FormatInt(s.ID, 10), s.Comment, r.opts.Now().UTC().Format("2006-01-02T15:04:05Z")})
		if err != nil {
			return applied, err
		}
		if !ok {
			return applied, fmt.Errorf("record %s: insert failed", s.Path)
		}
		applied++
	}

	return applied, nil
}

// appliedMigrations returns the paths recorded in schema_migrations.
// Unlike Select, a failed query is an error: treating it as "nothing
// applied" would run every script again.
func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT path FROM "+migrationsTable)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", migrationsTable, err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("read %s: %w", migrationsTable, err)
		}
		applied[path] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", migrationsTable, err)
	}
	return applied, nil
}

type migrationList struct {
	scripts []migrationScript
	skipped []string
}

// listMigrationFiles reads migration scripts from the filesystem.
// Returns scripts sorted in lexicographic order by path.
func listMigrationFiles(migrationsFS fs.FS) (migrationList, error) {
	var list migrationList

	entries, err := fs.ReadDir(migrationsFS, ".")
	if err != nil {
		return list, err
	}

	seenIDs := make(map[int64]string)

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		matches := reMigrationFile.FindStringSubmatch(name)
		if matches == nil {
			list.skipped = append(list.skipped, name)
			continue
		}

		id, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return list, fmt.Errorf("invalid migration id in %q: %w", name, err)
		}

		// Check for duplicate IDs
		if existing, ok := seenIDs[id]; ok {
			return list, fmt.Errorf("duplicate migration ID %d: %q and %q", id, existing, name)
		}
		seenIDs[id] = name

		list.scripts = append(list.scripts, migrationScript{
			ID:      id,
			Comment: matches[2],
			Path:    name,
		})
	}

	// Sort by path (lexicographic order is part of the contract)
	sort.Slice(list.scripts, func(i, j int) bool {
		return list.scripts[i].Path < list.scripts[j].Path
	})

	return list, nil
}
