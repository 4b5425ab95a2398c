// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// part is an open connection to one of the room's databases.
type part struct {
	name string
	kind Backend
	file string
	db   *sql.DB
}

// partConfig reads the backing file and backend of a part from the
// configuration. A part without a "<name>_db_file" entry does not exist.
func (r *Room) partConfig(name string) (Backend, string, error) {
	file, ok := r.values[name+"_db_file"]
	if !ok || file == "" {
		return "", "", fmt.Errorf("part %s: %w (%s_db_file)", name, ErrUnknownPart, name)
	}
	kind, err := parseBackend(r.values[name+"_db_backend"])
	if err != nil {
		return "", "", fmt.Errorf("part %s: %w", name, err)
	}
	if kind == BackendSQLite {
		file = resolve(r.root, file)
	}
	return kind, file, nil
}

// OpenPart opens the named part, replacing any connection already open
// under that name. OpenPart is used while configuring, so it does not
// require the room to be active, only configuration values to be loaded.
func (r *Room) OpenPart(ctx context.Context, name string) error {
	if r.values == nil {
		return fmt.Errorf("open part %s: %w", name, ErrNotActive)
	}
	kind, file, err := r.partConfig(name)
	if err != nil {
		return err
	}

	if err := r.ShutdownPart(name); err != nil {
		r.logger.Warn("closing previous connection", "part", name, "error", err)
	}

	r.logger.Debug("opening part", "part", name, "backend", kind)
	db, err := openBackend(ctx, kind, file)
	if err != nil {
		return fmt.Errorf("open part %s: %w", name, err)
	}
	r.parts[name] = &part{name: name, kind: kind, file: file, db: db}
	return nil
}

// CreatePart creates every table the schema provider lists for the part,
// each with a primary key on its identifying column, and then closes the
// part. Callers must open it again to use it.
//
// Every table is checked for an identifying column before any statement
// is issued. A table that fails to create is logged and skipped.
func (r *Room) CreatePart(ctx context.Context, name string) error {
	type plan struct {
		table string
		sql   string
	}

	var plans []plan
	for _, table := range r.opts.Schema.PhysicalTables(name) {
		columns := r.opts.Schema.PhysicalColumns(name, table)
		key := identifyingColumn(columns)
		if key == "" {
			return fmt.Errorf("part %s: table %s: %w", name, table, ErrNoIdentifier)
		}
		specs := make([]string, len(columns))
		for i, c := range columns {
			specs[i] = r.opts.Schema.PhysicalColumn(name, table, c)
		}
		plans = append(plans, plan{table: table, sql: createTableSQL(table, columns, specs, key)})
	}
	if len(plans) == 0 {
		r.logger.Warn("schema lists no tables", "part", name)
	}

	if err := r.OpenPart(ctx, name); err != nil {
		return err
	}
	p := r.parts[name]

	created := 0
	for _, pl := range plans {
		r.logger.Debug("creating table", "part", name, "sql", pl.sql)
		if _, err := p.db.ExecContext(ctx, pl.sql); err != nil {
			r.logger.Warn("cannot create table", "part", name, "table", pl.table, "error", err)
			continue
		}
		created++
	}
	r.logger.Info("created part", "part", name, "tables", created, "skipped", len(plans)-created)

	return r.ShutdownPart(name)
}

// createTableSQL builds a CREATE TABLE statement with the columns as given.
func createTableSQL(table string, columns, specs []string, key string) string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(table)
	sb.WriteString(" (\n")
	for i, c := range columns {
		sb.WriteString("\t")
		sb.WriteString(c)
		if specs[i] != "" {
			sb.WriteString(" ")
			sb.WriteString(specs[i])
		}
		sb.WriteString(",\n")
	}
	sb.WriteString("\tPRIMARY KEY (")
	sb.WriteString(key)
	sb.WriteString(")\n)")
	return sb.String()
}

// ShutdownPart closes the named part. Closing a part that is not open is
// not an error.
func (r *Room) ShutdownPart(name string) error {
	p, ok := r.parts[name]
	if !ok {
		return nil
	}
	delete(r.parts, name)
	if p.db == nil {
		return nil
	}
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("close part %s: %w", name, err)
	}
	r.logger.Debug("closed part", "part", name)
	return nil
}

// ShutdownAll closes every open part.
func (r *Room) ShutdownAll() error {
	var result *multierror.Error
	for _, name := range r.Parts() {
		if err := r.ShutdownPart(name); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Parts returns the names of the open parts, sorted.
func (r *Room) Parts() []string {
	names := make([]string, 0, len(r.parts))
	for name := range r.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// openPart returns the open part with the given name.
func (r *Room) openPart(name string) (*part, error) {
	p, ok := r.parts[name]
	if !ok || p.db == nil {
		return nil, fmt.Errorf("part %s: %w", name, ErrPartNotOpen)
	}
	return p, nil
}

// DestroyPart closes a sqlite part and removes its backing file and WAL
// sidecar files. Files that do not exist are ignored.
func (r *Room) DestroyPart(ctx context.Context, name string) error {
	if err := r.RequireActive(); err != nil {
		return err
	}
	kind, path, err := r.partConfig(name)
	if err != nil {
		return err
	}
	if kind != BackendSQLite {
		return fmt.Errorf("part %s: cannot destroy a %s part", name, kind)
	}
	if err := r.ShutdownPart(name); err != nil {
		return err
	}

	if err := removePartFiles(path); err != nil {
		return fmt.Errorf("destroy part %s: %w", name, err)
	}
	r.logger.Info("destroyed part", "part", name, "path", path)
	return nil
}

// partFiles lists the backing file of a sqlite part followed by the
// sidecars WAL mode keeps next to it.
func partFiles(path string) []string {
	return []string{path, path + "-wal", path + "-shm"}
}

// removePartFiles deletes whichever part files exist. Anything that is not
// a regular file is left in place and reported.
func removePartFiles(path string) error {
	var result *multierror.Error
	for _, file := range partFiles(path) {
		info, err := os.Lstat(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if !info.Mode().IsRegular() {
			result = multierror.Append(result, fmt.Errorf("%s: not a regular file", file))
			continue
		}
		if err := os.Remove(file); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
