// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"context"
	"fmt"
	"strings"
)

// Row holds the values of one result row, in the order of the selected
// columns. TEXT and BLOB values are returned as strings.
type Row []any

// Select runs SELECT columns FROM table [WHERE where] on the part.
//
// An empty column list, a statement the backend rejects, and a query that
// matches nothing all return nil rows and a nil error; the first two are
// logged. Callers treat "empty" and "not found" the same. Only structural
// problems (inactive room, part not open) are returned as errors.
func (r *Room) Select(ctx context.Context, partName, table string, columns []string, where string) ([]Row, error) {
	if err := r.RequireActive(); err != nil {
		return nil, err
	}
	p, err := r.openPart(partName)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		r.logger.Warn("select: no columns", "part", partName, "table", table)
		return nil, nil
	}

	stmt := "SELECT " + strings.Join(columns, ", ") + " FROM " + table
	if where != "" {
		stmt += " WHERE " + where
	}
	r.logger.Debug("select", "part", partName, "sql", stmt)

	rows, err := p.db.QueryContext(ctx, stmt)
	if err != nil {
		r.logger.Warn("select: cannot prepare statement", "part", partName, "sql", stmt, "error", err)
		return nil, nil
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		r.logger.Warn("select: no column information", "part", partName, "sql", stmt, "error", err)
		return nil, nil
	}

	var result []Row
	for rows.Next() {
		row := make(Row, len(names))
		dest := make([]any, len(names))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			r.logger.Warn("select: scan failed", "part", partName, "sql", stmt, "error", err)
			return nil, nil
		}
		for i, v := range row {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		r.logger.Warn("select: query failed", "part", partName, "sql", stmt, "error", err)
		return nil, nil
	}

	return result, nil
}

// Insert quotes values and runs INSERT INTO table (columns) VALUES (values).
// It reports false, after logging why, when the arguments do not line up,
// when the backend rejects the statement, or when the statement did not
// affect exactly one row.
func (r *Room) Insert(ctx context.Context, partName, table string, columns, values []string) (bool, error) {
	if err := r.RequireActive(); err != nil {
		return false, err
	}
	p, err := r.openPart(partName)
	if err != nil {
		return false, err
	}
	if len(columns) == 0 || len(columns) != len(values) {
		r.logger.Warn("insert: column and value counts differ", "part", partName, "table", table, "columns", len(columns), "values", len(values))
		return false, nil
	}

	quoted := make([]string, len(values))
	for i, v := range values {
		q, err := r.quote(ctx, p, v)
		if err != nil {
			r.logger.Warn("insert: cannot quote value", "part", partName, "table", table, "column", columns[i], "error", err)
			return false, nil
		}
		quoted[i] = q
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(quoted, ", "))
	r.logger.Debug("insert", "part", partName, "sql", stmt)

	res, err := p.db.ExecContext(ctx, stmt)
	if err != nil {
		r.logger.Warn("insert failed", "part", partName, "sql", stmt, "error", err)
		return false, nil
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.logger.Warn("insert: rows affected unknown", "part", partName, "sql", stmt, "error", err)
		return false, nil
	}
	if n != 1 {
		r.logger.Warn("insert affected the wrong number of rows", "part", partName, "sql", stmt, "rows", n)
		return false, nil
	}
	return true, nil
}

// Execute runs a statement the generic calls do not model, such as a
// delete or a schema change, and returns the number of rows affected.
// A statement the backend rejects is logged and reported as -1.
func (r *Room) Execute(ctx context.Context, partName, stmt string) (int64, error) {
	if err := r.RequireActive(); err != nil {
		return -1, err
	}
	p, err := r.openPart(partName)
	if err != nil {
		return -1, err
	}

	r.logger.Debug("execute", "part", partName, "sql", stmt)
	res, err := p.db.ExecContext(ctx, stmt)
	if err != nil {
		r.logger.Warn("execute failed", "part", partName, "sql", stmt, "error", err)
		return -1, nil
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.logger.Warn("execute: rows affected unknown", "part", partName, "sql", stmt, "error", err)
		return 0, nil
	}
	return n, nil
}

// Quote returns value as a SQL string literal for the part's backend.
// Values containing a NUL byte are refused with ErrUnquotable.
func (r *Room) Quote(ctx context.Context, partName, value string) (string, error) {
	if err := r.RequireActive(); err != nil {
		return "", err
	}
	p, err := r.openPart(partName)
	if err != nil {
		return "", err
	}
	return r.quote(ctx, p, value)
}

// quote never hands "true" or "false" to the backend: they are always
// written as string literals, whatever their case. Neither backend keeps
// text after a NUL byte, so such values are refused.
func (r *Room) quote(ctx context.Context, p *part, value string) (string, error) {
	if strings.IndexByte(value, 0) >= 0 {
		return "", fmt.Errorf("quote: %w", ErrUnquotable)
	}
	if strings.EqualFold(value, "true") || strings.EqualFold(value, "false") {
		return "'" + value + "'", nil
	}
	return quoteLiteral(ctx, p.kind, p.db, value)
}
