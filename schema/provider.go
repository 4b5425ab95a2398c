// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package schema

// PhysicalTables returns the physical table names of a part in model order.
// An unknown part has no tables.
func (m *Model) PhysicalTables(part string) []string {
	p := m.Parts[part]
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Tables))
	for _, t := range p.Tables {
		names = append(names, t.PhysicalName())
	}
	return names
}

// PhysicalColumns returns the physical column names of a table in model order.
func (m *Model) PhysicalColumns(part, table string) []string {
	t := m.table(part, table)
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.PhysicalName())
	}
	return names
}

// PhysicalColumn returns the storage type of a column, or "" if the column
// is not in the model.
func (m *Model) PhysicalColumn(part, table, column string) string {
	t := m.table(part, table)
	if t == nil {
		return ""
	}
	for _, c := range t.Columns {
		if c.PhysicalName() == column {
			return c.Type
		}
	}
	return ""
}

func (m *Model) table(part, table string) *Table {
	p := m.Parts[part]
	if p == nil {
		return nil
	}
	for _, t := range p.Tables {
		if t.PhysicalName() == table {
			return t
		}
	}
	return nil
}
