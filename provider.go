// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

// SchemaProvider describes the physical tables of each part.
// *schema.Model implements it.
type SchemaProvider interface {
	PhysicalTables(part string) []string
	PhysicalColumns(part, table string) []string
	PhysicalColumn(part, table, column string) string
}

// identifyingColumn returns the column used as the primary key: the first
// column named "id", else the first named "name", else "".
func identifyingColumn(columns []string) string {
	for _, want := range []string{"id", "name"} {
		for _, c := range columns {
			if c == want {
				return c
			}
		}
	}
	return ""
}
