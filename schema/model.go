// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed model.yaml
var defaultModel []byte

// Model is a logical model of every part in a room.
type Model struct {
	Parts map[string]*Part `yaml:"parts"`
}

// Part is an independent database within a room.
type Part struct {
	Tables []*Table `yaml:"tables"`
}

// Table is an ordered list of columns.
type Table struct {
	Name     string    `yaml:"name"`
	Physical string    `yaml:"physical,omitempty"`
	Columns  []*Column `yaml:"columns"`
}

// Column is a named column with a storage type, for example
// "TEXT NOT NULL".
type Column struct {
	Name     string `yaml:"name"`
	Physical string `yaml:"physical,omitempty"`
	Type     string `yaml:"type"`
}

// PhysicalName returns the name the table has in the database.
func (t *Table) PhysicalName() string {
	if t.Physical != "" {
		return t.Physical
	}
	return t.Name
}

// PhysicalName returns the name the column has in the database.
func (c *Column) PhysicalName() string {
	if c.Physical != "" {
		return c.Physical
	}
	return c.Name
}

// Parse decodes and validates a model.
func Parse(r io.Reader) (*Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Model
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty model")
		}
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads a model from a file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Default returns the model built into the binary.
func Default() *Model {
	m, err := Parse(bytes.NewReader(defaultModel))
	if err != nil {
		panic(fmt.Sprintf("schema: built-in model: %v", err))
	}
	return m
}

// Validate checks that names are present and unique and that every column
// has a type. It does not check for identifying columns; that is the
// concern of whoever creates the tables.
func (m *Model) Validate() error {
	if len(m.Parts) == 0 {
		return fmt.Errorf("model has no parts")
	}
	for _, partName := range m.PartNames() {
		p := m.Parts[partName]
		if p == nil {
			return fmt.Errorf("part %s: empty", partName)
		}
		tables := make(map[string]bool)
		for i, t := range p.Tables {
			if t == nil || t.Name == "" {
				return fmt.Errorf("part %s: table %d: missing name", partName, i+1)
			}
			name := t.PhysicalName()
			if tables[name] {
				return fmt.Errorf("part %s: duplicate table %s", partName, name)
			}
			tables[name] = true

			if len(t.Columns) == 0 {
				return fmt.Errorf("part %s: table %s: no columns", partName, name)
			}
			columns := make(map[string]bool)
			for j, c := range t.Columns {
				if c == nil || c.Name == "" {
					return fmt.Errorf("part %s: table %s: column %d: missing name", partName, name, j+1)
				}
				cname := c.PhysicalName()
				if columns[cname] {
					return fmt.Errorf("part %s: table %s: duplicate column %s", partName, name, cname)
				}
				columns[cname] = true
				if strings.TrimSpace(c.Type) == "" {
					return fmt.Errorf("part %s: table %s: column %s: missing type", partName, name, cname)
				}
			}
		}
	}
	return nil
}

// PartNames returns the parts in the model, sorted.
func (m *Model) PartNames() []string {
	names := make([]string, 0, len(m.Parts))
	for name := range m.Parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
