// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestIdentifyingColumn(t *testing.T) {
	tests := []struct {
		columns []string
		want    string
	}{
		{[]string{"id", "name"}, "id"},
		{[]string{"name", "id"}, "id"},
		{[]string{"title", "name"}, "name"},
		{[]string{"title", "identifier", "named"}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := identifyingColumn(tt.columns); got != tt.want {
			t.Errorf("identifyingColumn(%v) = %q, want %q", tt.columns, got, tt.want)
		}
	}
}

func TestCreateTableSQL(t *testing.T) {
	got := createTableSQL("artist", []string{"id", "name"}, []string{"INTEGER", "TEXT NOT NULL"}, "id")
	want := "CREATE TABLE artist (\n\tid INTEGER,\n\tname TEXT NOT NULL,\n\tPRIMARY KEY (id)\n)"
	if got != want {
		t.Errorf("createTableSQL:\n got %q\nwant %q", got, want)
	}
}

func TestResolveRoot(t *testing.T) {
	env := func(value string, ok bool) func(string) (string, bool) {
		return func(string) (string, bool) { return value, ok }
	}

	root, err := resolveRoot(env("/srv/music", true), "MUSICROOM_DIR")
	if err != nil {
		t.Fatalf("resolveRoot failed: %v", err)
	}
	if root != "/srv/music/" {
		t.Errorf("expected /srv/music/, got %q", root)
	}

	root, err = resolveRoot(env("/srv/music//", true), "MUSICROOM_DIR")
	if err != nil || root != "/srv/music/" {
		t.Errorf("trailing slashes: got %q, %v", root, err)
	}

	root, err = resolveRoot(env("/", true), "MUSICROOM_DIR")
	if err != nil || root != "/" {
		t.Errorf("filesystem root: got %q, %v", root, err)
	}

	for _, lookup := range []func(string) (string, bool){env("", false), env("  ", true)} {
		if _, err := resolveRoot(lookup, "MUSICROOM_DIR"); !errors.Is(err, ErrMissingRoot) {
			t.Errorf("expected ErrMissingRoot, got %v", err)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := resolve("/srv/music/", "core.db"); got != "/srv/music/core.db" {
		t.Errorf("relative: got %q", got)
	}
	if got := resolve("/srv/music/", "/var/lib/core.db"); got != "/var/lib/core.db" {
		t.Errorf("absolute: got %q", got)
	}
}

func TestQuoteLiteral_Postgres(t *testing.T) {
	got, err := quoteLiteral(context.Background(), BackendPostgres, nil, "it's")
	if err != nil {
		t.Fatalf("quoteLiteral failed: %v", err)
	}
	if got != "'it''s'" {
		t.Errorf("expected 'it''s', got %s", got)
	}

	r := &Room{}
	got, err = r.quote(context.Background(), &part{kind: BackendPostgres}, "TRUE")
	if err != nil || got != "'TRUE'" {
		t.Errorf("quote(TRUE) = %s, %v", got, err)
	}
	if _, err := r.quote(context.Background(), &part{kind: BackendPostgres}, "a\x00b"); !errors.Is(err, ErrUnquotable) {
		t.Errorf("quote with NUL: expected ErrUnquotable, got %v", err)
	}
}

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{"": BackendSQLite, "sqlite": BackendSQLite, "postgres": BackendPostgres} {
		got, err := parseBackend(in)
		if err != nil || got != want {
			t.Errorf("parseBackend(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := parseBackend("oracle"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN("/srv/music/core.db", partPragmas)
	if !strings.HasPrefix(dsn, "file:/srv/music/core.db?") {
		t.Errorf("unexpected DSN %q", dsn)
	}
	if strings.Count(dsn, "?") != 1 {
		t.Errorf("DSN should have one query separator: %q", dsn)
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{Unconfigured: "unconfigured", Configuring: "configuring", Active: "active", Phase(7): "phase(7)"} {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
	r := &Room{phase: Phase(7)}
	if err := r.RequireActive(); !errors.Is(err, ErrNotActive) || !strings.Contains(err.Error(), "internal error") {
		t.Errorf("invalid phase: %v", err)
	}
}

func TestVariableNormalize(t *testing.T) {
	tests := []struct {
		v       Variable
		in      string
		want    string
		wantErr bool
	}{
		{Variable{Name: "b", Kind: KindBool}, "TRUE", "true", false},
		{Variable{Name: "b", Kind: KindBool}, "False", "false", false},
		{Variable{Name: "b", Kind: KindBool}, "yes", "", true},
		{Variable{Name: "e", Kind: KindEnum, Choices: []string{"a", "b"}}, "b", "b", false},
		{Variable{Name: "e", Kind: KindEnum, Choices: []string{"a", "b"}}, "c", "", true},
		{Variable{Name: "u", Kind: KindUUID}, "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{Variable{Name: "u", Kind: KindUUID}, "nope", "", true},
		{Variable{Name: "s", Kind: KindString}, " kept as is ", " kept as is ", false},
	}
	for _, tt := range tests {
		got, err := tt.v.normalize(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("%s.normalize(%q) = %q, %v", tt.v.Name, tt.in, got, err)
		}
	}

	if id := (Variable{Kind: KindUUID}).initial(); len(id) != 36 {
		t.Errorf("expected a generated uuid, got %q", id)
	}
}
