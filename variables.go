// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Kind is the type of value a configuration variable holds.
type Kind int

const (
	KindString Kind = iota
	KindPath        // relative values resolve against the root directory
	KindBool        // "true" or "false"
	KindEnum        // one of Variable.Choices
	KindUUID        // a fresh UUID when no default is given
)

// Variable declares one configuration entry.
type Variable struct {
	Name    string
	Kind    Kind
	Default string
	Choices []string
	// Prompt asks for the value during Configure unless the caller
	// supplied one.
	Prompt bool
	Help   string
}

// DefaultVariables returns the variables of a music room.
func DefaultVariables() []Variable {
	backends := []string{string(BackendSQLite), string(BackendPostgres)}
	return []Variable{
		{Name: "version", Kind: KindString, Default: SchemaVersion, Help: "configuration layout version"},
		{Name: "room_name", Kind: KindString, Default: "My Library", Prompt: true, Help: "name of this music room"},
		{Name: "room_id", Kind: KindUUID, Help: "unique id of this music room"},
		{Name: "music_dir", Kind: KindPath, Default: "music/", Prompt: true, Help: "directory holding audio files"},
		{Name: "cover_dir", Kind: KindPath, Default: "covers/", Help: "directory holding cover art"},
		{Name: "lyrics_dir", Kind: KindPath, Default: "lyrics/", Help: "directory holding lyric files"},
		{Name: "log_level", Kind: KindEnum, Default: "info", Choices: []string{"debug", "info", "warn", "error"}, Help: "logging level"},
		{Name: "core_db_file", Kind: KindPath, Default: "core.db", Help: "backing file of the core part"},
		{Name: "core_db_backend", Kind: KindEnum, Default: string(BackendSQLite), Choices: backends, Help: "backend of the core part"},
		{Name: "lyrics_db_file", Kind: KindPath, Default: "lyrics.db", Help: "backing file of the lyrics part"},
		{Name: "lyrics_db_backend", Kind: KindEnum, Default: string(BackendSQLite), Choices: backends, Help: "backend of the lyrics part"},
	}
}

// initial returns the value the variable starts with during Configure.
func (v Variable) initial() string {
	if v.Kind == KindUUID && v.Default == "" {
		return uuid.NewString()
	}
	return v.Default
}

// normalize checks raw against the variable's kind and returns the value
// to store.
func (v Variable) normalize(raw string) (string, error) {
	switch v.Kind {
	case KindString, KindPath:
		return raw, nil
	case KindBool:
		switch {
		case strings.EqualFold(raw, "true"):
			return "true", nil
		case strings.EqualFold(raw, "false"):
			return "false", nil
		}
		return "", fmt.Errorf("%s: %q is not true or false", v.Name, raw)
	case KindEnum:
		if slices.Contains(v.Choices, raw) {
			return raw, nil
		}
		return "", fmt.Errorf("%s: %q is not one of %s", v.Name, raw, strings.Join(v.Choices, ", "))
	case KindUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%s: %w", v.Name, err)
		}
		return id.String(), nil
	}
	return "", fmt.Errorf("%s: unknown kind %d", v.Name, v.Kind)
}
