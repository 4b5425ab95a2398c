// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import "errors"

// Fatal conditions. Operations return these wrapped with context; callers
// are expected to stop and report them.
var (
	ErrMissingRoot         = errors.New("root directory is not available")
	ErrVersionMismatch     = errors.New("configuration version mismatch")
	ErrAlreadyConfigured   = errors.New("already configured")
	ErrAlreadyBootstrapped = errors.New("already bootstrapped")
	ErrNotActive           = errors.New("room is not active")
	ErrPartNotOpen         = errors.New("part is not open")
	ErrUnknownPart         = errors.New("part has no backing file configured")
	ErrNoIdentifier        = errors.New("table has no id or name column")
	ErrNoPrompter          = errors.New("no prompter for required variable")
	ErrUnquotable          = errors.New("value contains a NUL byte")
)
