// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"fmt"
)

// Phase is the lifecycle state of a Room. It only moves forward:
// Unconfigured -> Configuring -> Active.
type Phase int

const (
	Unconfigured Phase = iota
	Configuring
	Active
)

func (p Phase) String() string {
	switch p {
	case Unconfigured:
		return "unconfigured"
	case Configuring:
		return "configuring"
	case Active:
		return "active"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// RequireActive returns an error unless the room is active.
func (r *Room) RequireActive() error {
	switch r.phase {
	case Active:
		return nil
	case Unconfigured:
		return fmt.Errorf("%w: run setup first", ErrNotActive)
	case Configuring:
		return fmt.Errorf("%w: configuration in progress", ErrNotActive)
	}
	return fmt.Errorf("%w: internal error: invalid %s", ErrNotActive, r.phase)
}

// IsActive reports whether the room has been bootstrapped from a valid
// configuration.
func (r *Room) IsActive() bool {
	return r.phase == Active
}

// Phase returns the current lifecycle phase.
func (r *Room) Phase() Phase {
	return r.phase
}
