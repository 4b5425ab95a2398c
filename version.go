package musicroom

import (
	"github.com/maloquacious/semver"
)

// SchemaVersion is the value the "version" configuration entry must hold
// for a room to bootstrap. It changes whenever the on-disk layout does.
const SchemaVersion = "0.40"

var (
	version = semver.Version{
		Major: 0,
		Minor: 40,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
