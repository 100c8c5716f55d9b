package installer

import "fmt"

// Manager identifies one of the supported package managers.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"

	// Skipped is the sentinel manager reported when the install step was
	// skipped on request; no process is spawned for it.
	Skipped Manager = "skipped"
)

// DefaultManager is the fallback when nothing else resolves a manager.
const DefaultManager = NPM

// knownManagers lists the real managers in detection priority order. pnpm is
// checked before npm everywhere substring matching is involved, because
// "npm" is a substring of "pnpm".
var knownManagers = []Manager{PNPM, Yarn, NPM}

// ParseManager validates a user-supplied manager name. An empty string is
// accepted and means "no explicit choice".
func ParseManager(s string) (Manager, error) {
	switch Manager(s) {
	case "":
		return "", nil
	case NPM, Yarn, PNPM:
		return Manager(s), nil
	default:
		return "", fmt.Errorf("unknown package manager %q: must be one of npm, yarn, pnpm", s)
	}
}
