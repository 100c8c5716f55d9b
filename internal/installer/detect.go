package installer

import (
	"os"
	"path/filepath"
	"strings"
)

// userAgentEnv is set by npm, yarn, and pnpm for the child processes they
// spawn, e.g. "pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64". Read-only here.
const userAgentEnv = "npm_config_user_agent"

// lockFiles maps each manager to its lock file, in detection priority order.
var lockFiles = []struct {
	name    string
	manager Manager
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// detector inspects one source of package-manager intent and returns the
// resolved manager, or "" when that source has nothing to say.
type detector func(targetDir string, explicit Manager) Manager

// detectors in priority order: explicit intent beats ambient process context
// beats existing project state beats the default.
var detectors = []detector{
	detectExplicit,
	detectUserAgent,
	detectLockFile,
}

// Detect resolves the package manager for targetDir. The explicit choice,
// when non-empty, is honored verbatim with no validation against the
// environment. Falls back to DefaultManager when no detector matches.
func Detect(targetDir string, explicit Manager) Manager {
	for _, d := range detectors {
		if m := d(targetDir, explicit); m != "" {
			return m
		}
	}
	return DefaultManager
}

func detectExplicit(_ string, explicit Manager) Manager {
	return explicit
}

func detectUserAgent(_ string, _ Manager) Manager {
	ua := os.Getenv(userAgentEnv)
	if ua == "" {
		return ""
	}
	for _, m := range knownManagers {
		if strings.Contains(ua, string(m)) {
			return m
		}
	}
	return ""
}

func detectLockFile(targetDir string, _ Manager) Manager {
	for _, lf := range lockFiles {
		if _, err := os.Stat(filepath.Join(targetDir, lf.name)); err == nil {
			return lf.manager
		}
	}
	return ""
}
