package installer

import "strings"

// Command maps a manager to its install invocation. Every tuple carries the
// flags that keep the run non-interactive: no audit/funding nags for npm, no
// confirmation prompt for yarn, no lockfile strictness for pnpm. An unknown
// manager gets the npm tuple, matching the detection fallback.
func Command(m Manager) (string, []string) {
	switch m {
	case Yarn:
		return "yarn", []string{"install", "--non-interactive"}
	case PNPM:
		return "pnpm", []string{"install", "--no-frozen-lockfile"}
	default:
		return "npm", []string{"install", "--no-audit", "--no-fund"}
	}
}

// CommandLine renders the install invocation as a single shell line, used in
// remediation guidance and the diagnostic log.
func CommandLine(m Manager) string {
	exe, args := Command(m)
	return exe + " " + strings.Join(args, " ")
}
