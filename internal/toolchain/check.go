package toolchain

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/nextellar-labs/create-nextellar-app/internal/installer"
)

// MinNodeVersion is the oldest Node.js the generated Next.js app supports.
const MinNodeVersion = "18.18.0"

// Check is the result of probing one tool.
type Check struct {
	Name    string
	Version string // empty when the tool is missing
	OK      bool
	Detail  string // human-readable explanation when not OK
}

// CheckNode verifies Node.js is on PATH and at least MinNodeVersion.
func CheckNode() Check {
	c := Check{Name: "node"}

	bin, err := exec.LookPath("node")
	if err != nil {
		c.Detail = "Node.js not found on PATH"
		return c
	}

	out, err := exec.Command(bin, "--version").Output()
	if err != nil {
		c.Detail = fmt.Sprintf("node --version failed: %v", err)
		return c
	}
	c.Version = strings.TrimSpace(string(out))

	v, err := parseVersion(c.Version)
	if err != nil {
		c.Detail = fmt.Sprintf("could not parse version %q: %v", c.Version, err)
		return c
	}

	min := semver.MustParse(MinNodeVersion)
	if v.LessThan(min) {
		c.Detail = fmt.Sprintf("Node.js %s is older than the required %s", c.Version, MinNodeVersion)
		return c
	}

	c.OK = true
	return c
}

// CheckManagers probes each supported package manager for presence and
// version, in detection priority order.
func CheckManagers() []Check {
	var checks []Check
	for _, m := range []installer.Manager{installer.PNPM, installer.Yarn, installer.NPM} {
		c := Check{Name: string(m)}
		bin, err := exec.LookPath(string(m))
		if err != nil {
			c.Detail = "not found on PATH"
			checks = append(checks, c)
			continue
		}
		out, err := exec.Command(bin, "--version").Output()
		if err != nil {
			c.Detail = fmt.Sprintf("--version failed: %v", err)
			checks = append(checks, c)
			continue
		}
		c.Version = strings.TrimSpace(string(out))
		c.OK = true
		checks = append(checks, c)
	}
	return checks
}

// Report writes the checks in doctor's [ OK ]/[MISS] format.
func Report(w io.Writer, checks []Check) {
	for _, c := range checks {
		switch {
		case c.OK && c.Version != "":
			fmt.Fprintf(w, "  [ OK ] %s %s\n", c.Name, c.Version)
		case c.OK:
			fmt.Fprintf(w, "  [ OK ] %s\n", c.Name)
		default:
			fmt.Fprintf(w, "  [MISS] %s: %s\n", c.Name, c.Detail)
		}
	}
}

// parseVersion strips a leading "v" and parses the version string.
func parseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
