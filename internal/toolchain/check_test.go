package toolchain

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeTool places a script on a fresh PATH that answers --version.
func fakeTool(t *testing.T, binDir, name, version string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts require a POSIX shell")
	}
	script := "#!/bin/sh\necho " + version + "\n"
	if err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestCheckNode(t *testing.T) {
	t.Run("current node passes", func(t *testing.T) {
		binDir := t.TempDir()
		fakeTool(t, binDir, "node", "v20.11.0")
		t.Setenv("PATH", binDir)

		c := CheckNode()
		if !c.OK {
			t.Errorf("check failed: %s", c.Detail)
		}
		if c.Version != "v20.11.0" {
			t.Errorf("Version = %q, want v20.11.0", c.Version)
		}
	})

	t.Run("old node fails", func(t *testing.T) {
		binDir := t.TempDir()
		fakeTool(t, binDir, "node", "v16.20.0")
		t.Setenv("PATH", binDir)

		c := CheckNode()
		if c.OK {
			t.Error("Node 16 should fail the minimum version check")
		}
		if !strings.Contains(c.Detail, MinNodeVersion) {
			t.Errorf("Detail = %q, should name the required version", c.Detail)
		}
	})

	t.Run("missing node fails", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())

		c := CheckNode()
		if c.OK {
			t.Error("missing node should fail")
		}
	})
}

func TestCheckManagers(t *testing.T) {
	binDir := t.TempDir()
	fakeTool(t, binDir, "npm", "10.2.4")
	fakeTool(t, binDir, "pnpm", "9.1.0")
	t.Setenv("PATH", binDir)

	checks := CheckManagers()
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}

	byName := make(map[string]Check)
	for _, c := range checks {
		byName[c.Name] = c
	}

	if !byName["npm"].OK || byName["npm"].Version != "10.2.4" {
		t.Errorf("npm check = %+v", byName["npm"])
	}
	if !byName["pnpm"].OK || byName["pnpm"].Version != "9.1.0" {
		t.Errorf("pnpm check = %+v", byName["pnpm"])
	}
	if byName["yarn"].OK {
		t.Error("yarn should be reported missing")
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, []Check{
		{Name: "node", Version: "v20.11.0", OK: true},
		{Name: "yarn", Detail: "not found on PATH"},
	})

	out := buf.String()
	if !strings.Contains(out, "[ OK ] node v20.11.0") {
		t.Errorf("missing OK line:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] yarn: not found on PATH") {
		t.Errorf("missing MISS line:\n%s", out)
	}
}
