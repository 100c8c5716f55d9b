package installer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// fakeManager places a shell script named "npm" on a fresh PATH so Run spawns
// a controlled process instead of a real package manager.
func fakeManager(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake manager scripts require a POSIX shell")
	}

	binDir := t.TempDir()
	path := filepath.Join(binDir, "npm")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)
	t.Setenv(userAgentEnv, "")
}

func TestRunSkipInstall(t *testing.T) {
	// No PATH manipulation: nothing must be spawned at all.
	outcome := Run(context.Background(), Options{
		TargetDir:   t.TempDir(),
		SkipInstall: true,
	})

	if !outcome.Success {
		t.Error("skipped install should report success")
	}
	if outcome.PackageManager != Skipped {
		t.Errorf("PackageManager = %q, want %q", outcome.PackageManager, Skipped)
	}
	if outcome.Error != "" || outcome.LogPath != "" {
		t.Errorf("skipped install should carry no error or log, got %+v", outcome)
	}
}

func TestRunSuccess(t *testing.T) {
	fakeManager(t, "echo installed; exit 0")

	target := t.TempDir()
	outcome := Run(context.Background(), Options{
		TargetDir:   target,
		CaptureOnly: true,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
	})

	if !outcome.Success {
		t.Fatalf("Run() failed: %s", outcome.Error)
	}
	if outcome.PackageManager != NPM {
		t.Errorf("PackageManager = %q, want npm", outcome.PackageManager)
	}

	// No diagnostic log on success.
	if _, err := os.Stat(filepath.Join(target, stateDirName, logFileName)); err == nil {
		t.Error("install.log should not exist after a successful install")
	}
}

func TestRunFailureWritesLog(t *testing.T) {
	fakeManager(t, "echo fetching packages; echo 'ERR! registry unreachable' >&2; exit 1")

	target := t.TempDir()
	outcome := Run(context.Background(), Options{
		TargetDir:   target,
		CaptureOnly: true,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
	})

	if outcome.Success {
		t.Fatal("Run() should fail for a non-zero exit")
	}
	if outcome.Error == "" {
		t.Error("failure outcome should carry an error message")
	}

	wantLog := filepath.Join(target, stateDirName, logFileName)
	if outcome.LogPath != wantLog {
		t.Errorf("LogPath = %q, want %q", outcome.LogPath, wantLog)
	}

	data, err := os.ReadFile(wantLog)
	if err != nil {
		t.Fatalf("reading install log: %v", err)
	}
	log := string(data)

	for _, section := range []string{
		"--- Timestamp ---",
		"--- Package manager ---",
		"--- Working directory ---",
		"--- Error ---",
		"--- Stack trace ---",
		"--- Stdout ---",
		"--- Stderr ---",
	} {
		if !strings.Contains(log, section) {
			t.Errorf("log missing section %q", section)
		}
	}
	if !strings.Contains(log, outcome.Error) {
		t.Error("log should contain the literal error message")
	}
	if !strings.Contains(log, "fetching packages") {
		t.Error("log should contain captured stdout")
	}
	if !strings.Contains(log, "ERR! registry unreachable") {
		t.Error("log should contain captured stderr")
	}
}

func TestRunFailureLogOverwrittenOnRetry(t *testing.T) {
	fakeManager(t, "echo 'first attempt' >&2; exit 1")

	target := t.TempDir()
	opts := Options{
		TargetDir:   target,
		CaptureOnly: true,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
	}

	outcome := Run(context.Background(), opts)
	if outcome.Success {
		t.Fatal("first run should fail")
	}

	fakeManager(t, "echo 'second attempt' >&2; exit 1")
	outcome = Run(context.Background(), opts)
	if outcome.Success {
		t.Fatal("second run should fail")
	}

	data, err := os.ReadFile(outcome.LogPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "first attempt") {
		t.Error("retry should overwrite the log, not append")
	}
	if !strings.Contains(string(data), "second attempt") {
		t.Error("log should hold the latest attempt")
	}
}

func TestRunTimeout(t *testing.T) {
	fakeManager(t, "/bin/sleep 5")

	outcome := Run(context.Background(), Options{
		TargetDir:   t.TempDir(),
		Timeout:     100 * time.Millisecond,
		CaptureOnly: true,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
	})

	if outcome.Success {
		t.Fatal("Run() should fail on timeout")
	}
	if !strings.Contains(outcome.Error, "timed out") {
		t.Errorf("error = %q, want a timeout-originated message", outcome.Error)
	}
}

func TestRunSpawnError(t *testing.T) {
	// A PATH with no managers at all makes the spawn itself fail.
	t.Setenv("PATH", t.TempDir())
	t.Setenv(userAgentEnv, "")

	outcome := Run(context.Background(), Options{
		TargetDir:   t.TempDir(),
		CaptureOnly: true,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
	})

	if outcome.Success {
		t.Fatal("Run() should fail when the manager executable is missing")
	}
	if outcome.Error == "" {
		t.Error("spawn failure should carry an error message")
	}
}
