package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// DefaultTimeout bounds the install step when the caller does not configure
// one. Twenty minutes covers cold caches on slow links.
const DefaultTimeout = 20 * time.Minute

// Options configures one install attempt.
type Options struct {
	TargetDir   string
	SkipInstall bool
	Manager     Manager       // explicit override; empty means auto-detect
	Timeout     time.Duration // zero means DefaultTimeout

	// CaptureOnly suppresses live streaming of the child process output;
	// output is still captured for the diagnostic log. Used by tests.
	CaptureOnly bool

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Outcome is the result of one install attempt. Run never returns an error:
// the fatal/non-fatal decision belongs to the caller, which inspects Success.
type Outcome struct {
	Success        bool
	PackageManager Manager
	Error          string // empty on success
	LogPath        string // set when a diagnostic log was persisted
}

// Run resolves the package manager for opts.TargetDir and executes its
// install command there. The child process streams to the terminal by
// default and is bounded by the configured timeout. On failure a diagnostic
// log is persisted best-effort and remediation guidance is printed; the
// overall scaffold is not rolled back since the skeleton is already valid.
func Run(ctx context.Context, opts Options) Outcome {
	if opts.SkipInstall {
		return Outcome{Success: true, PackageManager: Skipped}
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	manager := Detect(opts.TargetDir, opts.Manager)
	exe, args := Command(manager)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fmt.Fprintf(stdout, "Installing dependencies with %s...\n", manager)

	cmd := exec.CommandContext(runCtx, exe, args...)
	cmd.Dir = opts.TargetDir

	// Capture output for the diagnostic log while optionally streaming it
	// to the invoking terminal.
	var stdoutBuf, stderrBuf bytes.Buffer
	if opts.CaptureOnly {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	} else {
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	err := cmd.Run()
	if err == nil {
		fmt.Fprintf(stdout, "✓ Dependencies installed with %s\n", manager)
		return Outcome{Success: true, PackageManager: manager}
	}

	errMsg := err.Error()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		errMsg = fmt.Sprintf("%s timed out after %s", CommandLine(manager), timeout)
	}

	outcome := Outcome{
		Success:        false,
		PackageManager: manager,
		Error:          errMsg,
	}

	fmt.Fprintf(stderr, "✗ Dependency install failed: %s\n", errMsg)

	logPath, logErr := writeLog(opts.TargetDir, logEntry{
		Timestamp:      time.Now(),
		PackageManager: manager,
		WorkingDir:     opts.TargetDir,
		Error:          errMsg,
		Stdout:         stdoutBuf.String(),
		Stderr:         stderrBuf.String(),
	})
	if logErr != nil {
		// Never let a log-write failure mask the install failure.
		fmt.Fprintf(stderr, "Warning: could not write install log: %v\n", logErr)
	} else {
		outcome.LogPath = logPath
		rel := filepath.Join(filepath.Base(opts.TargetDir), stateDirName, logFileName)
		fmt.Fprintf(stderr, "A full log was saved to %s\n", rel)
	}

	fmt.Fprintf(stderr, "\nTo retry manually:\n  cd %s\n  %s\n",
		filepath.Base(opts.TargetDir), CommandLine(manager))

	return outcome
}
