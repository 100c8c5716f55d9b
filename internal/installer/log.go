package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/nextellar-labs/create-nextellar-app/internal/branding"
)

const logFileName = "install.log"

// stateDirName is the dot-prefixed state directory created inside the target
// project, shared with the user-level config dir name.
var stateDirName = branding.HomeDir()

// logEntry carries everything persisted on a failed install.
type logEntry struct {
	Timestamp      time.Time
	PackageManager Manager
	WorkingDir     string
	Error          string
	Stdout         string
	Stderr         string
}

// writeLog persists the diagnostic log under <targetDir>/.nextellar/,
// creating the directory if absent. The file is overwritten on retry, not
// appended. Returns the path of the written file.
func writeLog(targetDir string, e logEntry) (string, error) {
	dir := filepath.Join(targetDir, stateDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	absDir, err := filepath.Abs(e.WorkingDir)
	if err != nil {
		absDir = e.WorkingDir
	}

	var b strings.Builder
	section := func(header, body string) {
		b.WriteString("--- " + header + " ---\n")
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteByte('\n')
		}
	}

	section("Timestamp", e.Timestamp.Format(time.RFC3339))
	section("Package manager", string(e.PackageManager))
	section("Working directory", absDir)
	section("Error", e.Error)
	section("Stack trace", string(debug.Stack()))
	section("Stdout", e.Stdout)
	section("Stderr", e.Stderr)

	path := filepath.Join(dir, logFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
