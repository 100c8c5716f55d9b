package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
)

// excludedNames are directory basenames never copied into a new project,
// matched at every depth.
var excludedNames = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// copyTree recursively copies the template FS rooted at src into dst,
// skipping excluded basenames. File permissions and mod times are carried
// over when the source filesystem reports them. Returns the number of
// regular files written.
func copyTree(src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))

		if d.IsDir() {
			if path != "." && excludedNames[d.Name()] {
				return fs.SkipDir
			}
			return os.MkdirAll(target, 0755)
		}

		if excludedNames[d.Name()] {
			return nil
		}
		// Skip symlinks and other special files.
		if !d.Type().IsRegular() {
			return nil
		}

		if err := copyFile(src, path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

// copyFile copies a single file out of the source FS, preserving permissions
// and timestamps where the source reports usable values. Embedded files
// report read-only modes and zero mod times; those are normalized to a
// writable default and left un-timestamped.
func copyFile(src fs.FS, path, target string) error {
	data, err := fs.ReadFile(src, path)
	if err != nil {
		return err
	}

	info, err := fs.Stat(src, path)
	if err != nil {
		return err
	}

	perm := info.Mode().Perm()
	if perm&0200 == 0 {
		perm = 0644
	}

	if err := os.WriteFile(target, data, perm); err != nil {
		return err
	}

	if mt := info.ModTime(); !mt.IsZero() {
		if err := os.Chtimes(target, mt, mt); err != nil {
			return err
		}
	}
	return nil
}
