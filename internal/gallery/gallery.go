// Package gallery discovers the items to lay out: files in a directory whose
// base names match a glob pattern, in name order.
package gallery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// DefaultPattern matches the PNG images the gallery was built for.
const DefaultPattern = "*.png"

// ErrNotDir is returned when the source path exists but is not a directory.
var ErrNotDir = errors.New("not a directory")

// List returns the regular files in dir whose names match pattern, sorted by
// name. Each entry is dir joined with the file name using forward slashes so
// it can be used directly as a URL reference. Subdirectories are not scanned.
// Symlinks are followed and kept when they resolve to a regular file; broken
// links and links to directories are skipped.
func List(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		// Pattern was validated above.
		if ok, _ := path.Match(pattern, entry.Name()); !ok {
			continue
		}
		if isFile(dir, entry) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.ToSlash(filepath.Join(dir, name))
	}
	return paths, nil
}

func isFile(dir string, entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			return false
		}
		mode = info.Mode()
	}
	return mode.IsRegular()
}
