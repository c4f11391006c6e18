// Package web provides the embedded HTML templates and the frame layout used
// by the renderers.
//
// The templates/ directory is embedded at build time. A directory on disk with
// the same file names can be supplied instead, which allows the page markup or
// frame shape to be customized without rebuilding.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// File names inside the assets filesystem.
const (
	PageTemplate = "spiral.html.tmpl"
	FrameLayout  = "frame.txt"
)

//go:embed templates/*
var assets embed.FS

// GetAssets returns the filesystem holding the templates. If overrideDir is a
// directory on disk it is returned as is; otherwise the embedded templates are
// used.
func GetAssets(overrideDir string) fs.FS {
	if overrideDir != "" {
		if stat, err := os.Stat(overrideDir); err == nil && stat.IsDir() {
			return os.DirFS(overrideDir)
		}
	}

	subFS, err := fs.Sub(assets, "templates")
	if err != nil {
		// This should never happen with properly embedded assets
		panic("failed to access embedded templates: " + err.Error())
	}
	return subFS
}

// ReadFrame reads the frame layout from fsys.
func ReadFrame(fsys fs.FS) (string, error) {
	data, err := fs.ReadFile(fsys, FrameLayout)
	if err != nil {
		return "", fmt.Errorf("failed to read frame layout: %w", err)
	}
	return string(data), nil
}
