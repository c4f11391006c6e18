package web

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetAssetsEmbedded(t *testing.T) {
	assets := GetAssets("")
	if assets == nil {
		t.Fatal("GetAssets returned nil")
	}

	for _, name := range []string{PageTemplate, FrameLayout} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestGetAssetsMissingOverrideFallsBack(t *testing.T) {
	assets := GetAssets("/nonexistent/path")
	if _, err := fs.Stat(assets, PageTemplate); err != nil {
		t.Fatalf("expected embedded %s: %v", PageTemplate, err)
	}
}

func TestGetAssetsOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FrameLayout), []byte("##\n"), 0644); err != nil {
		t.Fatal(err)
	}

	frame, err := ReadFrame(GetAssets(dir))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if frame != "##\n" {
		t.Errorf("frame = %q, want override content", frame)
	}
}

func TestEmbeddedFrameShape(t *testing.T) {
	frame, err := ReadFrame(GetAssets(""))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}

	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	if len(lines) != 15 {
		t.Fatalf("frame has %d lines, want 15", len(lines))
	}
	if got := strings.Count(frame, "#"); got == 0 {
		t.Error("frame has no glyph cells")
	}
}

func TestReadFrameMissing(t *testing.T) {
	if _, err := ReadFrame(os.DirFS(t.TempDir())); err == nil {
		t.Error("expected error for missing frame layout")
	}
}
