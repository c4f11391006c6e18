package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/primespiral/internal/config"
	"github.com/thruflo/primespiral/internal/testutil"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchAndBuildRebuildsOnChange(t *testing.T) {
	tmpDir, imagesDir := testutil.SetupGallery(t, 3)

	cfg := config.DefaultConfig()
	cfg.Source.Dir = imagesDir
	cfg.Output = filepath.Join(tmpDir, "gallery.html")

	ctx, cancel := testutil.ContextWithTestDeadline(t, 30*time.Second)
	defer cancel()
	ctx, stop := context.WithCancel(ctx)

	var status syncBuffer
	done := make(chan error, 1)
	go func() { done <- watchAndBuild(ctx, &cfg, 20*time.Millisecond, &status) }()

	require.Eventually(t, func() bool {
		return strings.Contains(status.String(), "Wrote 3 items")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "004.png"), []byte("png"), 0644))
	require.Eventually(t, func() bool {
		return strings.Contains(status.String(), "Wrote 4 items")
	}, 5*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "004.png")

	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchAndBuildRequiresOutput(t *testing.T) {
	_, imagesDir := testutil.SetupGallery(t, 1)
	cfg := config.DefaultConfig()
	cfg.Source.Dir = imagesDir

	err := watchAndBuild(context.Background(), &cfg, 0, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
}

func TestWatchAndBuildMissingDir(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Source.Dir = filepath.Join(tmpDir, "missing")
	cfg.Output = filepath.Join(tmpDir, "out.html")

	err := watchAndBuild(context.Background(), &cfg, 0, &bytes.Buffer{})
	assert.Error(t, err)
}
