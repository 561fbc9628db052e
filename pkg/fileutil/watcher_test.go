package fileutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileEventTypeString(t *testing.T) {
	assert.Equal(t, "CREATE", EventCreate.String())
	assert.Equal(t, "MODIFY", EventModify.String())
	assert.Equal(t, "DELETE", EventDelete.String())
	assert.Equal(t, "RENAME", EventRename.String())
	assert.Equal(t, "UNKNOWN", FileEventType(42).String())
}

func TestWatchReportsDebouncedChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags")
	other := filepath.Join(dir, "other")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\t1\n"), 0644))

	w, err := NewFileWatcher(path, 50*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan FileEvent, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(e FileEvent) { events <- e })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a\tb\t2\n"), 0644))
	}

	select {
	case e := <-events:
		assert.Equal(t, w.Path(), e.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w, err := NewFileWatcher(filepath.Join(t.TempDir(), "missing", "tags"), 0, nil)
	require.NoError(t, err)

	err = w.Watch(context.Background(), func(FileEvent) {})
	assert.Error(t, err)
}
