package fileutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"readctags/pkg/logger"
)

// FileEvent represents a change to the watched file
type FileEvent struct {
	Type FileEventType
	Path string
	Time time.Time // When the last event of the burst occurred
}

// FileEventType represents the type of file system event
type FileEventType int

const (
	// EventCreate is triggered when a file is created
	EventCreate FileEventType = iota
	// EventModify is triggered when a file is modified
	EventModify
	// EventDelete is triggered when a file is deleted
	EventDelete
	// EventRename is triggered when a file is renamed
	EventRename
)

// String returns a string representation of the event type
func (t FileEventType) String() string {
	switch t {
	case EventCreate:
		return "CREATE"
	case EventModify:
		return "MODIFY"
	case EventDelete:
		return "DELETE"
	case EventRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

func eventType(op fsnotify.Op) (FileEventType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return EventCreate, true
	case op.Has(fsnotify.Write):
		return EventModify, true
	case op.Has(fsnotify.Remove):
		return EventDelete, true
	case op.Has(fsnotify.Rename):
		return EventRename, true
	default:
		return 0, false
	}
}

// FileWatcher reports changes to a single file. The parent directory is
// watched so that files replaced by rename (as ctags does) keep being seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	logger   *logger.Logger
}

// NewFileWatcher creates a watcher for path. Bursts of events closer than
// debounce are reported once.
func NewFileWatcher(path string, debounce time.Duration, log *logger.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	if log == nil {
		log = logger.Discard()
	}
	return &FileWatcher{path: filepath.Clean(abs), debounce: debounce, logger: log}, nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Watch blocks until ctx is done, calling onChange after each debounced
// burst of events on the file.
func (w *FileWatcher) Watch(ctx context.Context, onChange func(FileEvent)) error {
	dir := filepath.Dir(w.path)
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	} else if !info.IsDir() {
		return fmt.Errorf("failed to watch %s: %s is not a directory", w.path, dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Debug("Watching file", "path", w.path, "debounce", w.debounce)

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending *FileEvent

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			typ, ok := eventType(event.Op)
			if !ok {
				continue
			}
			if pending != nil && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			pending = &FileEvent{Type: typ, Path: w.path, Time: time.Now()}
			timer.Reset(w.debounce)
		case <-timer.C:
			if pending != nil {
				w.logger.Debug("File changed", "path", pending.Path, "event", pending.Type.String())
				onChange(*pending)
				pending = nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
