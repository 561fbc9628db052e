// Package locator finds and reads the first available tags file from an
// ordered list of candidate paths.
package locator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"readctags/internal/tags"
	"readctags/pkg/fsutil"
	"readctags/pkg/logger"
)

// ErrNoCtagsFile is matched by errors reporting that no candidate was readable.
var ErrNoCtagsFile = errors.New("unable to find ctags file")

// NoCtagsFileError lists every candidate that was tried and the last read
// failure.
type NoCtagsFileError struct {
	Paths []string
	Err   error
}

func (e *NoCtagsFileError) Error() string {
	return fmt.Sprintf("%s (searched in %s): %v", ErrNoCtagsFile, strings.Join(e.Paths, ", "), e.Err)
}

func (e *NoCtagsFileError) Unwrap() error {
	return e.Err
}

func (e *NoCtagsFileError) Is(target error) bool {
	return target == ErrNoCtagsFile
}

// DefaultPaths is the search order used when none is configured.
func DefaultPaths() []string {
	return []string{".git/tags", "tags", "tmp/tags"}
}

// Locator reads the first readable file of its candidate list.
type Locator struct {
	paths    []string
	root     string
	readFile func(string) ([]byte, error)
	logger   *logger.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithRoot resolves relative candidates against dir instead of the working
// directory.
func WithRoot(dir string) Option {
	return func(l *Locator) { l.root = dir }
}

// WithLogger sets the logger used to report each attempt. Attributes are
// grouped under "locator".
func WithLogger(log *logger.Logger) Option {
	return func(l *Locator) {
		if log != nil {
			l.logger = log.WithGroup("locator")
		}
	}
}

// WithReadFile replaces os.ReadFile.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(l *Locator) { l.readFile = fn }
}

// New creates a locator over paths, tried in order.
func New(paths []string, opts ...Option) *Locator {
	l := &Locator{
		paths:    append([]string(nil), paths...),
		readFile: os.ReadFile,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Paths returns the candidate list in search order.
func (l *Locator) Paths() []string {
	return append([]string(nil), l.paths...)
}

// Result is the file that was found.
type Result struct {
	Path    string // resolved path of the file that was read
	Content string
}

// Read returns the contents of the first candidate that can be read in full.
// If none can, the error is a *NoCtagsFileError.
func (l *Locator) Read() (Result, error) {
	lastErr := errors.New("no file provided")

	for _, candidate := range l.paths {
		path, err := fsutil.ResolvePath(l.root, candidate)
		if err != nil {
			lastErr = err
			continue
		}

		data, err := l.readFile(path)
		if err != nil {
			l.logger.Debug("Tags candidate unreadable", "path", path, "error", err)
			lastErr = err
			continue
		}

		l.logger.Debug("Tags file found", "path", path, "bytes", len(data))
		return Result{Path: path, Content: string(data)}, nil
	}

	return Result{}, &NoCtagsFileError{Paths: l.Paths(), Err: lastErr}
}

// Load reads the first available tags file and parses it. Parse errors are
// returned unchanged.
func (l *Locator) Load() (*tags.Set, Result, error) {
	found, err := l.Read()
	if err != nil {
		return nil, Result{}, err
	}

	set, err := tags.Parse(found.Content)
	if err != nil {
		l.logger.Warn("Failed to parse tags file", "path", found.Path, "error", err)
		return nil, found, err
	}

	l.logger.Info("Loaded tags", "path", found.Path, "entries", set.Len())
	return set, found, nil
}
