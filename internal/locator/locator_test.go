package locator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readctags/internal/tags"
	"readctags/pkg/logger"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReadFallsBackInOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "B", "from B")
	writeFile(t, root, "C", "from C")

	loc := New([]string{"A", "B", "C"}, WithRoot(root))
	found, err := loc.Read()
	require.NoError(t, err)
	assert.Equal(t, "from B", found.Content)
	assert.Equal(t, filepath.Join(root, "B"), found.Path)
}

func TestReadSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "tags"), 0755))
	writeFile(t, root, "tags", "n\tf\t1\n")

	found, err := New(DefaultPaths(), WithRoot(root)).Read()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "tags"), found.Path)
}

func TestReadNoCandidateFound(t *testing.T) {
	root := t.TempDir()

	_, err := New([]string{"A", "B", "C"}, WithRoot(root)).Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCtagsFile))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var notFound *NoCtagsFileError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, []string{"A", "B", "C"}, notFound.Paths)
	assert.Contains(t, err.Error(), "searched in A, B, C")
}

func TestReadEmptyCandidateList(t *testing.T) {
	_, err := New(nil).Read()

	var notFound *NoCtagsFileError
	require.True(t, errors.As(err, &notFound))
	assert.Empty(t, notFound.Paths)
	assert.EqualError(t, notFound.Err, "no file provided")
}

func TestReadReportsLastError(t *testing.T) {
	calls := 0
	readFile := func(path string) ([]byte, error) {
		calls++
		return nil, errors.New("boom " + filepath.Base(path))
	}

	_, err := New([]string{"one", "two"}, WithRoot("/x"), WithReadFile(readFile)).Read()
	assert.Equal(t, 2, calls)
	assert.ErrorContains(t, err, "boom two")
}

func TestLoadParsesFirstFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tmp/tags", "ClassMethod\tpath/to/file.rb\t2;\"\tS\tclass:File\tmodule:Foobar\n")

	set, found, err := New(DefaultPaths(), WithRoot(root)).Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "tmp", "tags"), found.Path)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, tags.Named(tags.KindSingletonMethod), set.Entries()[0].Kind)
}

func TestLoadPropagatesParseErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tags", "n\tf\t1\nEXTRA GARBAGE")

	set, _, err := New([]string{"tags"}, WithRoot(root)).Load()
	assert.Nil(t, set)
	assert.True(t, errors.Is(err, tags.ErrFailedParse))
}

func TestReadLogsAttemptsUnderLocatorGroup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tags", "n\tf\t1\n")
	logPath := filepath.Join(t.TempDir(), "readctags.log")

	log, err := logger.New(logger.Config{LogFile: logPath, LogLevel: "debug", Format: "text"})
	require.NoError(t, err)

	_, err = New([]string{"missing", "tags"}, WithRoot(root), WithLogger(log)).Read()
	require.NoError(t, err)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "locator.path="+filepath.Join(root, "missing"))
	assert.Contains(t, string(data), "locator.bytes=7")
}
