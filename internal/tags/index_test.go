package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexFixture = `!_TAG_FILE_FORMAT	2	/extended format/
File	lib/file.rb	/^class File$/;"	c	module:Foobar
ClassMethod	lib/file.rb	2;"	S	class:File	module:Foobar
run	cmd/main.go	/^func run() error {$/;"	f	package:main
main	cmd/main.go	/^func main() {$/;"	f	package:main
run	scripts/run.py	/^def run():$/;"	f
README	README	1
`

func newFixtureIndex(t *testing.T) *Index {
	t.Helper()
	set, err := Parse(indexFixture)
	require.NoError(t, err)
	return NewIndex(set)
}

func TestIndexLookups(t *testing.T) {
	idx := newFixtureIndex(t)

	assert.Equal(t, 6, idx.Len())
	assert.Equal(t, 5, idx.CountTags())
	assert.Equal(t, 4, idx.CountFiles())

	runs := idx.ByName("run")
	require.Len(t, runs, 2)
	assert.Equal(t, LanguageGo, runs[0].Language())
	assert.Equal(t, LanguagePython, runs[1].Language())

	assert.Len(t, idx.ByFile("lib/file.rb"), 2)
	assert.Len(t, idx.ByKind(KindFunction), 3)
	assert.Len(t, idx.ByKind(KindUndefined), 1)
	assert.Len(t, idx.ByLanguage(LanguageRuby), 2)
	assert.Empty(t, idx.ByName("missing"))

	assert.Equal(t, []KindName{KindUndefined, KindClass, KindFunction, KindSingletonMethod}, idx.Kinds())
	assert.Equal(t, 4, idx.CountKinds())
	assert.Equal(t, []Language{LanguageNone, LanguageGo, LanguagePython, LanguageRuby}, idx.Languages())
}

func TestIndexQuery(t *testing.T) {
	idx := newFixtureIndex(t)

	tests := []struct {
		name     string
		expr     string
		expected []string
	}{
		{"by kind and language", "kind == 'function' && language == 'go'", []string{"main", "run"}},
		{"by extension field", "module == 'Foobar'", []string{"ClassMethod", "File"}},
		{"missing field reads empty", "class == '' && language == 'ruby'", []string{"File"}},
		{"kind character", "kind_char == 'S'", []string{"ClassMethod"}},
		{"regex on name", "name =~ '^R'", []string{"README"}},
		{"undefined kind", "kind == ''", []string{"README"}},
		{"no matches", "name == 'nothing'", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := idx.Query(tt.expr)
			require.NoError(t, err)

			var names []string
			for _, m := range matches {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestIndexQueryErrors(t *testing.T) {
	idx := newFixtureIndex(t)

	_, err := idx.Query("name ==")
	assert.Error(t, err)

	_, err = idx.Query("name")
	assert.ErrorContains(t, err, "expected bool")
}
