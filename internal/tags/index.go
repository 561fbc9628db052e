package tags

import (
	"fmt"
	"sort"

	"github.com/Knetic/govaluate"
)

// Index represents a collection of tag entries with lookups by name, file,
// kind and language.
type Index struct {
	entries    []TagEntry
	byName     map[string][]TagEntry   // Entries by tag name (names repeat across files)
	byFile     map[string][]TagEntry   // Entries by file path
	byKind     map[KindName][]TagEntry // Entries by kind name
	byLanguage map[Language][]TagEntry // Entries by resolved language
}

// NewIndex builds an index over the entries of a set.
func NewIndex(set *Set) *Index {
	idx := &Index{
		entries:    set.Entries(),
		byName:     make(map[string][]TagEntry),
		byFile:     make(map[string][]TagEntry),
		byKind:     make(map[KindName][]TagEntry),
		byLanguage: make(map[Language][]TagEntry),
	}
	for _, entry := range idx.entries {
		idx.byName[entry.Name] = append(idx.byName[entry.Name], entry)
		idx.byFile[entry.FilePath] = append(idx.byFile[entry.FilePath], entry)
		idx.byKind[entry.Kind.Name] = append(idx.byKind[entry.Kind.Name], entry)
		idx.byLanguage[entry.Language()] = append(idx.byLanguage[entry.Language()], entry)
	}
	return idx
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// ByName returns all entries with the given tag name
func (idx *Index) ByName(name string) []TagEntry {
	return idx.byName[name]
}

// ByFile returns all entries defined in a file
func (idx *Index) ByFile(filePath string) []TagEntry {
	return idx.byFile[filePath]
}

// ByKind returns all entries of a kind
func (idx *Index) ByKind(kind KindName) []TagEntry {
	return idx.byKind[kind]
}

// ByLanguage returns all entries whose path resolves to lang
func (idx *Index) ByLanguage(lang Language) []TagEntry {
	return idx.byLanguage[lang]
}

// Kinds returns the kind names present in the index, sorted.
func (idx *Index) Kinds() []KindName {
	kinds := make([]KindName, 0, len(idx.byKind))
	for kind := range idx.byKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Languages returns the languages present in the index, sorted.
func (idx *Index) Languages() []Language {
	langs := make([]Language, 0, len(idx.byLanguage))
	for lang := range idx.byLanguage {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// CountTags returns the number of unique tag names
func (idx *Index) CountTags() int {
	return len(idx.byName)
}

// CountFiles returns the number of files
func (idx *Index) CountFiles() int {
	return len(idx.byFile)
}

// CountKinds returns the number of kinds
func (idx *Index) CountKinds() int {
	return len(idx.byKind)
}

// Query returns the entries for which the boolean expression holds.
//
// The expression may use name, path, address, language, kind and kind_char,
// and any extension field key, for example:
//
//	kind == 'class' && language == 'ruby'
//	module == 'Foobar' || name =~ '^Test'
//
// Variables that are neither built in nor present on an entry read as "".
func (idx *Index) Query(expr string) ([]TagEntry, error) {
	compiled, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	var out []TagEntry
	for _, entry := range idx.entries {
		result, err := compiled.Eval(entryParameters{entry: entry})
		if err != nil {
			return nil, fmt.Errorf("evaluating query on %s: %w", entry.Name, err)
		}
		matched, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("query %q returned %T, expected bool", expr, result)
		}
		if matched {
			out = append(out, entry)
		}
	}
	return out, nil
}

// entryParameters exposes an entry to govaluate without building a map per
// entry.
type entryParameters struct {
	entry TagEntry
}

func (p entryParameters) Get(name string) (interface{}, error) {
	switch name {
	case "name":
		return p.entry.Name, nil
	case "path":
		return p.entry.FilePath, nil
	case "address":
		return p.entry.Address, nil
	case "language":
		return string(p.entry.Language()), nil
	case "kind":
		return string(p.entry.Kind.Name), nil
	case "kind_char":
		if p.entry.Kind.IsUndefined() {
			return "", nil
		}
		return string(p.entry.Kind.Char(p.entry.Language())), nil
	}
	value, _ := p.entry.Fields.Get(name)
	return value, nil
}
