package tags

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TagEntry represents a single line of a tags file
type TagEntry struct {
	Name     string    // Tag name
	FilePath string    // Path to the file, as written in the tags file
	Address  string    // Line number or search pattern, never interpreted
	Kind     TokenKind // Kind of tag, Undefined when no kind field was present
	Fields   Fields    // Extension fields, sorted by key
}

// NewTagEntry builds an entry; the fields are normalised into key order.
func NewTagEntry(name, filePath, address string, kind TokenKind, fields ...Field) TagEntry {
	return TagEntry{
		Name:     name,
		FilePath: filePath,
		Address:  address,
		Kind:     kind,
		Fields:   NewFields(fields...),
	}
}

// Language is derived from the file path on every call.
func (t TagEntry) Language() Language {
	return ResolveLanguage(t.FilePath)
}

// Equal reports whether two entries carry the same information.
func (t TagEntry) Equal(other TagEntry) bool {
	return t.Name == other.Name &&
		t.FilePath == other.FilePath &&
		t.Address == other.Address &&
		t.Kind == other.Kind &&
		t.Fields.normalized().Equal(other.Fields.normalized())
}

// Key identifies an entry inside a Set: two entries have the same key
// exactly when they are Equal. Unlike the encoded line, it keeps kinds
// apart that share a letter.
func (t TagEntry) Key() string {
	var b strings.Builder
	for _, s := range []string{t.Name, t.FilePath, t.Address, string(t.Kind.Name)} {
		b.WriteString(strconv.Quote(s))
	}
	b.WriteString(strconv.QuoteRune(t.Kind.Code))
	for _, f := range t.Fields.normalized() {
		b.WriteString(strconv.Quote(f.Key))
		b.WriteString(strconv.Quote(f.Value))
	}
	return b.String()
}

func (t TagEntry) String() string {
	return fmt.Sprintf("TagEntry(%s, %q, %s)", t.Name, t.FilePath, t.Language())
}

// Field is one key:value extension field
type Field struct {
	Key   string
	Value string
}

// Fields is an extension field list kept in ascending key order with
// unique keys.
type Fields []Field

// NewFields sorts the given fields by key. When a key repeats, the last
// occurrence wins.
func NewFields(fields ...Field) Fields {
	if len(fields) == 0 {
		return nil
	}
	byKey := make(map[string]string, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}
	out := make(Fields, 0, len(byKey))
	for k, v := range byKey {
		out = append(out, Field{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// normalized returns f itself when already in strict key order, otherwise
// the NewFields form. Hand-built entries may skip NewFields.
func (f Fields) normalized() Fields {
	for i := 1; i < len(f); i++ {
		if f[i-1].Key >= f[i].Key {
			return NewFields(f...)
		}
	}
	return f
}

// Get returns the value stored under key.
func (f Fields) Get(key string) (string, bool) {
	i := sort.Search(len(f), func(i int) bool { return f[i].Key >= key })
	if i < len(f) && f[i].Key == key {
		return f[i].Value, true
	}
	return "", false
}

// Map returns a copy of the fields as a map.
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, field := range f {
		m[field.Key] = field.Value
	}
	return m
}

// Equal compares two field lists by content.
func (f Fields) Equal(other Fields) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}
