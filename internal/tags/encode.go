package tags

import "strings"

// Encode renders the entry as a tags line without a trailing newline.
//
// The shortest form that preserves the entry is chosen: the address
// terminator is written only when a kind or fields follow it or the address
// itself contains ;", and the kind letter is omitted entirely when the kind
// is Undefined.
func (t TagEntry) Encode() string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteByte('\t')
	b.WriteString(t.FilePath)
	b.WriteByte('\t')
	b.WriteString(t.Address)

	if t.Kind.IsUndefined() && len(t.Fields) == 0 {
		if strings.Contains(t.Address, addressTerminator) {
			b.WriteString(addressTerminator)
		}
		return b.String()
	}

	b.WriteString(addressTerminator)
	if !t.Kind.IsUndefined() {
		b.WriteByte('\t')
		b.WriteRune(t.Kind.Char(t.Language()))
	}

	for _, f := range t.Fields.normalized() {
		b.WriteByte('\t')
		b.WriteString(f.Key)
		b.WriteByte(':')
		b.WriteString(f.Value)
	}
	return b.String()
}

// Encode renders a single entry; see TagEntry.Encode.
func Encode(entry TagEntry) string {
	return entry.Encode()
}

// EncodeSet renders every entry of the set in encoded order, one per line.
func EncodeSet(set *Set) string {
	var b strings.Builder
	for _, entry := range set.Entries() {
		b.WriteString(entry.Encode())
		b.WriteByte('\n')
	}
	return b.String()
}
