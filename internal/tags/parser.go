package tags

import (
	"strings"
	"unicode/utf8"

	"readctags/pkg/util"
)

const (
	// addressTerminator closes the address when metadata follows it.
	addressTerminator = `;"`
	pseudoTagPrefix   = "!_"
)

// Parse parses the contents of a tags file into a set of entries.
//
// Lines are separated by '\n' and a single trailing newline is allowed.
// Every other line must be a pseudo-tag or match one of:
//
//	name<TAB>path<TAB>address
//	name<TAB>path<TAB>address;"
//	name<TAB>path<TAB>address;"<TAB>kind
//	name<TAB>path<TAB>address;"<TAB>kind<TAB>key:value...
//	name<TAB>path<TAB>address;"<TAB>key:value...
//
// The address token is terminated by its final ;" only, so search patterns
// such as /^  puts ";"$/;" are accepted. An address token that contains ;"
// but does not end with it leaves residue and yields an *IncompleteParseError.
//
// Parsing is all-or-nothing: the first bad line aborts with an
// *IncompleteParseError or a *FailedParseError and no entries are returned.
func Parse(text string) (*Set, error) {
	set := NewSet()
	for i, line := range splitLines(text) {
		if isPseudoTag(line) {
			continue
		}
		entry, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		set.Add(entry)
	}
	return set, nil
}

// ParseLine parses a single tags line without its newline. A line holding
// '\n' fails with ReasonEmbeddedNewline.
func ParseLine(line string) (TagEntry, error) {
	return parseLine(line, 1)
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}

func isPseudoTag(line string) bool {
	return strings.HasPrefix(line, pseudoTagPrefix)
}

func parseLine(line string, lineNo int) (TagEntry, error) {
	fail := func(reason Reason, remainder string) (TagEntry, error) {
		return TagEntry{}, &FailedParseError{Line: lineNo, Remainder: remainder, Reason: reason}
	}

	if line == "" {
		return fail(ReasonEmptyLine, line)
	}
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		return fail(ReasonEmbeddedNewline, line[i:])
	}

	parts := strings.Split(line, "\t")
	if len(parts) < 3 {
		return fail(ReasonTooFewFields, line)
	}
	name, filePath, rawAddress := parts[0], parts[1], parts[2]
	rest := parts[3:]

	if name == "" {
		return fail(ReasonEmptyName, line)
	}
	if filePath == "" {
		return fail(ReasonEmptyPath, line[len(name)+1:])
	}

	// offset tracks where the current token starts within line.
	offset := len(name) + len(filePath) + 2
	address := rawAddress
	terminated := false
	if strings.HasSuffix(rawAddress, addressTerminator) {
		// Only the final ;" terminates; patterns may contain the sequence.
		address = strings.TrimSuffix(rawAddress, addressTerminator)
		terminated = true
	} else if i := strings.Index(rawAddress, addressTerminator); i >= 0 {
		end := i + len(addressTerminator)
		return TagEntry{}, &IncompleteParseError{Line: lineNo, Residue: line[offset+end:]}
	}
	if address == "" {
		return fail(ReasonEmptyAddress, line[offset:])
	}
	if len(rest) > 0 && !terminated {
		return fail(ReasonMissingTerminator, line[offset:])
	}
	offset += len(rawAddress) + 1

	kind := Undefined
	if len(rest) > 0 {
		if c, ok := kindChar(rest[0]); ok {
			kind = KindFromChar(c, ResolveLanguage(filePath))
			offset += len(rest[0]) + 1
			rest = rest[1:]
		}
	}

	fields := make([]Field, 0, len(rest))
	for _, token := range rest {
		field, reason, ok := parseField(token)
		if !ok {
			return fail(reason, line[offset:])
		}
		fields = append(fields, field)
		offset += len(token) + 1
	}

	return NewTagEntry(name, filePath, address, kind, fields...), nil
}

// kindChar reports whether token is a bare kind letter: exactly one valid
// rune that is not a field separator.
func kindChar(token string) (rune, bool) {
	if token == "" || strings.Contains(token, ":") {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(token)
	if size != len(token) || (c == utf8.RuneError && size == 1) {
		return 0, false
	}
	return c, true
}

func parseField(token string) (Field, Reason, bool) {
	if token == "" {
		return Field{}, ReasonEmptyToken, false
	}
	key, value, ok := util.SplitKV(token, ":")
	if !ok {
		return Field{}, ReasonInvalidField, false
	}
	if key == "" {
		return Field{}, ReasonEmptyKey, false
	}
	return Field{Key: key, Value: value}, 0, true
}

// PseudoTag is a "!_" header line such as !_TAG_FILE_FORMAT.
type PseudoTag struct {
	Name    string
	Value   string
	Comment string
}

// ParsePseudoTags returns the pseudo-tag lines of a tags file in order.
func ParsePseudoTags(text string) []PseudoTag {
	var out []PseudoTag
	for _, line := range splitLines(text) {
		if !isPseudoTag(line) {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		tag := PseudoTag{Name: parts[0]}
		if len(parts) > 1 {
			tag.Value = parts[1]
		}
		if len(parts) > 2 {
			tag.Comment = strings.TrimSuffix(strings.TrimPrefix(parts[2], "/"), "/")
		}
		out = append(out, tag)
	}
	return out
}
