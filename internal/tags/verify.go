package tags

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Mismatch is a line that parses but does not encode back to itself.
type Mismatch struct {
	Line     int
	Original string
	Encoded  string
	Diffs    []diffmatchpatch.Diff
}

// Verify checks every tag line of text against its re-encoded form and
// returns the lines that are not in canonical form: address terminators
// with nothing after them, fields out of key order, repeated keys.
// Parse errors abort the check and are returned unchanged.
func Verify(text string) ([]Mismatch, error) {
	dmp := diffmatchpatch.New()
	var mismatches []Mismatch

	for i, line := range splitLines(text) {
		if isPseudoTag(line) {
			continue
		}
		entry, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		encoded := entry.Encode()
		if encoded == line {
			continue
		}
		diffs := dmp.DiffMain(line, encoded, false)
		mismatches = append(mismatches, Mismatch{
			Line:     i + 1,
			Original: line,
			Encoded:  encoded,
			Diffs:    dmp.DiffCleanupSemantic(diffs),
		})
	}
	return mismatches, nil
}
