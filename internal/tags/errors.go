package tags

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteParse is matched by errors reporting unconsumed input.
	ErrIncompleteParse = errors.New("unable to parse ctags file fully")
	// ErrFailedParse is matched by errors reporting a line that fits no form.
	ErrFailedParse = errors.New("failed to parse ctags file")
)

// Reason categorises why a line failed to parse.
type Reason int

const (
	ReasonTooFewFields Reason = iota
	ReasonEmptyLine
	ReasonEmptyName
	ReasonEmptyPath
	ReasonEmptyAddress
	ReasonMissingTerminator
	ReasonEmptyToken
	ReasonInvalidField
	ReasonEmptyKey
	ReasonEmbeddedNewline
)

func (r Reason) String() string {
	switch r {
	case ReasonTooFewFields:
		return "expected name, path and address separated by tabs"
	case ReasonEmptyLine:
		return "empty line"
	case ReasonEmptyName:
		return "empty tag name"
	case ReasonEmptyPath:
		return "empty file path"
	case ReasonEmptyAddress:
		return "empty address"
	case ReasonMissingTerminator:
		return `address not terminated by ;"`
	case ReasonEmptyToken:
		return "empty field"
	case ReasonInvalidField:
		return "expected kind character or key:value field"
	case ReasonEmptyKey:
		return "empty extension field key"
	case ReasonEmbeddedNewline:
		return "newline inside a line"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// IncompleteParseError reports input the grammar matched only in part.
type IncompleteParseError struct {
	Line    int    // 1-based line number
	Residue string // text left after the matched prefix
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("%s: line %d: unconsumed input %q", ErrIncompleteParse, e.Line, e.Residue)
}

func (e *IncompleteParseError) Is(target error) bool {
	return target == ErrIncompleteParse
}

// FailedParseError reports a line that matches none of the line forms.
type FailedParseError struct {
	Line      int    // 1-based line number
	Remainder string // text from the point of failure to the end of the line
	Reason    Reason
}

func (e *FailedParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %s at %q", ErrFailedParse, e.Line, e.Reason, e.Remainder)
}

func (e *FailedParseError) Is(target error) bool {
	return target == ErrFailedParse
}
