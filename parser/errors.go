package parser

import (
	"errors"
	"fmt"
)

// Errors. Every one of them is fatal for a call to Parse.
var (
	ErrUnterminatedTag         = errors.New("unterminated tag")
	ErrUnterminatedComment     = errors.New("unterminated comment")
	ErrMissingClosingDelimiter = errors.New("missing closing delimiter")
	ErrOutOfBounds             = errors.New("out of bounds")
)

// ScanError reports a failed scanning rule together with the location in
// the document where the offending construct starts.
type ScanError struct {
	Err    error // one of the Err… variables of this package
	Offset int   // 0-indexed byte offset
	Line   int   // 1-indexed line number
	Col    int   // 1-indexed column number
	Msg    string
}

func (e *ScanError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Err, e.Msg)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// errorAt creates a ScanError for a position within the input.
func (in *Input) errorAt(err error, pos int, format string, args ...interface{}) *ScanError {
	line, col := in.Position(pos)
	return &ScanError{
		Err:    err,
		Offset: pos,
		Line:   line,
		Col:    col,
		Msg:    fmt.Sprintf(format, args...),
	}
}
