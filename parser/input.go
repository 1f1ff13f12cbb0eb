package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input is a cursor over a markup document. The document is immutable,
// the cursor moves forward (and, for look-ahead, back) on rune boundaries.
//
// Positions are byte offsets into the document. Every position returned by
// an Input is a rune boundary, and clients should only ever slice at such
// positions.
type Input struct {
	src    string
	cursor int
}

// NewInput creates a cursor positioned at the start of src.
func NewInput(src string) *Input {
	return &Input{src: src}
}

// Len returns the length of the document in bytes.
func (in *Input) Len() int {
	return len(in.src)
}

// IsEnd is true if the cursor is at (or past) the end of input.
func (in *Input) IsEnd() bool {
	return in.cursor >= len(in.src)
}

// Cursor returns the current position.
func (in *Input) Cursor() int {
	return in.cursor
}

// SetCursor moves the cursor to pos, which must have been returned by the
// Input before. pos is clamped to the bounds of the document.
func (in *Input) SetCursor(pos int) {
	in.cursor = max(0, min(pos, len(in.src)))
}

// Current returns the rune at the cursor, or utf8.RuneError at the end of
// input.
func (in *Input) Current() rune {
	if in.IsEnd() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(in.src[in.cursor:])
	return r
}

// Expect is true if the rune at the cursor is c. It does not move the cursor.
func (in *Input) Expect(c rune) bool {
	return !in.IsEnd() && in.Current() == c
}

// Next moves the cursor forward by one rune and returns the rune it
// stepped over. At the end of input it does nothing and returns
// utf8.RuneError.
func (in *Input) Next() rune {
	if in.IsEnd() {
		return utf8.RuneError
	}
	r, size := utf8.DecodeRuneInString(in.src[in.cursor:])
	in.cursor += size
	return r
}

// NextChar moves the cursor forward by one rune and returns the rune
// now under the cursor (utf8.RuneError if it reached the end of input).
func (in *Input) NextChar() rune {
	in.Next()
	return in.Current()
}

// Find returns the position of the first occurrence of c at or after the
// cursor. It does not move the cursor.
func (in *Input) Find(c rune) (int, bool) {
	if in.IsEnd() {
		return -1, false
	}
	i := strings.IndexRune(in.src[in.cursor:], c)
	if i < 0 {
		return -1, false
	}
	return in.cursor + i, true
}

// FindSpace returns the position of the first white-space character at or
// after the cursor. It does not move the cursor.
func (in *Input) FindSpace() (int, bool) {
	if in.IsEnd() {
		return -1, false
	}
	i := strings.IndexFunc(in.src[in.cursor:], isSpace)
	if i < 0 {
		return -1, false
	}
	return in.cursor + i, true
}

// FindString returns the position of the first occurrence of sub at or after
// the cursor. If caseSensitive is false, letters are compared under simple
// Unicode case folding. It does not move the cursor.
func (in *Input) FindString(sub string, caseSensitive bool) (int, bool) {
	if sub == "" {
		return in.cursor, true
	}
	rest := in.src[in.cursor:]
	if caseSensitive {
		i := strings.Index(rest, sub)
		if i < 0 {
			return -1, false
		}
		return in.cursor + i, true
	}
	for i := range rest { // i iterates over rune boundaries
		if hasPrefixFold(rest[i:], sub) {
			return in.cursor + i, true
		}
	}
	return -1, false
}

// ExpectString is true if s occurs literally at the cursor.
func (in *Input) ExpectString(s string) bool {
	return strings.HasPrefix(in.src[in.cursor:], s)
}

// ExpectStringFold is true if s occurs at the cursor, ignoring case.
func (in *Input) ExpectStringFold(s string) bool {
	return hasPrefixFold(in.src[in.cursor:], s)
}

// RuneBefore returns the rune ending at position pos, or utf8.RuneError if
// pos is at the start of input.
func (in *Input) RuneBefore(pos int) rune {
	pos = max(0, min(pos, len(in.src)))
	r, _ := utf8.DecodeLastRuneInString(in.src[:pos])
	return r
}

// IsSpace is true if the rune at the cursor is white space.
func (in *Input) IsSpace() bool {
	return !in.IsEnd() && isSpace(in.Current())
}

// SkipSpace moves the cursor over white space, but not beyond limit.
func (in *Input) SkipSpace(limit int) {
	for in.cursor < limit && in.IsSpace() {
		in.Next()
	}
}

// Slice returns the document between positions begin and end.
func (in *Input) Slice(begin, end int) (string, error) {
	if begin < 0 || begin > end || end > len(in.src) {
		return "", in.errorAt(ErrOutOfBounds, min(max(0, begin), len(in.src)),
			"cannot slice [%d:%d] of %d bytes", begin, end, len(in.src))
	}
	return in.src[begin:end], nil
}

// Position returns the 1-indexed line and column of a byte offset.
// Columns count runes.
func (in *Input) Position(pos int) (line int, col int) {
	pos = max(0, min(pos, len(in.src)))
	before := in.src[:pos]
	line = strings.Count(before, "\n") + 1
	if nl := strings.LastIndexByte(before, '\n'); nl >= 0 {
		before = before[nl+1:]
	}
	col = utf8.RuneCountInString(before) + 1
	return
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// hasPrefixFold compares s and prefix rune by rune under simple Unicode case
// folding. Folded runes may differ in their UTF-8 length.
func hasPrefixFold(s, prefix string) bool {
	for prefix != "" {
		if s == "" {
			return false
		}
		r1, n1 := utf8.DecodeRuneInString(s)
		r2, n2 := utf8.DecodeRuneInString(prefix)
		if r1 != r2 && !equalFold(r1, r2) {
			return false
		}
		s, prefix = s[n1:], prefix[n2:]
	}
	return true
}

func equalFold(r1, r2 rune) bool {
	for r := unicode.SimpleFold(r1); r != r1; r = unicode.SimpleFold(r) {
		if r == r2 {
			return true
		}
	}
	return false
}
