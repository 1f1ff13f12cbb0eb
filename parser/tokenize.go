package parser

import (
	"io"
	"strings"

	"github.com/npillmayer/htmltree/dom"
)

const (
	commentStart = "<!--"
	commentEnd   = "-->"
	doctypeStart = "<!doctype"
	scriptName   = "script"
	scriptEnd    = "</script"
)

// tokenizer turns a document into a flat sequence of nodes, one node per
// call of next. Nodes are not attached to a parent.
type tokenizer struct {
	in     *Input
	script bool // the previous token was a <script> start tag
}

func newTokenizer(in *Input) *tokenizer {
	return &tokenizer{in: in}
}

// Tokenize scans a whole document and returns the flat sequence of nodes
// for tags, end tags, text and comments, in document order. The first
// scanning error aborts tokenization.
func Tokenize(doc string) ([]*dom.Node, error) {
	t := newTokenizer(NewInput(doc))
	nodes := make([]*dom.Node, 0, len(doc)/16)
	for {
		node, err := t.next()
		if err == io.EOF {
			tracer().Debugf("tokenizer produced %d nodes", len(nodes))
			return nodes, nil
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// next scans the construct starting at the cursor and returns a node for it.
// At the end of input it returns io.EOF.
func (t *tokenizer) next() (*dom.Node, error) {
	in := t.in
	if t.script {
		t.script = false
		if !in.Expect('<') {
			return t.scriptText() // also at the end of input
		}
	}
	for !in.IsEnd() {
		switch {
		case in.ExpectString(commentStart):
			return t.comment()
		case in.ExpectStringFold(doctypeStart):
			return t.doctype()
		case in.Expect('<'):
			return t.tag()
		}
		start := in.Cursor()
		in.SkipSpace(in.Len())
		if in.Expect('<') {
			continue // white space in front of a tag is not a node of its own
		}
		return t.text(start)
	}
	return nil, io.EOF
}

// comment scans a comment.
//
// State to receive:
// The cursor points to the '<' of "<!--".
func (t *tokenizer) comment() (*dom.Node, error) {
	in := t.in
	start := in.Cursor()
	bgn := start + len(commentStart)
	in.SetCursor(bgn)
	end, ok := in.FindString(commentEnd, true)
	if !ok {
		return nil, in.errorAt(ErrUnterminatedComment, start, "input ends in the middle of the comment")
	}
	text, err := in.Slice(bgn, end)
	if err != nil {
		return nil, err
	}
	in.SetCursor(end + len(commentEnd))
	tracer().Debugf("comment %q", text)
	return dom.NewComment(text), nil
}

// text scans text up to the next tag or to the end of input.
// The text starts at position start, which may be before the cursor.
func (t *tokenizer) text(start int) (*dom.Node, error) {
	in := t.in
	end, ok := in.Find('<')
	if !ok {
		end = in.Len()
	}
	text, err := in.Slice(start, end)
	if err != nil {
		return nil, err
	}
	in.SetCursor(end)
	tracer().Debugf("text %q", text)
	return dom.NewText(text), nil
}

// scriptText captures the body of a script element verbatim, up to (not
// including) "</script".
func (t *tokenizer) scriptText() (*dom.Node, error) {
	in := t.in
	bgn := in.Cursor()
	end, ok := in.FindString(scriptEnd, true)
	if !ok {
		return nil, in.errorAt(ErrUnterminatedTag, bgn, "input ends in the middle of the script")
	}
	text, err := in.Slice(bgn, end)
	if err != nil {
		return nil, err
	}
	in.SetCursor(end)
	tracer().Debugf("script text %q", text)
	return dom.NewText(text), nil
}

// doctype scans a document type declaration. It results in a tag named
// as written ("doctype" or "DOCTYPE"), with the words of the declaration
// as attributes without values.
//
// State to receive:
// The cursor points to the '<' of "<!doctype".
func (t *tokenizer) doctype() (*dom.Node, error) {
	in := t.in
	start := in.Cursor()
	in.Next() // '<'
	in.Next() // '!'
	tag := &dom.Tag{}
	if err := t.tagBody(tag, start); err != nil {
		return nil, err
	}
	return dom.NewNode(tag), nil
}

// tag scans a start tag or an end tag.
//
// State to receive:
// The cursor points to the first '<'.
//
//     <[/]<tag_name> [<attr>[="<value>"]] [/]>
//     <[/]<tag_name> [<attr>[='<value>']] [/]>
//     <[/]<tag_name> [<attr>[=<value>]] [/]>
func (t *tokenizer) tag() (*dom.Node, error) {
	in := t.in
	start := in.Cursor()
	in.Next() // '<'
	tag := &dom.Tag{}
	if in.Expect('/') {
		in.Next()
		tag.EndTag = true
	}
	if err := t.tagBody(tag, start); err != nil {
		return nil, err
	}
	if tag.Name == scriptName && !tag.EndTag && !tag.SelfClosing {
		t.script = true
	}
	return dom.NewNode(tag), nil
}

// tagBody scans tag name and attributes, up to and including the closing
// '>'. start is the position of the tag's '<', used for error messages.
func (t *tokenizer) tagBody(tag *dom.Tag, start int) error {
	in := t.in
	end, err := t.tagEnd(start)
	if err != nil {
		return err
	}
	if err = t.tagName(tag, end); err != nil {
		return err
	}
	if err = t.attributes(tag, end); err != nil {
		return err
	}
	in.SetCursor(end)
	in.Next() // '>'
	if _, ok := tag.Attributes["/"]; ok {
		delete(tag.Attributes, "/")
		tag.SelfClosing = !tag.EndTag
		if len(tag.Attributes) == 0 {
			tag.Attributes = nil
		}
	}
	tracer().Debugf("tag %s", tag)
	return nil
}

// tagEnd returns the position of the '>' terminating the current tag.
// A '>' between double quotes does not terminate a tag.
// The cursor is left unchanged.
//
//     <tag attr="a>b" >
//                     ^ this position
func (t *tokenizer) tagEnd(start int) (int, error) {
	in := t.in
	save := in.Cursor()
	defer in.SetCursor(save)
	quoted := false
	for !in.IsEnd() {
		switch in.Current() {
		case '"':
			quoted = !quoted
		case '>':
			if !quoted {
				return in.Cursor(), nil
			}
		}
		in.Next()
	}
	return -1, in.errorAt(ErrUnterminatedTag, start, "input ends in the middle of the tag")
}

// tagName scans the tag name, which ends at the first white space or at the
// end of the tag. A '/' immediately before the closing '>' does not belong
// to the name.
//
// State to receive:
// The cursor points to the first character after "<" or "</".
func (t *tokenizer) tagName(tag *dom.Tag, end int) error {
	in := t.in
	in.SkipSpace(end)
	bgn := in.Cursor()
	nameEnd := end
	if sp, ok := in.FindSpace(); ok && sp < nameEnd {
		nameEnd = sp
	}
	if nameEnd == end && nameEnd > bgn && in.RuneBefore(end) == '/' {
		nameEnd = end - 1 // <br/>
	}
	name, err := in.Slice(bgn, nameEnd)
	if err != nil {
		return err
	}
	tag.Name = strings.TrimSpace(name)
	in.SetCursor(nameEnd)
	return nil
}

// attributes scans the attributes of a tag. A bare '/' in front of the
// closing '>' is scanned as an attribute named "/".
//
// State to receive:
// The cursor points to the first character after the tag name.
//
//     <attr>[ = "<value>"] [/]>
//     <attr>[ = '<value>'] [/]>
//     <attr>[ = <value>] [/]>
func (t *tokenizer) attributes(tag *dom.Tag, end int) error {
	in := t.in
	for {
		in.SkipSpace(end)
		if in.Cursor() >= end {
			return nil
		}
		// attribute name ends at '=', at white space or at the end of the tag
		//
		//     attr="value"
		//         ^
		nameBgn := in.Cursor()
		nameEnd := end
		if eq, ok := in.Find('='); ok && eq < nameEnd {
			nameEnd = eq
		}
		if sp, ok := in.FindSpace(); ok && sp < nameEnd {
			nameEnd = sp
		}
		name, err := in.Slice(nameBgn, nameEnd)
		if err != nil {
			return err
		}
		in.SetCursor(nameEnd)
		in.SkipSpace(end)
		value := ""
		if in.Cursor() < end && in.Expect('=') {
			in.Next()
			in.SkipSpace(end)
			if value, err = t.attrValue(end); err != nil {
				return err
			}
		}
		tag.SetAttr(name, value)
	}
}

// attrValue scans an attribute value.
//
// State to receive:
// The cursor points to the first character after "=" (and white space).
//
//     "<value>"  or  '<value>'  or  <value>
func (t *tokenizer) attrValue(end int) (string, error) {
	in := t.in
	switch {
	case in.Expect('"'):
		return t.delimitedValue('"', end)
	case in.Expect('\''):
		return t.delimitedValue('\'', end)
	}
	// an undelimited value ends at white space or at the end of the tag
	bgn := in.Cursor()
	valueEnd := end
	if sp, ok := in.FindSpace(); ok && sp < valueEnd {
		valueEnd = sp
	}
	value, err := in.Slice(bgn, valueEnd)
	if err != nil {
		return "", err
	}
	in.SetCursor(valueEnd)
	return value, nil
}

// delimitedValue scans a value enclosed in delim. The cursor is left after
// the closing delimiter.
func (t *tokenizer) delimitedValue(delim rune, end int) (string, error) {
	in := t.in
	open := in.Cursor()
	in.Next()
	bgn := in.Cursor()
	closing, ok := in.Find(delim)
	if !ok {
		return "", in.errorAt(ErrUnterminatedTag, open, "input ends in the middle of delimiter (%c)", delim)
	}
	if closing > end {
		return "", in.errorAt(ErrMissingClosingDelimiter, open, "no delimiter (%c) terminates the attribute", delim)
	}
	value, err := in.Slice(bgn, closing)
	if err != nil {
		return "", err
	}
	in.SetCursor(closing)
	in.Next()
	return value, nil
}
