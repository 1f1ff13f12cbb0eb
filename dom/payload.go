package dom

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Payload is the content carried by a tree node. It is one of
//
//     *Tag      a start tag, an end tag or a self-closing tag
//     Text      a run of text between tags
//     Comment   the contents of <!-- … -->
//
// Clients switch on the concrete type to find out what a node is.
type Payload interface {
	isPayload()
	String() string
}

// Text is the payload of text nodes. It holds the text verbatim, entities
// are not decoded.
type Text string

func (Text) isPayload() {}

func (t Text) String() string {
	return fmt.Sprintf("Text(%q)", string(t))
}

// Comment is the payload of comment nodes.
type Comment string

func (Comment) isPayload() {}

func (c Comment) String() string {
	return fmt.Sprintf("Comment(%q)", string(c))
}

// Tag is the payload of element nodes.
//
// A start tag is either self-closing (<br/>) or ordinary. An end tag (</p>)
// has EndTag set and never is self-closing. End tags are only present in
// the token stream; a finished tree does not contain them.
type Tag struct {
	Name        string            // tag name, as written
	Attributes  map[string]string // nil if no attributes were given
	SelfClosing bool              // <tag />
	EndTag      bool              // </tag>
}

func (*Tag) isPayload() {}

// NewTag creates a start tag without attributes.
func NewTag(name string) *Tag {
	return &Tag{Name: name}
}

// Attr returns the value of an attribute and whether it is present.
func (tag *Tag) Attr(name string) (string, bool) {
	if tag == nil || tag.Attributes == nil {
		return "", false
	}
	v, ok := tag.Attributes[name]
	return v, ok
}

// SetAttr sets an attribute, creating the attribute map if necessary.
func (tag *Tag) SetAttr(name, value string) {
	if tag.Attributes == nil {
		tag.Attributes = make(map[string]string)
	}
	tag.Attributes[name] = value
}

// HasAttributes is true if the tag carries at least one attribute.
func (tag *Tag) HasAttributes() bool {
	return tag != nil && len(tag.Attributes) > 0
}

// AttrNames returns the attribute names of a tag in sorted order.
func (tag *Tag) AttrNames() []string {
	if tag == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(tag.Attributes))
}

// Equal compares two tags by name, flags and attributes.
// A nil attribute map is equal to an empty one.
func (tag *Tag) Equal(other *Tag) bool {
	if tag == nil || other == nil {
		return tag == other
	}
	return tag.Name == other.Name &&
		tag.SelfClosing == other.SelfClosing &&
		tag.EndTag == other.EndTag &&
		maps.Equal(tag.Attributes, other.Attributes)
}

func (tag *Tag) String() string {
	var b strings.Builder
	b.WriteByte('<')
	if tag.EndTag {
		b.WriteByte('/')
	}
	b.WriteString(tag.Name)
	for _, k := range tag.AttrNames() {
		fmt.Fprintf(&b, " %s=%q", k, tag.Attributes[k])
	}
	if tag.SelfClosing {
		b.WriteString(" /")
	}
	b.WriteByte('>')
	return b.String()
}

// PayloadEqual compares two payloads. Payloads of different kind are never
// equal.
func PayloadEqual(a, b Payload) bool {
	switch x := a.(type) {
	case *Tag:
		y, ok := b.(*Tag)
		return ok && x.Equal(y)
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Comment:
		y, ok := b.(Comment)
		return ok && x == y
	}
	return a == nil && b == nil
}
