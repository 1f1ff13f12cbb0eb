package dom

import (
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RootName is the tag name of the synthetic root node the parser creates.
const RootName = "root"

// IsRoot is true for the synthetic root node of a parse tree, i.e. a tag
// named "root" without a parent.
func (n *Node) IsRoot() bool {
	tag, ok := n.Tag()
	return ok && tag.Name == RootName && !n.HasParent()
}

// ToHTML mirrors a (sub-)tree as a tree of golang.org/x/net/html nodes.
// The synthetic root becomes a html.DocumentNode, tags become element
// nodes, text and comments become text and comment nodes.
// Attributes are appended in sorted order.
//
// The mirror is a copy: changing it does not change n.
func ToHTML(n *Node) *html.Node {
	if n == nil {
		return nil
	}
	return mirror(n, nil)
}

// mirror copies n recursively. If dict is non-nil, it records the DOM node
// for every html node created.
func mirror(n *Node, dict map[*html.Node]*Node) *html.Node {
	h := &html.Node{}
	switch p := n.payload.(type) {
	case *Tag:
		if n.IsRoot() {
			h.Type = html.DocumentNode
			break
		}
		h.Type = html.ElementNode
		h.Data = p.Name
		h.DataAtom = atom.Lookup([]byte(p.Name))
		for _, k := range p.AttrNames() {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: p.Attributes[k]})
		}
	case Text:
		h.Type = html.TextNode
		h.Data = string(p)
	case Comment:
		h.Type = html.CommentNode
		h.Data = string(p)
	default:
		h.Type = html.ErrorNode
	}
	if dict != nil {
		dict[h] = n
	}
	for _, ch := range n.Children() {
		h.AppendChild(mirror(ch, dict))
	}
	return h
}

// Render writes a (sub-)tree as HTML markup to w, using html.Render.
//
// Text is written escaped; as the parser does not decode entities, text
// containing '&' will not round-trip verbatim.
func Render(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	return html.Render(w, ToHTML(n))
}

// Select returns all nodes in the sub-tree starting at (and including) n
// which match a CSS selector, in document order.
func Select(n *Node, selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	if n == nil {
		return nil, nil
	}
	dict := make(map[*html.Node]*Node)
	matches := sel.MatchAll(mirror(n, dict))
	tracer().Debugf("selector %q matched %d nodes", selector, len(matches))
	nodes := make([]*Node, 0, len(matches))
	for _, h := range matches {
		if dn := dict[h]; dn != nil {
			nodes = append(nodes, dn)
		}
	}
	return nodes, nil
}

// SelectFirst returns the first node in the sub-tree starting at (and
// including) n which matches a CSS selector.
func SelectFirst(n *Node, selector string) (*Node, bool, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, false, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	if n == nil {
		return nil, false, nil
	}
	dict := make(map[*html.Node]*Node)
	h := sel.MatchFirst(mirror(n, dict))
	if h == nil {
		return nil, false, nil
	}
	dn, ok := dict[h]
	return dn, ok, nil
}
