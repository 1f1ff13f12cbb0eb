package dom

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Style parses the inline style attribute of a tag into CSS declarations.
// A tag without a style attribute has no declarations.
//
//     <p style="color: red; margin: 0 !important">
//
// yields declarations color=red and margin=0 (important).
func (tag *Tag) Style() ([]*css.Declaration, error) {
	s, ok := tag.Attr("style")
	s = strings.TrimSpace(s)
	if !ok || s == "" {
		return nil, nil
	}
	if !strings.HasSuffix(s, ";") {
		s += ";" // douceur completes a declaration only at ';' or '}'
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		return nil, fmt.Errorf("style of <%s>: %w", tag.Name, err)
	}
	return decls, nil
}

// StyleProperty returns the value of a single property from the inline
// style of a tag. If a property is declared more than once, the last
// declaration wins, unless an earlier one is marked important.
func (tag *Tag) StyleProperty(property string) (string, bool) {
	decls, err := tag.Style()
	if err != nil {
		tracer().Debugf("ignoring malformed style: %v", err)
		return "", false
	}
	var found *css.Declaration
	for _, d := range decls {
		if d.Property != property {
			continue
		}
		if found != nil && found.Important && !d.Important {
			continue
		}
		found = d
	}
	if found == nil {
		return "", false
	}
	return found.Value, true
}

// StyleSheets parses the contents of all <style> elements in the sub-tree
// starting at (and including) n, in document order.
func StyleSheets(n *Node) ([]*css.Stylesheet, error) {
	var sheets []*css.Stylesheet
	for _, style := range NodesByName(n, "style") {
		sheet, err := parser.Parse(style.Text())
		if err != nil {
			return nil, fmt.Errorf("<style> element: %w", err)
		}
		sheets = append(sheets, sheet)
	}
	tracer().Debugf("found %d style sheets", len(sheets))
	return sheets, nil
}
