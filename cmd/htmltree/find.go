package main

import (
	"fmt"

	"github.com/npillmayer/htmltree/dom"
	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	var query func(root *dom.Node) []*dom.Node
	switch {
	case cfg.Attr != "":
		name, value, err := cfg.attribute()
		if err != nil {
			return err
		}
		attr := dom.Attribute{Name: name, Value: value}
		query = func(root *dom.Node) []*dom.Node {
			return dom.NodesByAttribute(root, attr)
		}
	case len(args) > 0:
		tagname := args[0]
		args = args[1:]
		query = func(root *dom.Node) []*dom.Node {
			return dom.NodesByName(root, tagname)
		}
	default:
		return fmt.Errorf("%w: find requires a tag name or -attr name=value", cli.ErrUsage)
	}
	return forEachDocument(cc.In, args, func(doc *document) error {
		for _, n := range query(doc.root) {
			if cfg.Within != "" {
				if _, ok := dom.Ancestor(n, cfg.Within); !ok {
					continue
				}
			}
			prefix := ""
			if len(args) > 1 {
				prefix = doc.name + ": "
			}
			if _, err := fmt.Fprintln(cc.Out, prefix+oneLine(n)); err != nil {
				return err
			}
		}
		return nil
	})
}
