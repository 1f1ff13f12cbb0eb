package main

import (
	"fmt"

	"github.com/npillmayer/htmltree/dom"
	"github.com/scott-cotton/cli"
)

func selectNodes(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires one argument, a CSS selector", cli.ErrUsage)
	}
	selector := args[0]
	args = args[1:]
	return forEachDocument(cc.In, args, func(doc *document) error {
		var matches []*dom.Node
		if cfg.First {
			n, ok, err := dom.SelectFirst(doc.root, selector)
			if err != nil {
				return fmt.Errorf("%w: %w", cli.ErrUsage, err)
			}
			if ok {
				matches = append(matches, n)
			}
		} else if matches, err = dom.Select(doc.root, selector); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, n := range matches {
			if err := dom.Render(cc.Out, n); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cc.Out); err != nil {
				return err
			}
		}
		return nil
	})
}
