package main

import (
	"fmt"

	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/htmltree/dom/domdbg"
	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDocument(cc.In, args, func(doc *document) error {
		if err := dom.Render(cc.Out, doc.root); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cc.Out)
		return err
	})
}

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDocument(cc.In, args, func(doc *document) error {
		_, err := fmt.Fprintln(cc.Out, doc.root.Text())
		return err
	})
}

func dot(cfg *DotConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dot.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDocument(cc.In, args, func(doc *document) error {
		return domdbg.ToGraphViz(doc.root, cc.Out)
	})
}
