package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/htmltree/dom/domdbg"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDocument(cc.In, args, func(doc *document) error {
		if len(args) > 1 {
			fmt.Fprintln(cc.Out, color.New(color.Bold).Sprint(doc.name))
		}
		_, err := io.WriteString(cc.Out, domdbg.DumpWith(doc.root, coloredLabel))
		return err
	})
}

// coloredLabel labels nodes like domdbg.Label, coloring them by kind.
// Colors are off if color.NoColor is set.
func coloredLabel(n *dom.Node) string {
	switch p := n.Payload().(type) {
	case *dom.Tag:
		return color.CyanString("%s", p.String())
	case dom.Text:
		return color.YellowString("%q", string(p))
	case dom.Comment:
		return color.GreenString("<!--%s-->", string(p))
	}
	return domdbg.Label(n)
}

// oneLine labels a node together with an abbreviation of its text content.
func oneLine(n *dom.Node) string {
	text := strings.Join(strings.Fields(n.Text()), " ")
	if r := []rune(text); len(r) > 40 {
		text = string(r[:40]) + "…"
	}
	if text == "" {
		return coloredLabel(n)
	}
	return coloredLabel(n) + " " + color.YellowString("%q", text)
}
