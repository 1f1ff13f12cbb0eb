package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "htmltree").
		WithSynopsis("htmltree [opts] command [opts] [files]").
		WithDescription("htmltree parses HTML-like documents into trees and inspects them.\n" +
			"Files default to standard input, '-' reads standard input explicitly.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return htmltreeMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			FindCommand(cfg),
			SelectCommand(cfg),
			RenderCommand(cfg),
			TextCommand(cfg),
			DotCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("print the document tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-attr name=value] [-within tagname] [tagname] [files]").
		WithDescription("list elements by tag name or by attribute, in document order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s").
		WithSynopsis("select [-first] <selector> [files]").
		WithDescription("print the elements matching a CSS selector as markup").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectNodes(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [files]").
		WithDescription("re-render documents as markup").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func TextCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TextConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Text, "text").
		WithAliases("t").
		WithSynopsis("text [files]").
		WithDescription("print the text content of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return text(cfg, cc, args)
		})
}

func DotCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DotConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dot, "dot").
		WithSynopsis("dot [files]").
		WithDescription("print document trees as GraphViz diagrams").
		WithRun(func(cc *cli.Context, args []string) error {
			return dot(cfg, cc, args)
		})
}
