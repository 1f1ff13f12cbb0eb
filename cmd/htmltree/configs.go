package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='output with color'"`
	NoColor bool   `cli:"name=nocolor desc='output without color'"`
	Trace   string `cli:"name=trace desc='trace level: error, info or debug'"`

	Main *cli.Command
}

// setup installs tracing and decides on colored output, before any
// sub-command runs.
func (cfg *MainConfig) setup(w io.Writer) error {
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: must specify at most one of -color -nocolor", cli.ErrUsage)
	}
	if cfg.Trace != "" {
		level := strings.ToLower(cfg.Trace)
		if level != "error" && level != "info" && level != "debug" {
			return fmt.Errorf("%w: unknown trace level %q", cli.ErrUsage, cfg.Trace)
		}
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
		tracing.Select("htmltree").SetTraceLevel(tracing.TraceLevelFromString(level))
	}
	color.NoColor = !cfg.useColor(w)
	return nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.Color:
		return true
	case cfg.NoColor:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type FindConfig struct {
	*MainConfig

	Attr   string `cli:"name=attr desc='find elements with attribute name=value'"`
	Within string `cli:"name=within desc='only elements inside an element with this tag name'"`
	Find   *cli.Command
}

// attribute splits the -attr option into name and value.
func (cfg *FindConfig) attribute() (name, value string, err error) {
	name, value, ok := strings.Cut(cfg.Attr, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: -attr expects name=value, got %q", cli.ErrUsage, cfg.Attr)
	}
	return name, value, nil
}

type SelectConfig struct {
	*MainConfig

	First  bool `cli:"name=first desc='print the first match only'"`
	Select *cli.Command
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type TextConfig struct {
	*MainConfig

	Text *cli.Command
}

type DotConfig struct {
	*MainConfig

	Dot *cli.Command
}
