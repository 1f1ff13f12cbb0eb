package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/htmltree/dom"
	"github.com/npillmayer/htmltree/parser"
)

// document is a parsed input file.
type document struct {
	name string
	root *dom.Node
}

// forEachDocument parses every file in files (standard input if there are
// none) and calls fn for each of them, in order.
func forEachDocument(in io.Reader, files []string, fn func(doc *document) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := readDocument(in, file)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func readDocument(in io.Reader, file string) (*document, error) {
	r := in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	root, err := parser.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return &document{name: file, root: root}, nil
}
