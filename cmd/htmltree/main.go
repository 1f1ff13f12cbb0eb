// Command htmltree parses HTML-like documents and shows, queries or
// re-renders their trees.
//
//	htmltree dump page.html
//	htmltree find -attr class=menu page.html
//	htmltree select "ul > li" page.html
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
