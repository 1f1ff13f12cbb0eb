/*
Package domdbg implements helpers to debug a document tree.

Dump prints a tree as indented text, ToGraphViz writes it as a GraphViz
(DOT) diagram. Attributes and inline styles of element nodes are drawn as
tables attached to their node.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/htmltree/dom"
	"github.com/xlab/treeprint"
)

// Dump returns an indented text representation of a (sub-)tree.
//
//     <root>
//     └── <ul class="menu">
//         ├── <li>
//         │   └── "one"
//         └── <!-- todo -->
func Dump(n *dom.Node) string {
	return DumpWith(n, Label)
}

// DumpWith is like Dump, but lets clients decide how a node is labeled.
func DumpWith(n *dom.Node, label func(*dom.Node) string) string {
	if n == nil {
		return "<nil>\n"
	}
	t := treeprint.NewWithRoot(label(n))
	dumpChildren(t, n, label)
	return t.String()
}

func dumpChildren(branch treeprint.Tree, n *dom.Node, label func(*dom.Node) string) {
	for _, ch := range n.Children() {
		if ch.ChildCount() == 0 {
			branch.AddNode(label(ch))
			continue
		}
		dumpChildren(branch.AddBranch(label(ch)), ch, label)
	}
}

// Label is the default label of a node: tags as markup, text quoted,
// comments in comment brackets.
func Label(n *dom.Node) string {
	switch p := n.Payload().(type) {
	case *dom.Tag:
		return p.String()
	case dom.Text:
		return fmt.Sprintf("%q", string(p))
	case dom.Comment:
		return "<!--" + string(p) + "-->"
	}
	return "?"
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname    string
	NodeTmpl    *template.Template
	EdgeTmpl    *template.Template
	TableTmpl   *template.Template
	TableEdge   *template.Template
	TableTable  *template.Template
	WithStyles  bool
	WithAttribs bool
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree and a Writer.
//
// Attributes and inline style declarations of elements are drawn as
// tables, linked to the element they belong to.
func ToGraphViz(doc *dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", WithStyles: true, WithAttribs: true}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.TableTmpl = template.Must(template.New("table").Parse(tableTmpl))
	gparams.TableEdge = template.Must(template.New("tableedge").Parse(tableEdgeTmpl))
	gparams.TableTable = template.Must(template.New("tabletable").Parse(tableTableTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if doc != nil {
		dict := make(map[*dom.Node]string, 256)
		if err = nodes(doc, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a tree node and a testing.T, it will
// create a GraphViz image of the tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(doc *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(doc, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
	Kind string // "tag", "text" or "comment"
	Text string
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n *dom.Node, dict map[*dom.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func domNode(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	nd := &node{N: n, Name: nodeName(n, dict)}
	switch p := n.Payload().(type) {
	case *dom.Tag:
		nd.Kind, nd.Text = "tag", p.Name
	case dom.Text:
		nd.Kind, nd.Text = "text", string(p)
	case dom.Comment:
		nd.Kind, nd.Text = "comment", string(p)
	}
	if err := gparams.NodeTmpl.Execute(w, nd); err != nil {
		return err
	}
	return domTables(n, nd.Name, w, gparams)
}

// table is a titled list of key/value rows.
type table struct {
	ID    string
	Title string
	Rows  []row
}

type row struct {
	Key, Value string
}

// domTables draws the attributes and the inline style of an element as a
// chain of tables hanging off the element's node.
func domTables(n *dom.Node, name string, w io.Writer, gparams *graphParamsType) error {
	tag, ok := n.Tag()
	if !ok || !tag.HasAttributes() {
		return nil
	}
	var tables []table
	if gparams.WithAttribs {
		t := table{ID: name + "_attr", Title: "attributes"}
		for _, k := range tag.AttrNames() {
			t.Rows = append(t.Rows, row{k, tag.Attributes[k]})
		}
		tables = append(tables, t)
	}
	if gparams.WithStyles {
		if decls, err := tag.Style(); err == nil && len(decls) > 0 {
			t := table{ID: name + "_style", Title: "style"}
			for _, d := range decls {
				v := d.Value
				if d.Important {
					v += " !important"
				}
				t.Rows = append(t.Rows, row{d.Property, v})
			}
			tables = append(tables, t)
		}
	}
	var prev *table
	for i := range tables {
		t := &tables[i]
		if err := gparams.TableTmpl.Execute(w, t); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.TableEdge.Execute(w, struct{ Name, ID string }{name, t.ID})
		} else {
			err = gparams.TableTable.Execute(w, []string{prev.ID, t.ID})
		}
		if err != nil {
			return err
		}
		prev = t
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *dom.Node, n2 *dom.Node, w io.Writer, dict map[*dom.Node]string,
	gparams *graphParamsType) error {
	//
	e := edge{node{N: n1, Name: dict[n1]}, node{N: n2, Name: dict[n2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

func shortText(nd *node) string {
	text := nd.Text
	if r := []rune(text); len(r) > 10 {
		text = string(r[:10]) + "..."
	}
	s := "\"\\\"" + strings.ReplaceAll(text, `"`, `\"`) + "\\\"\""
	s = strings.ReplaceAll(s, "\n", `\\n`)
	s = strings.ReplaceAll(s, "\t", `\\t`)
	s = strings.ReplaceAll(s, " ", "␣")
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .Kind "text" }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .Kind "comment" }}
{{ .Name }}	[ label={{ shortstring . }} shape=note style=filled fillcolor=honeydew2 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Text }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const tableTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Title }}</font></td></tr>
      {{ range .Rows }}
      <tr><td align="right">{{ .Key | html }}:</td><td>{{ .Value | html }}</td></tr>
      {{ else }}
      <tr><td colspan="2">none</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const tableEdgeTmpl = `{{ .Name }} -> {{ .ID }} [dir=none weight=1 style="dashed"] ;
`

const tableTableTmpl = `{{ index . 0 }} -> {{ index . 1 }} [dir=none weight=1 style="dashed"] ;
`
