/*
Package domdbg implements helpers to debug a styled element tree.

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
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/stylecomp/dom"
	"github.com/npillmayer/stylecomp/dom/style"
	"github.com/npillmayer/stylecomp/dom/styledtree"
	tp "github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	Keys      []string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
	SedgeTmpl *template.Template
}

// DefaultKeys are the style properties included in diagrams if clients
// do not select any.
var DefaultKeys = []string{
	"display",
	"color",
	"background-color",
	"font-size",
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the tree, a Writer, and
// optionally the styles of the tree's elements together with a list of
// property keys. The diagram will include the used values of all listed
// properties.
//
// If the client does not provide a list of keys, DefaultKeys will be used.
//
func ToGraphViz(t *dom.Tree, styles styledtree.StyleMap, w io.Writer, keys []string) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	gparams.SedgeTmpl = template.Must(template.New("sedge").Parse(styleEdgeTmpl))
	gparams.Keys = keys
	if keys == nil {
		gparams.Keys = DefaultKeys
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	if t.Validate() == nil {
		var stack []dom.ElementID
		roots := t.Roots()
		for i := len(roots) - 1; i >= 0; i-- {
			stack = append(stack, roots[i])
		}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			domNode(t, id, styles.Style(id), w, &gparams)
			ch := t.Children(id)
			for i := len(ch) - 1; i >= 0; i-- {
				domEdge(id, ch[i], w, &gparams)
				stack = append(stack, ch[i])
			}
		}
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given an element tree with styles and a
// testing.T, it will create a Graphiviz image of the tree and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(tree *dom.Tree, styles styledtree.StyleMap, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(tree, styles, tmpfile, nil)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing DOM tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// Print returns a textual tree of the elements of t, each followed by its
// computed style (if styles is non-nil).
func Print(t *dom.Tree, styles styledtree.StyleMap) string {
	printer := tp.New()
	if err := t.Validate(); err != nil {
		printer.AddNode(err.Error())
		return printer.String()
	}
	var add func(tp.Tree, dom.ElementID)
	add = func(branch tp.Tree, id dom.ElementID) {
		label := t.Element(id).String()
		if cs := styles.Style(id); cs != nil {
			label += " " + cs.String()
		}
		ch := t.Children(id)
		if len(ch) == 0 {
			branch.AddNode(label)
			return
		}
		b := branch.AddBranch(label)
		for _, c := range ch {
			add(b, c)
		}
	}
	for _, r := range t.Roots() {
		add(printer, r)
	}
	return printer.String()
}

type node struct {
	Name  string
	Label string
}

func nodeName(id dom.ElementID) string {
	return fmt.Sprintf("node%05d", id)
}

type styleRecord struct {
	Name       string
	Properties []style.KeyValue
}

func domNode(t *dom.Tree, id dom.ElementID, cs *style.ComputedStyle, w io.Writer, gparams *graphParamsType) {
	n := node{Name: nodeName(id), Label: shortLabel(t.Element(id))}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		panic(err)
	}
	if cs == nil {
		return
	}
	rec := styleRecord{Name: "st" + n.Name}
	for _, key := range gparams.Keys {
		if v, ok := cs.Get(key); ok {
			rec.Properties = append(rec.Properties, style.KeyValue{Key: key, Value: v})
		}
	}
	if err := gparams.StyleTmpl.Execute(w, rec); err != nil {
		panic(err)
	}
	if err := gparams.SedgeTmpl.Execute(w, edge{n.Name, rec.Name}); err != nil {
		panic(err)
	}
}

type edge struct {
	From, To string
}

func domEdge(parent, child dom.ElementID, w io.Writer, gparams *graphParamsType) {
	e := edge{nodeName(parent), nodeName(child)}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortLabel(e *dom.ElementContext) string {
	s := e.String()
	if len(s) > 24 {
		s = s[:24] + "…"
	}
	return strings.Replace(s, `"`, `\"`, -1)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label="{{ .Label }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const stylesTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const styleEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`
