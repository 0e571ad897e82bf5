package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/stylecomp/dom"
	"github.com/npillmayer/stylecomp/dom/style/cssom"
	"github.com/npillmayer/stylecomp/dom/styledtree"
)

func styledDocument(t *testing.T) (*dom.Tree, styledtree.StyleMap) {
	tr := dom.NewTree()
	body := tr.Add(dom.ElementContext{Tag: "body", Parent: dom.NoElement})
	tr.Add(dom.ElementContext{Tag: "p", Classes: []string{"intro"}, Parent: body})
	tr.Add(dom.ElementContext{Tag: "div", IDAttr: "main", Parent: body})
	ix, err := cssom.BuildRuleIndex([]cssom.StyleRule{
		cssom.NewRule("body", 0, cssom.Decl("color", "navy")),
		cssom.NewRule("#main", 1, cssom.Decl("display", "block")),
	})
	if err != nil {
		t.Fatal(err)
	}
	styles, err := styledtree.Resolve(tr, ix)
	if err != nil {
		t.Fatal(err)
	}
	return tr, styles
}

func TestGraphViz(t *testing.T) {
	tr, styles := styledDocument(t)
	var b strings.Builder
	ToGraphViz(tr, styles, &b, nil)
	dot := b.String()
	for _, s := range []string{
		"digraph g {",
		`node00000	[ label="body"`,
		"node00000 -> node00002",
		"stnode00002",
		"<td>block</td>",
		"<td>navy</td>",
	} {
		if !strings.Contains(dot, s) {
			t.Errorf("expected DOT output to contain %q", s)
		}
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected DOT output to be closed")
	}
}

func TestPrint(t *testing.T) {
	tr, styles := styledDocument(t)
	out := Print(tr, styles)
	t.Logf("\n%s", out)
	if !strings.Contains(out, "p.intro") || !strings.Contains(out, "div#main") {
		t.Errorf("expected all elements to be printed")
	}
	if !strings.Contains(out, "color: navy") {
		t.Errorf("expected inherited color to be printed")
	}
	bad := dom.NewTree()
	bad.Add(dom.ElementContext{Tag: "x", Parent: 5})
	if out := Print(bad, nil); !strings.Contains(out, "inconsistent") {
		t.Errorf("expected inconsistent tree to be reported, is %q", out)
	}
}
