package selector

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecomp/dom"
	"golang.org/x/net/html"
)

const oracleHTML = `<html><head><title>t</title></head><body>
<h1 id="intro" class="lead" lang="en-GB">x</h1>
<ul data-role="nav"><li class="odd">1</li><li>2</li><li class="odd">3</li><li>4</li><li class="odd">5</li></ul>
<p class="lead first">a <span>s</span></p>
<p><a href="https://example.com/doc.pdf">d</a><a href="/local">l</a></p>
<ol><li>only</li></ol>
</body></html>`

var oracleSelectors = []string{
	"*", "li", "li.odd", "#intro", "h1#intro.lead", "[data-role]", `[data-role="nav"]`,
	"[class~=lead]", "[lang|=en]", `a[href^="https"]`, `a[href$=".pdf"]`, `a[href*="example"]`,
	"li:nth-child(2n+1)", "li:nth-child(-n+3)", "li:nth-last-child(2)", "li:nth-of-type(odd)",
	"li:first-child", "li:last-child", "li:only-child", "span:only-of-type", "li:not(.odd)",
	"p:first-of-type", "p:last-of-type", "a:nth-last-of-type(1)", "p.lead.first",
}

// TestAgainstCascadia cross-checks matching and specificity with package
// cascadia, which operates on the HTML parse tree directly.
func TestAgainstCascadia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.style")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	root, err := html.Parse(strings.NewReader(oracleHTML))
	if err != nil {
		t.Fatal(err)
	}
	doc := dom.FromHTML(root)
	ctx := &Context{Tree: doc.Tree, States: doc.States}
	for _, text := range oracleSelectors {
		oracle, err := cascadia.Parse(text)
		if err != nil {
			t.Fatalf("cascadia cannot parse %q: %v", text, err)
		}
		sel, err := Parse(text)
		if err != nil {
			t.Errorf("cannot parse %q: %v", text, err)
			continue
		}
		os := oracle.Specificity()
		if sel.Specificity() != (Specificity{uint32(os[0]), uint32(os[1]), uint32(os[2])}) {
			t.Errorf("specificity of %q: cascadia says %v, we say %v", text, os, sel.Specificity())
		}
		for id, n := range doc.Nodes {
			want := oracle.Match(n)
			if have := sel.Matches(dom.ElementID(id), ctx); have != want {
				t.Errorf("%q on <%s> (element %d): cascadia says %v, we say %v", text, n.Data, id, want, have)
			}
		}
	}
}
