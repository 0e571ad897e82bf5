package stylecomp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"

	"github.com/npillmayer/stylecomp/dom"
	"github.com/npillmayer/stylecomp/dom/style/cssom"
	"github.com/npillmayer/stylecomp/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// LoadDocument parses an HTML document and the style sheets embedded in
// its <style> elements. It returns the element tree, together with states
// derived from element attributes, and the style rules in source order.
//
// Rules with selectors which cannot be parsed are dropped, as are style
// elements which cannot be parsed.
func LoadDocument(r io.Reader) (*dom.Document, []cssom.StyleRule, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	doc := dom.FromHTML(root)
	var rules []cssom.StyleRule
	order := 0
	for _, sheet := range douceuradapter.ExtractStyleElements(root) {
		rs, dropped := cssom.RulesFromStyleSheet(sheet, order)
		for _, err := range dropped {
			tracer().Infof("style rule dropped: %v", err)
		}
		rules = append(rules, rs...)
		order += len(sheet.Rules())
	}
	tracer().Debugf("loaded document with %d elements and %d style rules", doc.Tree.Len(), len(rules))
	return doc, rules, nil
}
