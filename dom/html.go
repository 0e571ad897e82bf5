package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document binds an element tree to the HTML parse tree it has been built
// from.
type Document struct {
	Tree   *Tree
	States StateMap     // states derived from boolean attributes
	Nodes  []*html.Node // HTML element node for every ElementID
}

// FromHTML builds an element tree from the element nodes of an HTML parse
// tree. Elements are numbered in document order, thus every parent has a
// lower ID than its children. Non-element nodes are skipped.
//
// The returned state map is seeded from the attributes disabled, checked,
// required and readonly.
func FromHTML(root *html.Node) *Document {
	doc := &Document{Tree: NewTree(), States: make(StateMap)}
	if root == nil {
		return doc
	}
	type frame struct {
		n      *html.Node
		parent ElementID
	}
	stack := []frame{{root, NoElement}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := f.parent
		if f.n.Type == html.ElementNode {
			parent = doc.Tree.Add(contextFromHTML(f.n, f.parent))
			doc.Nodes = append(doc.Nodes, f.n)
			if s := statesFromHTML(f.n); s != 0 {
				doc.States.Set(parent, s)
			}
		}
		// push children in reverse, so the first child is popped first
		for c := f.n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, frame{c, parent})
		}
	}
	tracer().Debugf("built element tree from HTML: %d elements", doc.Tree.Len())
	return doc
}

func contextFromHTML(n *html.Node, parent ElementID) ElementContext {
	e := ElementContext{Tag: n.Data, Parent: parent}
	if len(n.Attr) > 0 {
		e.Attrs = make(map[string]string, len(n.Attr))
	}
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		key := strings.ToLower(a.Key)
		e.Attrs[key] = a.Val
		switch key {
		case "id":
			e.IDAttr = a.Val
		case "class":
			e.Classes = strings.Fields(a.Val)
		}
	}
	return e
}

func statesFromHTML(n *html.Node) StateBits {
	var s StateBits
	for _, a := range n.Attr {
		switch a.Key {
		case "disabled":
			s |= Disabled
		case "checked":
			s |= Checked
		case "required":
			s |= Required
		case "readonly":
			s |= ReadOnly
		}
	}
	if n.DataAtom == atom.Input || n.DataAtom == atom.Textarea {
		if placeholderShown(n) {
			s |= PlaceholderShown
		}
	}
	return s
}

func placeholderShown(n *html.Node) bool {
	var hasPlaceholder, hasValue bool
	for _, a := range n.Attr {
		switch a.Key {
		case "placeholder":
			hasPlaceholder = true
		case "value":
			hasValue = a.Val != ""
		}
	}
	if n.DataAtom == atom.Textarea && n.FirstChild != nil {
		hasValue = true
	}
	return hasPlaceholder && !hasValue
}
