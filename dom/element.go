package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// ElementID identifies an element within its tree. IDs are dense, starting
// at 0, in the order elements have been added to the tree.
type ElementID int

// NoElement is the parent of root elements.
const NoElement ElementID = -1

// ElementContext is everything the styling engine knows about an element.
type ElementContext struct {
	ID      ElementID         // set by Tree.Add
	Tag     string            // tag name, lower case
	IDAttr  string            // value of the id attribute, empty if not present
	Classes []string          // class names, without duplicates
	Attrs   map[string]string // attributes by lower case name
	Parent  ElementID         // NoElement for roots
}

// HasClass is a predicate: does the element carry class c? Class names are
// compared case-sensitively.
func (e *ElementContext) HasClass(c string) bool {
	for _, cls := range e.Classes {
		if cls == c {
			return true
		}
	}
	return false
}

// Attr returns the value of an attribute, given its name. Attributes "id"
// and "class" are synthesized from IDAttr and Classes if they are missing
// from Attrs.
func (e *ElementContext) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	if v, ok := e.Attrs[name]; ok {
		return v, true
	}
	switch name {
	case "id":
		if e.IDAttr != "" {
			return e.IDAttr, true
		}
	case "class":
		if len(e.Classes) > 0 {
			return strings.Join(e.Classes, " "), true
		}
	}
	return "", false
}

// HasAttr is a predicate: is attribute name present?
func (e *ElementContext) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

func (e *ElementContext) String() string {
	var b strings.Builder
	b.WriteString(e.Tag)
	if e.IDAttr != "" {
		b.WriteByte('#')
		b.WriteString(e.IDAttr)
	}
	for _, c := range e.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

// normalize lower-cases the tag and attribute names and removes duplicate
// class names. The receiver is a copy owned by the tree.
func (e *ElementContext) normalize() {
	e.Tag = strings.ToLower(e.Tag)
	if len(e.Classes) > 0 {
		classes := make([]string, 0, len(e.Classes))
		for _, c := range e.Classes {
			if c == "" {
				continue
			}
			dup := false
			for _, d := range classes {
				if d == c {
					dup = true
					break
				}
			}
			if !dup {
				classes = append(classes, c)
			}
		}
		e.Classes = classes
	}
	if len(e.Attrs) > 0 {
		attrs := make(map[string]string, len(e.Attrs))
		for k, v := range e.Attrs {
			attrs[strings.ToLower(k)] = v
		}
		e.Attrs = attrs
	}
}
