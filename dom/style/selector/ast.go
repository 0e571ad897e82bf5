package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

// Kind is the variant tag of a simple selector.
type Kind uint8

// Kinds of simple selectors.
const (
	KindUniversal   Kind = iota // *
	KindType                    // tag
	KindClass                   // .class
	KindID                      // #id
	KindAttribute               // [attr op value]
	KindPseudoClass             // :pseudo or :pseudo(args)
)

// AttrOp is the operator of an attribute selector.
type AttrOp uint8

// Attribute selector operators.
const (
	AttrExists    AttrOp = iota // [a]
	AttrEquals                  // [a=v]
	AttrIncludes                // [a~=v]
	AttrDash                    // [a|=v]
	AttrPrefix                  // [a^=v]
	AttrSuffix                  // [a$=v]
	AttrSubstring               // [a*=v]
)

var attrOpText = [...]string{"", "=", "~=", "|=", "^=", "$=", "*="}

// Pseudo identifies a pseudo-class.
type Pseudo uint8

// Supported pseudo-classes.
const (
	PseudoNone Pseudo = iota
	PseudoRoot
	PseudoEmpty
	PseudoFirstChild
	PseudoLastChild
	PseudoOnlyChild
	PseudoFirstOfType
	PseudoLastOfType
	PseudoOnlyOfType
	PseudoNthChild
	PseudoNthLastChild
	PseudoNthOfType
	PseudoNthLastOfType
	PseudoNot
	PseudoIs
	PseudoWhere
	PseudoHover
	PseudoActive
	PseudoFocus
	PseudoFocusVisible
	PseudoFocusWithin
	PseudoLink
	PseudoVisited
	PseudoAnyLink
	PseudoChecked
	PseudoDisabled
	PseudoEnabled
	PseudoRequired
	PseudoOptional
	PseudoValid
	PseudoInvalid
	PseudoReadOnly
	PseudoReadWrite
	PseudoPlaceholderShown
	PseudoIndeterminate
	PseudoDefault
	PseudoTarget
	PseudoScope
	PseudoLang
	PseudoDir
)

// pseudoClasses maps names of pseudo-classes without arguments.
var pseudoClasses = map[string]Pseudo{
	"root":              PseudoRoot,
	"empty":             PseudoEmpty,
	"first-child":       PseudoFirstChild,
	"last-child":        PseudoLastChild,
	"only-child":        PseudoOnlyChild,
	"first-of-type":     PseudoFirstOfType,
	"last-of-type":      PseudoLastOfType,
	"only-of-type":      PseudoOnlyOfType,
	"hover":             PseudoHover,
	"active":            PseudoActive,
	"focus":             PseudoFocus,
	"focus-visible":     PseudoFocusVisible,
	"focus-within":      PseudoFocusWithin,
	"link":              PseudoLink,
	"visited":           PseudoVisited,
	"any-link":          PseudoAnyLink,
	"checked":           PseudoChecked,
	"disabled":          PseudoDisabled,
	"enabled":           PseudoEnabled,
	"required":          PseudoRequired,
	"optional":          PseudoOptional,
	"valid":             PseudoValid,
	"invalid":           PseudoInvalid,
	"read-only":         PseudoReadOnly,
	"read-write":        PseudoReadWrite,
	"placeholder-shown": PseudoPlaceholderShown,
	"indeterminate":     PseudoIndeterminate,
	"default":           PseudoDefault,
	"target":            PseudoTarget,
	"scope":             PseudoScope,
}

// functionalPseudoClasses maps names of pseudo-classes with arguments.
var functionalPseudoClasses = map[string]Pseudo{
	"nth-child":        PseudoNthChild,
	"nth-last-child":   PseudoNthLastChild,
	"nth-of-type":      PseudoNthOfType,
	"nth-last-of-type": PseudoNthLastOfType,
	"not":              PseudoNot,
	"is":               PseudoIs,
	"matches":          PseudoIs,
	"where":            PseudoWhere,
	"lang":             PseudoLang,
	"dir":              PseudoDir,
}

// pseudoElements lists the known pseudo-elements. The boolean tells if the
// legacy single-colon syntax is allowed.
var pseudoElements = map[string]bool{
	"before":       true,
	"after":        true,
	"first-line":   true,
	"first-letter": true,
	"marker":       false,
	"selection":    false,
	"placeholder":  false,
	"backdrop":     false,
}

// Simple is a simple selector. It is a tagged variant: which fields are
// meaningful depends on Kind and, for pseudo-classes, on Pseudo.
type Simple struct {
	Kind   Kind
	Name   string      // tag, class, id, attribute or pseudo-class name
	Op     AttrOp      // KindAttribute
	Value  string      // attribute value; argument of :lang() and :dir()
	Fold   bool        // attribute value compares case-insensitively
	Pseudo Pseudo      // KindPseudoClass
	Nth    AnB         // :nth-*()
	Args   []*Compound // :not(), :is(), :where()
}

func (sel *Simple) String() string {
	switch sel.Kind {
	case KindUniversal:
		return "*"
	case KindType:
		return sel.Name
	case KindClass:
		return "." + sel.Name
	case KindID:
		return "#" + sel.Name
	case KindAttribute:
		if sel.Op == AttrExists {
			return "[" + sel.Name + "]"
		}
		s := "[" + sel.Name + attrOpText[sel.Op] + strconv.Quote(sel.Value)
		if sel.Fold {
			s += " i"
		}
		return s + "]"
	}
	switch sel.Pseudo {
	case PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType:
		return ":" + sel.Name + "(" + sel.Nth.String() + ")"
	case PseudoNot, PseudoIs, PseudoWhere:
		args := make([]string, len(sel.Args))
		for i, a := range sel.Args {
			args[i] = a.String()
		}
		return ":" + sel.Name + "(" + strings.Join(args, ", ") + ")"
	case PseudoLang, PseudoDir:
		return ":" + sel.Name + "(" + sel.Value + ")"
	}
	return ":" + sel.Name
}

// Compound is a sequence of simple selectors, optionally followed by a
// pseudo-element.
type Compound struct {
	Parts         []Simple
	PseudoElement string // name of the pseudo-element, without colons
}

func (c *Compound) String() string {
	var b strings.Builder
	for i := range c.Parts {
		b.WriteString(c.Parts[i].String())
	}
	if c.PseudoElement != "" {
		b.WriteString("::")
		b.WriteString(c.PseudoElement)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Selector is a parsed compound selector.
type Selector struct {
	Compound
	Text string // source text
	spec Specificity
}

// Specificity returns the specificity of the selector.
func (s *Selector) Specificity() Specificity {
	return s.spec
}

// Key returns the most restrictive component of a selector usable for
// indexing: an id, else a class, else a type. kind is KindUniversal if the
// selector has none of them. Components nested in :not(), :is() or :where()
// are not considered.
func (s *Selector) Key() (kind Kind, name string) {
	kind = KindUniversal
	for i := range s.Parts {
		p := &s.Parts[i]
		switch p.Kind {
		case KindID:
			return KindID, p.Name
		case KindClass:
			if kind != KindClass {
				kind, name = KindClass, p.Name
			}
		case KindType:
			if kind == KindUniversal {
				kind, name = KindType, p.Name
			}
		}
	}
	return kind, name
}
