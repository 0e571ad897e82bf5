package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stylecomp/dom/style"
	"github.com/npillmayer/stylecomp/dom/style/selector"
)

// Declaration is a single property declaration, e.g. "color: red !important".
type Declaration struct {
	Property  string
	Value     style.Property
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return fmt.Sprintf("%s: %s !important", d.Property, d.Value)
	}
	return fmt.Sprintf("%s: %s", d.Property, d.Value)
}

// StyleRule is a style rule with a single compound selector.
//
// If Specificity is zero, the specificity is computed from the selector when
// the rule is indexed. SourceOrder denotes the position of the rule in the
// cascade; later rules win over earlier ones of equal importance and
// specificity.
type StyleRule struct {
	Selector     string
	Specificity  selector.Specificity
	Declarations []Declaration
	SourceOrder  int
}

func (r StyleRule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector)
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(" ")
		b.WriteString(d.String())
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

// NewRule is a convenience constructor for a style rule. Specificity is
// left to be computed from the selector.
func NewRule(sel string, order int, decls ...Declaration) StyleRule {
	return StyleRule{Selector: sel, Declarations: decls, SourceOrder: order}
}

// Decl is a convenience constructor for a normal declaration.
func Decl(property string, value string) Declaration {
	return Declaration{Property: property, Value: style.Property(value)}
}

// ImportantDecl is a convenience constructor for an important declaration.
func ImportantDecl(property string, value string) Declaration {
	return Declaration{Property: property, Value: style.Property(value), Important: true}
}
