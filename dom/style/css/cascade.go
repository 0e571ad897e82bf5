package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/stylecomp/dom/style"
	"github.com/npillmayer/stylecomp/dom/style/cssom"
	"github.com/npillmayer/stylecomp/dom/style/selector"
)

// MatchedDeclaration is a declaration of a rule matching an element,
// together with the cascade ordering key of the rule.
type MatchedDeclaration struct {
	Property    string
	Value       style.Property
	Important   bool
	Specificity selector.Specificity
	SourceOrder int
}

// less orders declarations by (importance, specificity, source order).
func (d *MatchedDeclaration) less(other *MatchedDeclaration) bool {
	if d.Important != other.Important {
		return !d.Important
	}
	if c := d.Specificity.Compare(other.Specificity); c != 0 {
		return c < 0
	}
	return d.SourceOrder < other.SourceOrder
}

// Collect gathers the declarations of matched rules, in order of the rule
// IDs given.
func Collect(ix *cssom.RuleIndex, matched []cssom.RuleID) []MatchedDeclaration {
	var decls []MatchedDeclaration
	for _, id := range matched {
		r := ix.Rule(id)
		for _, d := range r.Rule.Declarations {
			decls = append(decls, MatchedDeclaration{
				Property:    d.Property,
				Value:       d.Value,
				Important:   d.Important,
				Specificity: r.Specificity,
				SourceOrder: r.Rule.SourceOrder,
			})
		}
	}
	return decls
}

// Cascade computes the style of an element from the declarations matching
// it and the computed style of its parent. parent is nil for root elements.
// matched is re-ordered in place.
//
// Cascade never fails: unknown properties are carried through unchanged,
// unknown values are not validated.
func Cascade(matched []MatchedDeclaration, parent *style.ComputedStyle) *style.ComputedStyle {
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].less(&matched[j])
	})
	cs := style.NewComputedStyle()
	for i := range matched {
		d := &matched[i]
		v := d.Value
		if d.Important {
			v = v.MarkImportant()
		}
		cs.Cascaded[d.Property] = v
	}
	for _, key := range style.InheritedProperties() {
		if _, ok := cs.Cascaded[key]; !ok {
			cs.Cascaded[key] = inheritedValue(key, parent)
		}
	}
	for key, v := range cs.Cascaded {
		cs.Used[key] = usedValue(key, v, parent)
	}
	return cs
}

// usedValue resolves the CSS-wide keywords of a cascaded value.
func usedValue(key string, v style.Property, parent *style.ComputedStyle) style.Property {
	v = v.StripImportant()
	switch {
	case v.IsInherit():
		return inheritedValue(key, parent)
	case v.IsInitial():
		return style.InitialValue(key)
	case v.IsUnset():
		if style.IsInherited(key) {
			return inheritedValue(key, parent)
		}
		return style.InitialValue(key)
	}
	return v
}

// inheritedValue is the used value of the parent, or the initial value for
// roots.
func inheritedValue(key string, parent *style.ComputedStyle) style.Property {
	if parent == nil {
		return style.InitialValue(key)
	}
	return parent.Value(key)
}
