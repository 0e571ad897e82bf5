package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C].
type Specificity [3]uint32

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

// Compare compares s and other lexicographically, returning -1, 0 or +1.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// IsZero is a predicate: is s = (0,0,0)?
func (s Specificity) IsZero() bool {
	return s == Specificity{}
}

func (s Specificity) add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// Specificity of a simple selector.
func (sel *Simple) Specificity() Specificity {
	switch sel.Kind {
	case KindUniversal:
		return Specificity{}
	case KindType:
		return Specificity{0, 0, 1}
	case KindID:
		return Specificity{1, 0, 0}
	case KindClass, KindAttribute:
		return Specificity{0, 1, 0}
	}
	switch sel.Pseudo {
	case PseudoWhere:
		return Specificity{}
	case PseudoNot, PseudoIs:
		var best Specificity
		for _, arg := range sel.Args {
			if sp := arg.Specificity(); best.Less(sp) {
				best = sp
			}
		}
		return best
	}
	return Specificity{0, 1, 0}
}

// Specificity of a compound selector: the sum of its parts, plus (0,0,1) for a
// pseudo-element.
func (c *Compound) Specificity() Specificity {
	var sp Specificity
	for i := range c.Parts {
		sp = sp.add(c.Parts[i].Specificity())
	}
	if c.PseudoElement != "" {
		sp = sp.add(Specificity{0, 0, 1})
	}
	return sp
}
