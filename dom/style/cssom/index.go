package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/stylecomp/dom"
	"github.com/npillmayer/stylecomp/dom/style/selector"
)

// RuleID identifies a rule within a RuleIndex. It is the position of the
// rule in the list the index has been built from.
type RuleID int

// IndexedRule is a style rule together with its parsed selector.
type IndexedRule struct {
	Rule        StyleRule
	Selector    *selector.Selector
	Specificity selector.Specificity // effective specificity
}

// RuleIndex is an immutable index of style rules. It is safe for concurrent
// use.
type RuleIndex struct {
	rules     []IndexedRule
	byID      map[string][]RuleID // keys are lower case
	byClass   map[string][]RuleID
	byTag     map[string][]RuleID
	universal []RuleID
}

// BuildRuleIndex parses the selectors of all rules and sorts the rules into
// buckets. Each rule is put into exactly one bucket, chosen by the most
// restrictive component of its selector: id, else class, else tag, else the
// universal bucket.
//
// If any selector is malformed, BuildRuleIndex returns an error matching
// selector.ErrInvalidSelector (or selector.ErrInvalidAnB).
func BuildRuleIndex(rules []StyleRule) (*RuleIndex, error) {
	ix := &RuleIndex{
		rules:   make([]IndexedRule, len(rules)),
		byID:    make(map[string][]RuleID),
		byClass: make(map[string][]RuleID),
		byTag:   make(map[string][]RuleID),
	}
	for i, r := range rules {
		sel, err := selector.Parse(r.Selector)
		if err != nil {
			tracer().Errorf("rule %d: %v", i, err)
			return nil, fmt.Errorf("rule %d (source order %d): %w", i, r.SourceOrder, err)
		}
		spec := r.Specificity
		if spec.IsZero() {
			spec = sel.Specificity()
		}
		ix.rules[i] = IndexedRule{Rule: r, Selector: sel, Specificity: spec}
		id := RuleID(i)
		switch kind, name := sel.Key(); kind {
		case selector.KindID:
			key := strings.ToLower(name)
			ix.byID[key] = append(ix.byID[key], id)
		case selector.KindClass:
			ix.byClass[name] = append(ix.byClass[name], id)
		case selector.KindType:
			ix.byTag[name] = append(ix.byTag[name], id)
		default:
			ix.universal = append(ix.universal, id)
		}
	}
	tracer().Debugf("rule index: %d rules, %d id buckets, %d class buckets, %d tag buckets, %d universal",
		len(rules), len(ix.byID), len(ix.byClass), len(ix.byTag), len(ix.universal))
	return ix, nil
}

// Len returns the number of rules in the index.
func (ix *RuleIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.rules)
}

// Rule returns an indexed rule, given its ID.
func (ix *RuleIndex) Rule(id RuleID) *IndexedRule {
	return &ix.rules[id]
}

// Candidates returns the IDs of all rules which may match an element, in
// ascending order. Every rule matching the element is contained.
func (ix *RuleIndex) Candidates(e *dom.ElementContext) []RuleID {
	if ix == nil || e == nil {
		return nil
	}
	var ids []RuleID
	if e.IDAttr != "" {
		ids = append(ids, ix.byID[strings.ToLower(e.IDAttr)]...)
	}
	for _, c := range e.Classes {
		ids = append(ids, ix.byClass[c]...)
	}
	ids = append(ids, ix.byTag[e.Tag]...)
	ids = append(ids, ix.universal...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	// buckets are disjoint, but class lists of elements built outside of a
	// dom.Tree may contain duplicates
	out := ids[:0]
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			out = append(out, id)
		}
	}
	return out
}

// Match returns the IDs of all rules matching element e, in ascending order.
func (ix *RuleIndex) Match(e dom.ElementID, ctx *selector.Context) []RuleID {
	el := ctx.Tree.Element(e)
	candidates := ix.Candidates(el)
	matched := candidates[:0]
	for _, id := range candidates {
		if ix.rules[id].Selector.Matches(e, ctx) {
			matched = append(matched, id)
		}
	}
	return matched
}
