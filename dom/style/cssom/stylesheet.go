package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/stylecomp/dom/style"
	"github.com/npillmayer/stylecomp/dom/style/selector"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the rule index, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// RulesFromStyleSheet converts the rules of a style sheet into style rules,
// numbering them in source order starting at firstOrder. A rule with a
// selector list results in one style rule per selector, all sharing the
// source order of the original rule.
//
// Following CSS error handling, rules with a selector which cannot be parsed
// are dropped. The errors for dropped rules are returned as well.
func RulesFromStyleSheet(sheet StyleSheet, firstOrder int) ([]StyleRule, []error) {
	if sheet == nil || sheet.Empty() {
		return nil, nil
	}
	var rules []StyleRule
	var dropped []error
	for i, r := range sheet.Rules() {
		order := firstOrder + i
		sels, err := selector.ParseList(r.Selector())
		if err != nil {
			tracer().Infof("dropping rule %d with selector %q: %v", order, r.Selector(), err)
			dropped = append(dropped, err)
			continue
		}
		decls := declarationsOf(r)
		for _, sel := range sels {
			rules = append(rules, StyleRule{
				Selector:     strings.TrimSpace(sel.Text),
				Specificity:  sel.Specificity(),
				Declarations: decls,
				SourceOrder:  order,
			})
		}
	}
	tracer().Debugf("converted style sheet into %d style rules, %d dropped", len(rules), len(dropped))
	return rules, dropped
}

// declarationsOf collects the declarations of a rule, one per property key,
// in order of first appearance.
func declarationsOf(r Rule) []Declaration {
	keys := r.Properties()
	decls := make([]Declaration, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		decls = append(decls, Declaration{
			Property:  strings.ToLower(strings.TrimSpace(k)),
			Value:     style.Property(strings.TrimSpace(r.Value(k).String())),
			Important: r.IsImportant(k),
		})
	}
	return decls
}
