package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/stylecomp/dom"
	"github.com/npillmayer/stylecomp/dom/style"
	"github.com/npillmayer/stylecomp/dom/style/css"
	"github.com/npillmayer/stylecomp/dom/style/cssom"
	"github.com/npillmayer/stylecomp/dom/style/selector"
	"github.com/npillmayer/stylecomp/tree"
)

// StyleMap holds the computed style for every element of a tree, indexed by
// element ID.
type StyleMap []*style.ComputedStyle

// Style returns the computed style of an element, or nil if id is out of
// range.
func (m StyleMap) Style(id dom.ElementID) *style.ComputedStyle {
	if id < 0 || int(id) >= len(m) {
		return nil
	}
	return m[id]
}

// Equal is a predicate: do both maps hold equal styles for all elements?
func (m StyleMap) Equal(other StyleMap) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if !m[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Option configures style resolution.
type Option func(*options)

type options struct {
	states dom.StateMap
	tree.Options
}

// WithStates sets the dynamic element states the selector matcher reads.
// Without it, no element is hovered, focused, checked, etc.
func WithStates(states dom.StateMap) Option {
	return func(o *options) {
		o.states = states
	}
}

// WithMaxWorkers sets a ceiling on the number of concurrent workers.
// n ≤ 0 means no ceiling.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.MaxWorkers = n
	}
}

// cascade is called for every element; tests may replace it.
var cascade = css.Cascade

// Resolve computes the styles of all elements of t, given a rule index.
// It fails with an error matching dom.ErrInconsistentTree if t does not
// validate, and with an error matching tree.ErrWorkerFailure if styling an
// element panics. No partial results are returned.
//
// Neither the tree, the index nor the states are modified.
func Resolve(t *dom.Tree, ix *cssom.RuleIndex, opts ...Option) (StyleMap, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if t == nil || t.Len() == 0 {
		return StyleMap{}, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if ix == nil {
		ix, _ = cssom.BuildRuleIndex(nil)
	}
	workers := o.Workers()
	levels := t.Levels()
	tracer().Debugf("resolving styles of %d elements in %d levels with %d workers, %d rules",
		t.Len(), len(levels), workers, ix.Len())
	styles := make(StyleMap, t.Len())
	ctx := &selector.Context{Tree: t, States: o.states}
	err := tree.WalkLevels(levels, workers, func(id dom.ElementID) error {
		var parent *style.ComputedStyle
		if p := t.Parent(id); p != dom.NoElement {
			parent = styles[p]
		}
		matched := ix.Match(id, ctx)
		styles[id] = cascade(css.Collect(ix, matched), parent)
		return nil
	})
	if err != nil {
		tracer().Errorf("style resolution failed: %v", err)
		return nil, err
	}
	return styles, nil
}
