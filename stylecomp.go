package stylecomp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"image"

	"github.com/npillmayer/stylecomp/composite"
	"github.com/npillmayer/stylecomp/dom"
	"github.com/npillmayer/stylecomp/dom/style/cssom"
	"github.com/npillmayer/stylecomp/dom/style/selector"
	"github.com/npillmayer/stylecomp/dom/styledtree"
	"github.com/npillmayer/stylecomp/tree"
)

// Errors returned by the entry points. Use errors.Is to check for them.
var (
	ErrInvalidSelector       = selector.ErrInvalidSelector
	ErrInvalidAnB            = selector.ErrInvalidAnB
	ErrInconsistentTree      = dom.ErrInconsistentTree
	ErrInvalidLayerBounds    = composite.ErrInvalidLayerBounds
	ErrInconsistentLayerTree = composite.ErrInconsistentLayerTree
	ErrWorkerFailure         = tree.ErrWorkerFailure
)

// Option configures style resolution and compositing.
type Option func(*config)

type config struct {
	maxWorkers int
	states     dom.StateMap
	textures   composite.TextureSource
}

// WithMaxWorkers sets a ceiling on the number of concurrent workers.
// n ≤ 0 means no ceiling, i.e. one worker per available CPU.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		c.maxWorkers = n
	}
}

// WithElementStates sets the dynamic element states (hover, focus, …) for
// ResolveStyles.
func WithElementStates(states dom.StateMap) Option {
	return func(c *config) {
		c.states = states
	}
}

// WithTextureSource sets the source of texture content for CompositeFrame.
func WithTextureSource(src composite.TextureSource) Option {
	return func(c *config) {
		c.textures = src
	}
}

func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// BuildRuleIndex prepares a list of style rules for matching. It fails with
// an error matching ErrInvalidSelector or ErrInvalidAnB if a rule's selector
// cannot be parsed.
func BuildRuleIndex(rules []cssom.StyleRule) (*cssom.RuleIndex, error) {
	return cssom.BuildRuleIndex(rules)
}

// ResolveStyles computes the styles of all elements of t. See
// styledtree.Resolve.
func ResolveStyles(t *dom.Tree, index *cssom.RuleIndex, opts ...Option) (styledtree.StyleMap, error) {
	c := configure(opts)
	return styledtree.Resolve(t, index,
		styledtree.WithStates(c.states),
		styledtree.WithMaxWorkers(c.maxWorkers))
}

// CompositeFrame composites layers into an image of the viewport. The
// image has non-premultiplied 8-bit RGBA pixels, rows without padding.
// See composite.Composite.
func CompositeFrame(layers []composite.Layer, viewport composite.Rect, opts ...Option) (*image.NRGBA, error) {
	c := configure(opts)
	copts := []composite.Option{composite.WithMaxWorkers(c.maxWorkers)}
	if c.textures != nil {
		copts = append(copts, composite.WithTextureSource(c.textures))
	}
	frame, err := composite.Composite(layers, viewport, copts...)
	if err != nil {
		return nil, err
	}
	return frame.Image(), nil
}

// ElementStates creates a state map with an entry for every element given,
// all states cleared. Callers set states with StateMap.Set before passing
// the map to ResolveStyles.
func ElementStates(ids []dom.ElementID) dom.StateMap {
	return dom.NewStateMap(ids...)
}
