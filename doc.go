/*
Package stylecomp implements the style resolution and compositing core of a
browser rendering engine.

It turns an element tree plus a list of style rules into computed styles
for every element, and a list of layers into the pixels of a frame:

    index, err := stylecomp.BuildRuleIndex(rules)
    styles, err := stylecomp.ResolveStyles(tree, index)
    ... // paint: turn styles into layers
    frame, err := stylecomp.CompositeFrame(layers, viewport)

Both style resolution and compositing are pure functions of their inputs and
run on a bounded number of concurrent workers. Their results do not depend
on the number of workers.

The work is done by the sub-packages:

    dom/style/selector   selector parsing and matching
    dom/style/cssom      style rules and the rule index
    dom/style/css        the cascade
    dom/styledtree       parallel style resolution
    composite            parallel layer compositing

Package stylecomp adds a small facade and document loading from HTML with
embedded style sheets.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylecomp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp")
}
