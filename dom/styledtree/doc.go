/*
Package styledtree computes the styles of all elements of an element tree.

Overview

Resolve runs selector matching and the cascade for every element of a
dom.Tree and returns a StyleMap, a dense vector of computed styles indexed
by element ID.

An element's style depends on the style of its parent, but not on the
styles of its siblings. The tree is therefore resolved breadth-first, level
by level: all elements of a level are split into contiguous chunks which
are styled concurrently by a bounded number of workers (see package tree).
A level is joined before the next one starts, which makes the parent
styles written by one level visible to the next. Every element's slot in
the style vector is written exactly once, by exactly one worker. The result
is independent of the number of workers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.style")
}
