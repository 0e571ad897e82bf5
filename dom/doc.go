/*
Package dom holds the read-only element tree which is the input to styling.

Overview

An element tree is a flat arena of ElementContexts. Every element is
addressed by a dense ElementID, which is its index in the arena, and links
to its parent by ID. Children lists, sibling positions and breadth-first
levels are derived from the parent links on first use, after the tree has
been validated: every parent reference has to resolve and the parent links
must not form a cycle. A tree failing validation reports an error matching
ErrInconsistentTree.

Elements are never mutated once they have been added to a tree. Dynamic
pseudo-class state (hover, focus, checked, …) is not part of an element but
lives in a separate StateMap, which clients may alter between styling runs.

Trees may be built programmatically (see Tree.Add) or from an HTML parse
tree of golang.org/x/net/html (see FromHTML).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.dom'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.dom")
}
