/*
Package tree runs work concurrently over the levels of index-based trees.

Overview

Styling and compositing both operate on trees which are stored as dense
arenas: nodes are addressed by small integer IDs and link to their parents
by ID. Work on such a tree is organized in breadth-first levels. All nodes of
a level are independent of each other, whereas every node of level k+1
depends on its parent in level k. A level is therefore split into
contiguous chunks which are handed to a bounded set of worker goroutines,
and the level is joined before the next one starts. The join is the only
synchronization point; it publishes all writes of a level to the workers of
the next level.

Panics in worker tasks are recovered and reported as errors of type
*WorkerError, which match ErrWorkerFailure.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.tree'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.tree")
}
