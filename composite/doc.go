/*
Package composite implements a parallel layer compositor.

Overview

Composite receives a list of layers, each with bounds in viewport
coordinates, an affine transform, an opacity, a blend mode and content, and
produces a pixel buffer for a viewport. Layers form a forest through their
parent IDs. The forest is flattened into a global z-order by a pre-order
traversal, with siblings ordered by z-index.

Compositing is done in three steps:

1. Layers are collected into groups, walking them in z-order. A layer joins
the current group if its (transformed) bounding box intersects the group's
bounds, and otherwise starts a new group.

2. Independent groups are painted concurrently, each into a private
intermediate buffer covering the group's bounds. A group is not independent
if a layer with a blend mode other than Normal overlaps the group, or if the
group overlaps a group created before it.

3. The group buffers are merged into the frame in order of creation, using
Normal source-over compositing. Groups which are not independent are painted
directly onto the frame at this point, on the calling goroutine.

The result equals the sequential source-over reduction of all layers in
z-order, for every pixel, regardless of the number of workers.

Colors are kept as straight (non-premultiplied) alpha float32 values during
compositing and are quantized to 8 bits per channel on output.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package composite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.composite'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.composite")
}
