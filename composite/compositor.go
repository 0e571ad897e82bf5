package composite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"

	"github.com/npillmayer/stylecomp/tree"
)

// Option configures compositing.
type Option func(*options)

type options struct {
	textures TextureSource
	tree.Options
}

// WithMaxWorkers sets a ceiling on the number of concurrent workers.
// n ≤ 0 means no ceiling.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.MaxWorkers = n
	}
}

// WithTextureSource sets the source for texture and render-target content.
// Without it, such content is painted opaque white.
func WithTextureSource(src TextureSource) Option {
	return func(o *options) {
		if src != nil {
			o.textures = src
		}
	}
}

// paintable is a layer prepared for painting.
type paintable struct {
	layer   *Layer
	box     Rect    // transformed bounds, viewport coordinates
	pix     pixRect // box in frame pixels, clipped to the frame
	inverse Transform
	opacity float32
	blend   func(s, d float32) float32
}

// group is a run of layers, adjacent in z-order, with overlapping bounds.
type group struct {
	members     []*paintable
	bounds      Rect
	pix         pixRect
	independent bool
	buffer      *PixelBuffer // set for independent groups after painting
}

// Composite paints layers into a buffer covering viewport. Frame pixel
// (i,j) shows the viewport point (viewport.X+i+½, viewport.Y+j+½).
//
// Composite fails with an error matching ErrInvalidLayerBounds if the
// viewport or a layer has non-finite or negative-size bounds, with an error
// matching ErrInconsistentLayerTree if the layers do not form a forest, and
// with an error matching tree.ErrWorkerFailure if painting panics. No
// partial results are returned.
//
// An empty layer list results in a transparent frame, a viewport with zero
// area in an empty buffer.
func Composite(layers []Layer, viewport Rect, opts ...Option) (*PixelBuffer, error) {
	o := options{textures: placeholder{}}
	for _, opt := range opts {
		opt(&o)
	}
	if !viewport.IsValid() {
		err := &BoundsError{Layer: NoLayer, Bounds: viewport}
		tracer().Errorf("%v", err)
		return nil, err
	}
	for i := range layers {
		if !layers[i].Bounds.IsValid() {
			err := &BoundsError{Layer: layers[i].ID, Bounds: layers[i].Bounds}
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	order, err := ZOrder(layers)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	frame := NewPixelBuffer(pixelExtent(viewport.W), pixelExtent(viewport.H))
	if frame.IsEmpty() {
		return frame, nil
	}
	paintables := prepare(layers, order, viewport, frame)
	groups := groupLayers(paintables)
	var independent []*group
	for _, g := range groups {
		if g.independent {
			independent = append(independent, g)
		}
	}
	workers := o.Workers()
	tracer().Debugf("compositing %d layers (%d visible) in %d groups, %d independent, %d workers",
		len(layers), len(paintables), len(groups), len(independent), workers)
	err = tree.ForEach(len(independent), workers, func(i int) error {
		g := independent[i]
		buf := NewPixelBuffer(g.pix.width(), g.pix.height())
		for _, p := range g.members {
			p.paint(buf, g.pix.x0, g.pix.y0, viewport, o.textures)
		}
		g.buffer = buf
		return nil
	})
	if err == nil {
		err = tree.Run(func() error {
			merge(frame, groups, viewport, o.textures)
			return nil
		})
	}
	if err != nil {
		tracer().Errorf("compositing failed: %v", err)
		return nil, err
	}
	return frame, nil
}

// merge blits the buffers of independent groups onto the frame and paints
// all other groups directly, in order of group creation.
func merge(frame *PixelBuffer, groups []*group, viewport Rect, textures TextureSource) {
	for _, g := range groups {
		if g.independent {
			blit(frame, g.buffer, g.pix.x0, g.pix.y0)
			continue
		}
		for _, p := range g.members {
			p.paint(frame, 0, 0, viewport, textures)
		}
	}
}

// blit composites src onto dst at offset (ox,oy), Normal over.
func blit(dst, src *PixelBuffer, ox, oy int) {
	for y := 0; y < src.Height; y++ {
		d := (oy+y)*dst.Width + ox
		drow := dst.Pix[d : d+src.Width]
		for x, c := range src.Pix[y*src.Width : (y+1)*src.Width] {
			over(&drow[x], c, nil)
		}
	}
}

// prepare drops layers which cannot contribute to the frame, in z-order.
func prepare(layers []Layer, order []int, viewport Rect, frame *PixelBuffer) []*paintable {
	full := pixRect{0, 0, frame.Width, frame.Height}
	paintables := make([]*paintable, 0, len(order))
	for _, i := range order {
		l := &layers[i]
		if l.Content.Kind == EmptyContent || l.Bounds.IsEmpty() {
			continue
		}
		if l.Content.Kind == SolidContent && l.Content.Color.A <= 0 {
			continue
		}
		opacity := l.Opacity
		if opacity > 1 {
			opacity = 1
		}
		if !(opacity > 0) {
			continue
		}
		inverse, ok := l.Transform.Invert()
		if !ok {
			tracer().Debugf("layer %d has a singular transform, skipped", l.ID)
			continue
		}
		box := l.Transform.BoundingBox(l.Bounds)
		if !box.IsValid() {
			continue
		}
		pix := toPixels(box, viewport).clip(full)
		if pix.empty() {
			continue
		}
		paintables = append(paintables, &paintable{
			layer:   l,
			box:     box,
			pix:     pix,
			inverse: inverse,
			opacity: opacity,
			blend:   blendFunc(l.Blend),
		})
	}
	return paintables
}

// groupLayers partitions paintables, given in z-order, into groups.
func groupLayers(paintables []*paintable) []*group {
	var groups []*group
	var current *group
	for _, p := range paintables {
		if current != nil && current.bounds.Intersects(p.box) {
			if p.layer.Blend != Normal {
				current.independent = false
			}
			current.members = append(current.members, p)
			current.bounds = current.bounds.Union(p.box)
			current.pix = current.pix.union(p.pix)
			continue
		}
		current = &group{
			members:     []*paintable{p},
			bounds:      p.box,
			pix:         p.pix,
			independent: true,
		}
		groups = append(groups, current)
	}
	for i, g := range groups {
		for _, earlier := range groups[:i] {
			if g.pix.overlaps(earlier.pix) {
				g.independent = false
				break
			}
		}
	}
	return groups
}

// paint composites a layer onto dst, which covers the frame pixels starting
// at (ox,oy). Only pixels within p.pix are touched.
func (p *paintable) paint(dst *PixelBuffer, ox, oy int, viewport Rect, textures TextureSource) {
	l := p.layer
	bounds := l.Bounds
	for y := p.pix.y0; y < p.pix.y1; y++ {
		cy := viewport.Y + float64(y) + 0.5
		row := dst.Pix[(y-oy)*dst.Width : (y-oy+1)*dst.Width]
		for x := p.pix.x0; x < p.pix.x1; x++ {
			cx := viewport.X + float64(x) + 0.5
			lx, ly := p.inverse.Apply(cx, cy)
			if !bounds.Contains(lx, ly) {
				continue
			}
			var c RGBA
			if l.Content.Kind == SolidContent {
				c = l.Content.Color
			} else {
				u, v := (lx-bounds.X)/bounds.W, (ly-bounds.Y)/bounds.H
				c = textures.Sample(l.Content.Kind, l.Content.Ref, u, v)
			}
			c.A *= p.opacity
			if c.A <= 0 {
				continue
			}
			over(&row[x-ox], c, p.blend)
		}
	}
}

// pixelExtent is the number of whole pixels needed to cover a length.
func pixelExtent(length float64) int {
	if !(length > 0) {
		return 0
	}
	return int(math.Ceil(length))
}

// toPixels returns the frame pixels touched by r, which is given in
// viewport coordinates.
func toPixels(r Rect, viewport Rect) pixRect {
	limit := func(v float64) int {
		const big = 1 << 30
		if v < -big {
			return -big
		}
		if v > big {
			return big
		}
		return int(v)
	}
	return pixRect{
		x0: limit(math.Floor(r.X - viewport.X)),
		y0: limit(math.Floor(r.Y - viewport.Y)),
		x1: limit(math.Ceil(r.Right() - viewport.X)),
		y1: limit(math.Ceil(r.Bottom() - viewport.Y)),
	}
}
