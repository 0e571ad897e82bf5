package composite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sort"

	tp "github.com/xlab/treeprint"
)

// LayerID identifies a layer within a layer list.
type LayerID int

// NoLayer is the parent ID of root layers.
const NoLayer LayerID = -1

// ContentKind is the tag of a layer's Content.
type ContentKind uint8

// Kinds of layer content.
const (
	EmptyContent        ContentKind = iota // container only, paints nothing
	SolidContent                           // a solid color
	TextureContent                         // an image, identified by a reference
	RenderTargetContent                    // the output of another render pass
)

func (k ContentKind) String() string {
	switch k {
	case EmptyContent:
		return "empty"
	case SolidContent:
		return "solid"
	case TextureContent:
		return "texture"
	case RenderTargetContent:
		return "render-target"
	}
	return fmt.Sprintf("ContentKind(%d)", uint8(k))
}

// Content is what a layer paints. Color is used for SolidContent, Ref for
// TextureContent and RenderTargetContent.
type Content struct {
	Kind  ContentKind
	Color RGBA
	Ref   uint32
}

// Solid creates solid color content.
func Solid(c RGBA) Content {
	return Content{Kind: SolidContent, Color: c}
}

// Texture creates content sampled from a texture.
func Texture(ref uint32) Content {
	return Content{Kind: TextureContent, Ref: ref}
}

// RenderTarget creates content sampled from a render target.
func RenderTarget(ref uint32) Content {
	return Content{Kind: RenderTargetContent, Ref: ref}
}

func (c Content) String() string {
	switch c.Kind {
	case SolidContent:
		return "solid " + c.Color.String()
	case TextureContent, RenderTargetContent:
		return fmt.Sprintf("%s #%d", c.Kind, c.Ref)
	}
	return c.Kind.String()
}

// Layer is a rectangle of content to be composited. Layers are read-only
// input to Composite.
//
// Bounds are given in viewport coordinates. Transform maps the bounds (and
// the content within) to their final position. Parent and ZIndex determine
// the z-order only: neither transforms nor opacities of parents are
// applied to their children.
type Layer struct {
	ID        LayerID
	Parent    LayerID // NoLayer for roots
	ZIndex    int     // order among siblings, lowest first
	Bounds    Rect
	Transform Transform
	Opacity   float32 // in [0,1]; values outside are clamped
	Blend     BlendMode
	Content   Content
}

// NewLayer creates a fully opaque root layer with an identity transform
// and Normal blending.
func NewLayer(id LayerID, bounds Rect, content Content) Layer {
	return Layer{
		ID:        id,
		Parent:    NoLayer,
		Bounds:    bounds,
		Transform: Identity(),
		Opacity:   1,
		Content:   content,
	}
}

func (l *Layer) String() string {
	s := fmt.Sprintf("layer %d z=%d %v %s", l.ID, l.ZIndex, l.Bounds, l.Content)
	if !l.Transform.IsIdentity() {
		s += " transform=" + l.Transform.String()
	}
	if l.Opacity < 1 {
		s += fmt.Sprintf(" opacity=%.2f", l.Opacity)
	}
	if l.Blend != Normal {
		s += " blend=" + l.Blend.String()
	}
	return s
}

// --- Errors ----------------------------------------------------------------

// ErrInvalidLayerBounds is matched by errors reporting non-finite or
// negative-size bounds of a layer or of the viewport.
var ErrInvalidLayerBounds = errors.New("invalid layer bounds")

// ErrInconsistentLayerTree is matched by errors reporting layers with
// duplicate IDs, unknown parents or cyclic parent links.
var ErrInconsistentLayerTree = errors.New("inconsistent layer tree")

// BoundsError reports invalid bounds. Layer is NoLayer for the viewport.
type BoundsError struct {
	Layer  LayerID
	Bounds Rect
}

func (e *BoundsError) Error() string {
	if e.Layer == NoLayer {
		return fmt.Sprintf("invalid layer bounds: viewport %v", e.Bounds)
	}
	return fmt.Sprintf("invalid layer bounds: layer %d has bounds %v", e.Layer, e.Bounds)
}

// Is lets errors.Is(err, ErrInvalidLayerBounds) succeed.
func (e *BoundsError) Is(target error) bool {
	return target == ErrInvalidLayerBounds
}

func layerTreeError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInconsistentLayerTree, fmt.Sprintf(format, args...))
}

// --- Z-order ---------------------------------------------------------------

// layerForest holds the parent/child structure of a layer list, in terms
// of indices into the list.
type layerForest struct {
	roots    []int
	children [][]int
}

// forestOf links a layer list. Siblings keep the order of the input list.
func forestOf(layers []Layer) (*layerForest, error) {
	index := make(map[LayerID]int, len(layers))
	for i := range layers {
		if _, dup := index[layers[i].ID]; dup {
			return nil, layerTreeError("duplicate layer ID %d", layers[i].ID)
		}
		index[layers[i].ID] = i
	}
	f := &layerForest{children: make([][]int, len(layers))}
	for i := range layers {
		p := layers[i].Parent
		if p == NoLayer {
			f.roots = append(f.roots, i)
			continue
		}
		pi, ok := index[p]
		if !ok {
			return nil, layerTreeError("layer %d has unknown parent %d", layers[i].ID, p)
		}
		f.children[pi] = append(f.children[pi], i)
	}
	return f, nil
}

// ZOrder flattens a layer forest into a global z-order, lowest first: a
// pre-order traversal, visiting siblings in ascending order of z-index and
// siblings with equal z-index in input order. It returns indices into
// layers.
func ZOrder(layers []Layer) ([]int, error) {
	f, err := forestOf(layers)
	if err != nil {
		return nil, err
	}
	byZ := func(ix []int) []int {
		s := append([]int(nil), ix...)
		sort.SliceStable(s, func(i, j int) bool {
			return layers[s[i]].ZIndex < layers[s[j]].ZIndex
		})
		return s
	}
	order := make([]int, 0, len(layers))
	stack := byZ(f.roots)
	reverse(stack)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, i)
		ch := byZ(f.children[i])
		reverse(ch)
		stack = append(stack, ch...)
	}
	if len(order) < len(layers) { // layers on a cycle are unreachable from roots
		seen := make([]bool, len(layers))
		for _, i := range order {
			seen[i] = true
		}
		for i := range layers {
			if !seen[i] {
				return nil, layerTreeError("layer %d is part of a cycle", layers[i].ID)
			}
		}
	}
	return order, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// DumpLayers returns a tree representation of a layer list, for debugging.
func DumpLayers(layers []Layer) string {
	f, err := forestOf(layers)
	if err != nil {
		return err.Error()
	}
	root := tp.New()
	type item struct {
		i      int
		branch tp.Tree
	}
	var stack []item
	for k := len(f.roots) - 1; k >= 0; k-- {
		stack = append(stack, item{f.roots[k], root})
	}
	visited := make([]bool, len(layers))
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[it.i] {
			continue
		}
		visited[it.i] = true
		l := &layers[it.i]
		if len(f.children[it.i]) == 0 {
			it.branch.AddNode(l.String())
			continue
		}
		b := it.branch.AddBranch(l.String())
		ch := f.children[it.i]
		for k := len(ch) - 1; k >= 0; k-- {
			stack = append(stack, item{ch[k], b})
		}
	}
	return root.String()
}
