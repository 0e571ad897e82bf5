package composite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"image"
	"math"
)

// TextureSource samples texture and render-target content. u and v are
// normalized coordinates within the layer's bounds, in [0,1).
//
// Sample is called concurrently by compositing workers and must not modify
// shared state.
type TextureSource interface {
	Sample(kind ContentKind, ref uint32, u, v float64) RGBA
}

// ImageTextures is a TextureSource backed by decoded images. Unknown
// references sample as opaque white.
type ImageTextures struct {
	Textures      map[uint32]image.Image
	RenderTargets map[uint32]image.Image
}

// Sample implements TextureSource, using nearest-neighbour sampling.
func (it ImageTextures) Sample(kind ContentKind, ref uint32, u, v float64) RGBA {
	var img image.Image
	switch kind {
	case TextureContent:
		img = it.Textures[ref]
	case RenderTargetContent:
		img = it.RenderTargets[ref]
	}
	if img == nil {
		return White
	}
	b := img.Bounds()
	if b.Empty() {
		return White
	}
	x := b.Min.X + clampIndex(int(math.Floor(u*float64(b.Dx()))), b.Dx())
	y := b.Min.Y + clampIndex(int(math.Floor(v*float64(b.Dy()))), b.Dy())
	return FromColor(img.At(x, y))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// placeholder samples every texture as opaque white.
type placeholder struct{}

func (placeholder) Sample(ContentKind, uint32, float64, float64) RGBA {
	return White
}
