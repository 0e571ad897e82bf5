package composite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "image"

// PixelBuffer is a row-major, top-left origin raster of straight-alpha
// colors.
type PixelBuffer struct {
	Width, Height int
	Pix           []RGBA
}

// NewPixelBuffer allocates a transparent buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]RGBA, width*height),
	}
}

// IsEmpty is a predicate: does the buffer have no pixels?
func (pb *PixelBuffer) IsEmpty() bool {
	return pb == nil || pb.Width == 0 || pb.Height == 0
}

// At returns the color at (x,y), or Transparent outside the buffer.
func (pb *PixelBuffer) At(x, y int) RGBA {
	if x < 0 || y < 0 || x >= pb.Width || y >= pb.Height {
		return Transparent
	}
	return pb.Pix[y*pb.Width+x]
}

// Set sets the color at (x,y). Coordinates outside the buffer are ignored.
func (pb *PixelBuffer) Set(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= pb.Width || y >= pb.Height {
		return
	}
	pb.Pix[y*pb.Width+x] = c
}

// Bytes quantizes the buffer to 8 bits per channel, 4 bytes per pixel in
// R, G, B, A order, rows without padding.
func (pb *PixelBuffer) Bytes() []byte {
	b := make([]byte, 4*len(pb.Pix))
	for i, c := range pb.Pix {
		n := c.NRGBA()
		b[4*i], b[4*i+1], b[4*i+2], b[4*i+3] = n.R, n.G, n.B, n.A
	}
	return b
}

// Image returns the quantized buffer as an image with non-premultiplied
// alpha. Its stride is 4·Width.
func (pb *PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    pb.Bytes(),
		Stride: 4 * pb.Width,
		Rect:   image.Rect(0, 0, pb.Width, pb.Height),
	}
}

// Equal is a predicate: do both buffers have the same size and identical
// colors?
func (pb *PixelBuffer) Equal(other *PixelBuffer) bool {
	if pb.Width != other.Width || pb.Height != other.Height {
		return false
	}
	for i := range pb.Pix {
		if pb.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
