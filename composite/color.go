package composite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// RGBA is a color with straight (non-premultiplied) alpha. Channels are in
// [0,1].
type RGBA struct {
	R, G, B, A float32
}

// Transparent is the fully transparent color.
var Transparent = RGBA{}

// White is used as a placeholder for content which cannot be sampled.
var White = RGBA{1, 1, 1, 1}

// RGBA8 creates a color from 8-bit channel values.
func RGBA8(r, g, b, a uint8) RGBA {
	return RGBA{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// NRGBA quantizes c to 8 bits per channel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: quantize(c.A)}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", n.R, n.G, n.B, n.A)
}

func quantize(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// --- Blend modes -----------------------------------------------------------

// BlendMode selects the function mixing a layer's color with the colors
// beneath it.
type BlendMode uint8

// Separable blend modes.
const (
	Normal BlendMode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
)

var blendModeNames = [...]string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
	"exclusion",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// ParseBlendMode parses a CSS blend mode keyword, as used for
// 'mix-blend-mode'.
func ParseBlendMode(s string) (BlendMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range blendModeNames {
		if name == s {
			return BlendMode(i), true
		}
	}
	return Normal, false
}

// blendFunc returns the per-channel blend function B(Cs, Cb) for a blend
// mode, with Cs the source and Cb the backdrop channel. It returns nil for
// Normal, where B(Cs, Cb) = Cs.
func blendFunc(m BlendMode) func(s, d float32) float32 {
	switch m {
	case Multiply:
		return multiply
	case Screen:
		return screen
	case Overlay:
		return func(s, d float32) float32 { return hardLight(d, s) }
	case Darken:
		return func(s, d float32) float32 { return min32(s, d) }
	case Lighten:
		return func(s, d float32) float32 { return max32(s, d) }
	case ColorDodge:
		return colorDodge
	case ColorBurn:
		return colorBurn
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return func(s, d float32) float32 {
			if s > d {
				return s - d
			}
			return d - s
		}
	case Exclusion:
		return func(s, d float32) float32 { return s + d - 2*s*d }
	}
	return nil
}

func multiply(s, d float32) float32 { return s * d }

func screen(s, d float32) float32 { return s + d - s*d }

func hardLight(s, d float32) float32 {
	if s <= 0.5 {
		return multiply(2*s, d)
	}
	return screen(2*s-1, d)
}

func colorDodge(s, d float32) float32 {
	switch {
	case d == 0:
		return 0
	case s >= 1:
		return 1
	}
	return min32(1, d/(1-s))
}

func colorBurn(s, d float32) float32 {
	switch {
	case d >= 1:
		return 1
	case s <= 0:
		return 0
	}
	return 1 - min32(1, (1-d)/s)
}

func softLight(s, d float32) float32 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dd float32
	if d <= 0.25 {
		dd = ((16*d-12)*d + 4) * d
	} else {
		dd = float32(math.Sqrt(float64(d)))
	}
	return d + (2*s-1)*(dd-d)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// over composites source color s (alpha already multiplied by the layer
// opacity) onto destination d, using blend function b (nil for Normal).
//
//     αo = αs + αd·(1 − αs)
//     Co = (B(Cs, Cd)·αs + Cd·αd·(1 − αs)) / αo
//
// B(Cs, Cd) = Cs for Normal. The backdrop alpha does not enter B, so a
// blended layer over a transparent backdrop is blended against black.
func over(d *RGBA, s RGBA, b func(s, d float32) float32) {
	if s.A <= 0 {
		return
	}
	if b == nil && (d.A <= 0 || s.A >= 1) {
		*d = s
		return
	}
	if b != nil {
		s.R = b(s.R, d.R)
		s.G = b(s.G, d.G)
		s.B = b(s.B, d.B)
	}
	a := s.A + d.A*(1-s.A)
	k := d.A * (1 - s.A)
	d.R = (s.R*s.A + d.R*k) / a
	d.G = (s.G*s.A + d.G*k) / a
	d.B = (s.B*s.A + d.B*k) / a
	d.A = a
}
