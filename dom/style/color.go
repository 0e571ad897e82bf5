package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color interprets a property value as a CSS color. Supported are the CSS
// named colors, "transparent", the system colors "canvas" and "canvastext",
// hex notations #rgb, #rgba, #rrggbb and #rrggbbaa, and the functional
// notations rgb() and rgba() in comma- or space-separated form.
//
// The second return value is false if p is not a color recognized by Color.
func (p Property) Color() (color.NRGBA, bool) {
	s := strings.ToLower(string(p.StripImportant()))
	switch s {
	case "":
		return color.NRGBA{}, false
	case "transparent":
		return color.NRGBA{}, true
	case "canvastext":
		return color.NRGBA{0, 0, 0, 0xff}, true
	case "canvas":
		return color.NRGBA{0xff, 0xff, 0xff, 0xff}, true
	}
	if s[0] == '#' {
		return hexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return functionalColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{c.R, c.G, c.B, c.A}, true
	}
	tracer().Debugf("cannot interpret %q as a color", s)
	return color.NRGBA{}, false
}

func hexColor(h string) (color.NRGBA, bool) {
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return color.NRGBA{}, false
		}
	}
	digit := func(i int) uint8 {
		v, _ := strconv.ParseUint(h[i:i+1], 16, 8)
		return uint8(v)
	}
	pair := func(i int) uint8 {
		v, _ := strconv.ParseUint(h[i:i+2], 16, 8)
		return uint8(v)
	}
	switch len(h) {
	case 3, 4:
		c := color.NRGBA{digit(0) * 0x11, digit(1) * 0x11, digit(2) * 0x11, 0xff}
		if len(h) == 4 {
			c.A = digit(3) * 0x11
		}
		return c, true
	case 6, 8:
		c := color.NRGBA{pair(0), pair(2), pair(4), 0xff}
		if len(h) == 8 {
			c.A = pair(6)
		}
		return c, true
	}
	return color.NRGBA{}, false
}

// functionalColor parses rgb(r, g, b), rgba(r, g, b, a) and
// rgb(r g b / a).
func functionalColor(s string) (color.NRGBA, bool) {
	lp, rp := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if rp < lp {
		return color.NRGBA{}, false
	}
	args := strings.NewReplacer(",", " ", "/", " ").Replace(s[lp+1 : rp])
	fields := strings.Fields(args)
	if len(fields) != 3 && len(fields) != 4 {
		return color.NRGBA{}, false
	}
	var c [4]uint8
	c[3] = 0xff
	for i, f := range fields {
		v, pct, ok := number(f)
		if !ok {
			return color.NRGBA{}, false
		}
		switch {
		case i == 3 && pct:
			v = v / 100
		case i == 3:
		case pct:
			v = v / 100
		default:
			v = v / 255
		}
		c[i] = uint8(math.Round(clamp01(v) * 255))
	}
	return color.NRGBA{c[0], c[1], c[2], c[3]}, true
}

func number(f string) (float64, bool, bool) {
	pct := strings.HasSuffix(f, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
	return v, pct, err == nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
