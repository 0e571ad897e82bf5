package stylecomp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/stylecomp/composite"
	"github.com/npillmayer/stylecomp/dom"
	"github.com/npillmayer/stylecomp/dom/style"
)

// BackgroundLayer creates a layer painting the background of an element
// with the given border box, from the element's computed style. It uses
// the properties background-color, opacity, mix-blend-mode and z-index.
// The layer's ID is the element's ID; parent is the layer ID of the
// element's stacking parent, or composite.NoLayer.
//
// BackgroundLayer returns false if the element has no visible background.
//
// This is a minimal paint step, translating styles into compositor input.
func BackgroundLayer(id dom.ElementID, parent composite.LayerID, box composite.Rect,
	cs *style.ComputedStyle) (composite.Layer, bool) {
	//
	if cs == nil || cs.Value("visibility") == "hidden" {
		return composite.Layer{}, false
	}
	bg, ok := cs.Value("background-color").Color()
	if !ok || bg.A == 0 {
		return composite.Layer{}, false
	}
	l := composite.NewLayer(composite.LayerID(id), box, composite.Solid(composite.FromColor(bg)))
	l.Parent = parent
	if o, err := strconv.ParseFloat(string(cs.Value("opacity")), 32); err == nil {
		l.Opacity = float32(o)
	}
	if m, ok := composite.ParseBlendMode(string(cs.Value("mix-blend-mode"))); ok {
		l.Blend = m
	}
	if z, err := strconv.Atoi(string(cs.Value("z-index"))); err == nil {
		l.ZIndex = z
	}
	return l, true
}
