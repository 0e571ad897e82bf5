package composite

import (
	"image/color"
	"math"
	"testing"
)

func TestBlendFunctions(t *testing.T) {
	for _, c := range []struct {
		mode    BlendMode
		s, d, b float32
	}{
		{Multiply, 0.5, 0.5, 0.25},
		{Screen, 0.5, 0.5, 0.75},
		{Overlay, 0.2, 0.8, 0.68},
		{Overlay, 0.8, 0.2, 0.32},
		{Darken, 0.3, 0.6, 0.3},
		{Lighten, 0.3, 0.6, 0.6},
		{ColorDodge, 0.5, 0.25, 0.5},
		{ColorDodge, 1, 0.25, 1},
		{ColorDodge, 0.5, 0, 0},
		{ColorBurn, 0.5, 0.75, 0.5},
		{ColorBurn, 0, 0.75, 0},
		{ColorBurn, 0.5, 1, 1},
		{HardLight, 0.2, 0.8, 0.32},
		{HardLight, 0.8, 0.2, 0.68},
		{SoftLight, 0.5, 0.3, 0.3},
		{SoftLight, 0, 0.5, 0.25},
		{SoftLight, 1, 0.25, 0.5},
		{Difference, 0.2, 0.7, 0.5},
		{Difference, 0.7, 0.2, 0.5},
		{Exclusion, 0.5, 0.5, 0.5},
	} {
		b := blendFunc(c.mode)(c.s, c.d)
		if math.Abs(float64(b-c.b)) > 1e-6 {
			t.Errorf("%s: expected B(%g,%g) = %g, is %g", c.mode, c.s, c.d, c.b, b)
		}
	}
	if blendFunc(Normal) != nil {
		t.Errorf("expected no blend function for normal mode")
	}
}

func TestParseBlendMode(t *testing.T) {
	for i, name := range blendModeNames {
		m, ok := ParseBlendMode(" " + name + " ")
		if !ok || m != BlendMode(i) || m.String() != name {
			t.Errorf("expected %q to parse to mode %d, is %v", name, i, m)
		}
	}
	if _, ok := ParseBlendMode("hue"); ok {
		t.Errorf("expected non-separable mode 'hue' not to be supported")
	}
	if m, _ := ParseBlendMode("Color-Dodge"); m != ColorDodge {
		t.Errorf("expected blend mode keywords to be case-insensitive")
	}
}

func TestSourceOver(t *testing.T) {
	d := RGBA8(255, 0, 0, 255)
	over(&d, RGBA8(0, 0, 255, 128), nil)
	if n := d.NRGBA(); n != (color.NRGBA{R: 127, G: 0, B: 128, A: 255}) {
		t.Errorf("expected blue at 50%% over red to be (127,0,128,255), is %v", n)
	}
	d = Transparent
	over(&d, White, blendFunc(Multiply))
	if n := d.NRGBA(); n != (color.NRGBA{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("expected white multiplied over transparent to be black, is %v", n)
	}
	d = Transparent
	over(&d, RGBA8(255, 255, 255, 128), blendFunc(Screen))
	if n := d.NRGBA(); n != (color.NRGBA{R: 255, G: 255, B: 255, A: 128}) {
		t.Errorf("expected screen over transparent to keep the source, is %v", n)
	}
	d = RGBA{R: 1, A: 0.5}
	over(&d, White, blendFunc(Multiply))
	if n := d.NRGBA(); n != (color.NRGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("expected white multiplied over half red to be opaque red, is %v", n)
	}
	d = RGBA{R: 1, A: 0.5}
	over(&d, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.5}, blendFunc(Multiply))
	// αo = .75, R = (.5·.5 + 1·.5·.5)/.75, G = B = 0
	if n := d.NRGBA(); n.A != 191 || n.R != 170 || n.G != 0 || n.B != 0 {
		t.Errorf("expected (170,0,0,191) for half gray multiplied over half red, is %v", n)
	}
	d = RGBA8(1, 2, 3, 4)
	over(&d, Transparent, blendFunc(Screen))
	if d != RGBA8(1, 2, 3, 4) {
		t.Errorf("expected transparent source to leave destination unchanged, is %v", d)
	}
	d = White
	over(&d, RGBA8(51, 102, 153, 255), blendFunc(Multiply))
	if n := d.NRGBA(); n != (color.NRGBA{R: 51, G: 102, B: 153, A: 255}) {
		t.Errorf("expected multiply over white to yield the source, is %v", n)
	}
	d = RGBA8(255, 0, 0, 255)
	over(&d, RGBA8(0, 255, 0, 255), blendFunc(Multiply))
	if n := d.NRGBA(); n != (color.NRGBA{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("expected green multiplied with red to be black, is %v", n)
	}
	d = RGBA8(0, 0, 0, 128)
	over(&d, RGBA8(255, 255, 255, 128), nil)
	if n := d.NRGBA(); n.A != 192 || n.R != 170 {
		t.Errorf("expected (170,170,170,192) for half white over half black, is %v", n)
	}
}

func TestColorConversion(t *testing.T) {
	c := FromColor(color.RGBA{R: 0x80, A: 0x80}) // premultiplied
	if n := c.NRGBA(); n.R != 255 || n.A != 128 {
		t.Errorf("expected (255,0,0,128), is %v", n)
	}
	if n := (RGBA{R: 2, G: -1, B: 0.5, A: 1}).NRGBA(); n != (color.NRGBA{R: 255, G: 0, B: 128, A: 255}) {
		t.Errorf("expected channels clamped to [0,255], is %v", n)
	}
}
