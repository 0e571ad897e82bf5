package composite

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecomp/tree"
)

func solid(id LayerID, bounds Rect, r, g, b, a uint8) Layer {
	return NewLayer(id, bounds, Solid(RGBA8(r, g, b, a)))
}

// reference paints all layers, one after the other, onto the frame.
func reference(t *testing.T, layers []Layer, viewport Rect, textures TextureSource) *PixelBuffer {
	order, err := ZOrder(layers)
	if err != nil {
		t.Fatal(err)
	}
	frame := NewPixelBuffer(pixelExtent(viewport.W), pixelExtent(viewport.H))
	for _, p := range prepare(layers, order, viewport, frame) {
		p.paint(frame, 0, 0, viewport, textures)
	}
	return frame
}

func TestOverlappingSolids(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.composite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	l1 := solid(1, R(0, 0, 100, 100), 255, 0, 0, 255)
	l2 := solid(2, R(50, 50, 100, 100), 0, 0, 255, 128)
	l2.ZIndex = 1
	frame, err := Composite([]Layer{l1, l2}, R(0, 0, 200, 200))
	if err != nil {
		t.Fatal(err)
	}
	if frame.Width != 200 || frame.Height != 200 {
		t.Fatalf("expected 200×200 frame, is %d×%d", frame.Width, frame.Height)
	}
	img := frame.Image()
	for _, c := range []struct {
		x, y int
		rgba color.NRGBA
	}{
		{75, 75, color.NRGBA{R: 127, G: 0, B: 128, A: 255}},
		{25, 25, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{125, 125, color.NRGBA{R: 0, G: 0, B: 255, A: 128}},
		{49, 99, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{175, 175, color.NRGBA{}},
	} {
		if is := img.NRGBAAt(c.x, c.y); is != c.rgba {
			t.Errorf("expected pixel (%d,%d) to be %v, is %v", c.x, c.y, c.rgba, is)
		}
	}
}

func TestMultiplyLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.composite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	viewport := R(0, 0, 10, 10)
	red := solid(1, R(0, 0, 10, 10), 255, 0, 0, 128)
	white := solid(2, R(0, 0, 10, 10), 255, 255, 255, 255)
	white.ZIndex = 1
	white.Blend = Multiply
	frame, err := Composite([]Layer{red, white}, viewport)
	if err != nil {
		t.Fatal(err)
	}
	if is := frame.Image().NRGBAAt(5, 5); is != (color.NRGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("expected white multiplied over half red to be opaque red, is %v", is)
	}
	frame, err = Composite([]Layer{white}, viewport)
	if err != nil {
		t.Fatal(err)
	}
	if is := frame.Image().NRGBAAt(5, 5); is != (color.NRGBA{A: 255}) {
		t.Errorf("expected white multiplied over an empty frame to be black, is %v", is)
	}
}

func TestDisjointLayersFormIndependentGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.composite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	viewport := R(0, 0, 200, 200)
	l1 := solid(1, R(0, 0, 50, 50), 0, 128, 0, 200)
	l2 := solid(2, R(100, 100, 50, 50), 0, 0, 128, 255)
	both, err := Composite([]Layer{l1, l2}, viewport)
	if err != nil {
		t.Fatal(err)
	}
	iso1, _ := Composite([]Layer{l1}, viewport)
	iso2, _ := Composite([]Layer{l2}, viewport)
	for i := range both.Pix {
		want := iso1.Pix[i]
		if want == Transparent {
			want = iso2.Pix[i]
		}
		if both.Pix[i] != want {
			t.Fatalf("expected pixel %d to equal isolated painting %v, is %v", i, want, both.Pix[i])
		}
	}
	groups := groupsOf(t, []Layer{l1, l2}, viewport)
	if len(groups) != 2 || !groups[0].independent || !groups[1].independent {
		t.Errorf("expected two independent groups, have %d", len(groups))
	}
}

func groupsOf(t *testing.T, layers []Layer, viewport Rect) []*group {
	order, err := ZOrder(layers)
	if err != nil {
		t.Fatal(err)
	}
	frame := NewPixelBuffer(pixelExtent(viewport.W), pixelExtent(viewport.H))
	return groupLayers(prepare(layers, order, viewport, frame))
}

func TestGrouping(t *testing.T) {
	viewport := R(0, 0, 200, 200)
	l0 := solid(0, R(0, 0, 10, 10), 255, 0, 0, 255)
	l0.Transform = Translate(100, 0)
	l1 := solid(1, R(100, 0, 10, 10), 0, 255, 0, 255)
	if groups := groupsOf(t, []Layer{l0, l1}, viewport); len(groups) != 1 {
		t.Errorf("expected transformed bounds to put both layers into one group, have %d groups", len(groups))
	}
	//
	a := solid(0, R(0, 0, 50, 50), 255, 0, 0, 255)
	b := solid(1, R(100, 100, 50, 50), 0, 255, 0, 255)
	c := solid(2, R(25, 25, 10, 10), 0, 0, 255, 255)
	c.Blend = Multiply
	groups := groupsOf(t, []Layer{a, b, c}, viewport)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, have %d", len(groups))
	}
	if !groups[0].independent || !groups[1].independent || groups[2].independent {
		t.Errorf("expected group overlapping an earlier group not to be independent")
	}
	//
	d := solid(1, R(40, 40, 30, 30), 0, 0, 255, 255)
	d.Blend = Screen
	groups = groupsOf(t, []Layer{a, d}, viewport)
	if len(groups) != 1 || groups[0].independent {
		t.Errorf("expected blending layer to make its group dependent")
	}
	d.Blend = Normal
	groups = groupsOf(t, []Layer{a, d}, viewport)
	if len(groups) != 1 || !groups[0].independent {
		t.Errorf("expected normal layers to keep their group independent")
	}
}

func TestZOrder(t *testing.T) {
	layers := []Layer{
		{ID: 0, Parent: NoLayer, ZIndex: 0},
		{ID: 1, Parent: NoLayer, ZIndex: -1},
		{ID: 2, Parent: 0, ZIndex: 5},
		{ID: 3, Parent: 0, ZIndex: 1},
		{ID: 4, Parent: 3, ZIndex: 0},
		{ID: 5, Parent: 0, ZIndex: 1},
	}
	order, err := ZOrder(layers)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 0, 3, 4, 5, 2}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected z-order %v, is %v", want, order)
		}
	}
	dump := DumpLayers(layers)
	t.Logf("\n%s", dump)
	if !strings.Contains(dump, "layer 4 z=0") {
		t.Errorf("expected layer dump to contain layer 4")
	}
}

func TestInconsistentLayerTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.composite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	for name, layers := range map[string][]Layer{
		"duplicate": {{ID: 1, Parent: NoLayer}, {ID: 1, Parent: NoLayer}},
		"unknown":   {{ID: 1, Parent: NoLayer}, {ID: 2, Parent: 7}},
		"cycle":     {{ID: 1, Parent: NoLayer}, {ID: 2, Parent: 3}, {ID: 3, Parent: 2}},
		"self":      {{ID: 1, Parent: 1}},
	} {
		_, err := Composite(layers, R(0, 0, 10, 10))
		if !errors.Is(err, ErrInconsistentLayerTree) {
			t.Errorf("%s: expected inconsistent layer tree, is %v", name, err)
		}
	}
}

func TestInvalidBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.composite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	bad := solid(3, R(0, 0, math.NaN(), 10), 0, 0, 0, 255)
	_, err := Composite([]Layer{solid(1, R(0, 0, 5, 5), 0, 0, 0, 255), bad}, R(0, 0, 10, 10))
	var berr *BoundsError
	if !errors.Is(err, ErrInvalidLayerBounds) || !errors.As(err, &berr) || berr.Layer != 3 {
		t.Errorf("expected bounds error for layer 3, is %v", err)
	}
	_, err = Composite([]Layer{solid(1, R(0, 0, -5, 5), 0, 0, 0, 255)}, R(0, 0, 10, 10))
	if !errors.Is(err, ErrInvalidLayerBounds) {
		t.Errorf("expected bounds error for negative width, is %v", err)
	}
	_, err = Composite(nil, R(0, 0, math.Inf(1), 10))
	if !errors.As(err, &berr) || berr.Layer != NoLayer {
		t.Errorf("expected bounds error for viewport, is %v", err)
	}
}

func TestEmptyInputs(t *testing.T) {
	frame, err := Composite(nil, R(0, 0, 0, 100))
	if err != nil || !frame.IsEmpty() {
		t.Errorf("expected empty buffer for viewport of zero area, is %v, %v", frame, err)
	}
	frame, err = Composite(nil, R(10, 10, 4, 3))
	if err != nil || frame.Width != 4 || frame.Height != 3 {
		t.Fatalf("expected transparent 4×3 frame for empty layer list, is %v, %v", frame, err)
	}
	for _, c := range frame.Pix {
		if c != Transparent {
			t.Fatalf("expected transparent frame, found %v", c)
		}
	}
	visible := solid(1, R(0, 0, 20, 20), 10, 20, 30, 255)
	outside := solid(2, R(500, 500, 20, 20), 255, 255, 255, 255)
	outside.ZIndex = 1
	with, _ := Composite([]Layer{visible, outside}, R(0, 0, 100, 100))
	without, _ := Composite([]Layer{visible}, R(0, 0, 100, 100))
	if !with.Equal(without) {
		t.Errorf("expected layer outside of viewport to be absent from output")
	}
	container := NewLayer(3, R(0, 0, 100, 100), Content{})
	with, _ = Composite([]Layer{container, visible}, R(0, 0, 100, 100))
	if !with.Equal(without) {
		t.Errorf("expected empty layer to paint nothing")
	}
}

func TestViewportOffsetAndClipping(t *testing.T) {
	l := solid(1, R(0, 0, 50, 50), 255, 0, 0, 255)
	frame, err := Composite([]Layer{l}, R(40, 40, 20, 20))
	if err != nil {
		t.Fatal(err)
	}
	if frame.At(9, 9).A != 1 || frame.At(10, 10).A != 0 {
		t.Errorf("expected layer to cover the top-left 10×10 pixels of the frame only")
	}
}

func TestTransformedLayer(t *testing.T) {
	l := solid(1, R(0, 0, 10, 10), 0, 255, 0, 255)
	l.Transform = Translate(20, 20)
	frame, _ := Composite([]Layer{l}, R(0, 0, 40, 40))
	if frame.At(25, 25).A != 1 || frame.At(5, 5).A != 0 || frame.At(30, 30).A != 0 {
		t.Errorf("expected translated layer to cover (20,20)–(30,30)")
	}
	r := solid(1, R(0, 0, 20, 10), 0, 0, 255, 255)
	r.Transform = Rotate(math.Pi / 2).Then(Translate(10, 0))
	frame, _ = Composite([]Layer{r}, R(0, 0, 40, 40))
	if frame.At(5, 15).A != 1 || frame.At(15, 5).A != 0 {
		t.Errorf("expected rotated layer to cover (0,0)–(10,20)")
	}
	s := solid(1, R(0, 0, 10, 10), 0, 0, 255, 255)
	s.Transform = Scale(0, 2)
	frame, _ = Composite([]Layer{s}, R(0, 0, 40, 40))
	for _, c := range frame.Pix {
		if c != Transparent {
			t.Fatalf("expected layer with singular transform to paint nothing")
		}
	}
}

func TestTextures(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})
	src := ImageTextures{Textures: map[uint32]image.Image{7: img}}
	layers := []Layer{
		NewLayer(1, R(0, 0, 20, 20), Texture(7)),
		NewLayer(2, R(20, 0, 10, 10), Texture(99)),
		NewLayer(3, R(20, 10, 10, 10), RenderTarget(7)),
	}
	frame, err := Composite(layers, R(0, 0, 30, 20), WithTextureSource(src))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		x, y int
		rgba color.NRGBA
	}{
		{5, 5, color.NRGBA{R: 255, A: 255}},
		{15, 5, color.NRGBA{G: 255, A: 255}},
		{5, 15, color.NRGBA{B: 255, A: 255}},
		{15, 15, color.NRGBA{R: 255, G: 255, A: 255}},
		{25, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},  // unknown texture
		{25, 15, color.NRGBA{R: 255, G: 255, B: 255, A: 255}}, // no render targets
	} {
		if is := frame.At(c.x, c.y).NRGBA(); is != c.rgba {
			t.Errorf("expected texel at (%d,%d) to be %v, is %v", c.x, c.y, c.rgba, is)
		}
	}
	frame, _ = Composite(layers[:1], R(0, 0, 20, 20))
	if is := frame.At(5, 5).NRGBA(); is != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected placeholder without texture source, is %v", is)
	}
}

type explodingTextures struct{}

func (explodingTextures) Sample(ContentKind, uint32, float64, float64) RGBA {
	panic("texture unavailable")
}

func TestPanicSurfacesAsWorkerFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.composite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	independent := []Layer{
		solid(1, R(0, 0, 10, 10), 0, 0, 0, 255),
		NewLayer(2, R(50, 50, 10, 10), Texture(1)),
	}
	frame, err := Composite(independent, R(0, 0, 100, 100), WithTextureSource(explodingTextures{}))
	if !errors.Is(err, tree.ErrWorkerFailure) || frame != nil {
		t.Errorf("expected worker failure from group painting, is %v", err)
	}
	dependent := []Layer{
		solid(1, R(0, 0, 10, 10), 0, 0, 0, 255),
		NewLayer(2, R(5, 5, 10, 10), Texture(1)),
	}
	dependent[1].Blend = Multiply
	frame, err = Composite(dependent, R(0, 0, 100, 100), WithTextureSource(explodingTextures{}))
	if !errors.Is(err, tree.ErrWorkerFailure) || frame != nil {
		t.Errorf("expected worker failure from merging, is %v", err)
	}
}

// randomLayers creates a layer forest with transforms, opacities, blend
// modes and textures.
func randomLayers(n int, seed int64) []Layer {
	rnd := rand.New(rand.NewSource(seed))
	layers := make([]Layer, n)
	for i := range layers {
		x, y := rnd.Float64()*300-20, rnd.Float64()*300-20
		w, h := 2+rnd.Float64()*40, 2+rnd.Float64()*40
		var content Content
		switch rnd.Intn(6) {
		case 0:
			content = Texture(uint32(rnd.Intn(3)))
		case 1:
			content = Content{}
		default:
			content = Solid(RGBA8(uint8(rnd.Intn(256)), uint8(rnd.Intn(256)),
				uint8(rnd.Intn(256)), uint8(rnd.Intn(256))))
		}
		l := NewLayer(LayerID(i), R(x, y, w, h), content)
		if i > 0 && rnd.Intn(3) == 0 {
			l.Parent = LayerID(rnd.Intn(i))
		}
		l.ZIndex = rnd.Intn(5) - 2
		l.Opacity = 0.3 + 0.7*rnd.Float32()
		if rnd.Intn(4) == 0 {
			l.Blend = BlendMode(1 + rnd.Intn(len(blendModeNames)-1))
		}
		switch rnd.Intn(5) {
		case 0:
			l.Transform = Rotate(rnd.Float64() * math.Pi).Then(Translate(rnd.Float64()*50, rnd.Float64()*50))
		case 1:
			l.Transform = Scale(0.5+rnd.Float64(), 0.5+rnd.Float64())
		}
		layers[i] = l
	}
	return layers
}

func checkerboard() TextureSource {
	src := ImageTextures{Textures: map[uint32]image.Image{}}
	for k := uint32(0); k < 3; k++ {
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if (x+y)%2 == 0 {
					img.SetNRGBA(x, y, color.NRGBA{R: uint8(80 * k), G: 200, B: 40, A: 180})
				}
			}
		}
		src.Textures[k] = img
	}
	return src
}

func TestParallelEqualsSequential(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecomp.composite")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	textures := checkerboard()
	viewport := R(0, 0, 256, 256)
	for _, seed := range []int64{1, 2, 3} {
		layers := randomLayers(300, seed)
		want := reference(t, layers, viewport, textures)
		single, err := Composite(layers, viewport, WithMaxWorkers(1), WithTextureSource(textures))
		if err != nil {
			t.Fatal(err)
		}
		parallel, err := Composite(layers, viewport, WithMaxWorkers(8), WithTextureSource(textures))
		if err != nil {
			t.Fatal(err)
		}
		if !single.Equal(want) {
			t.Errorf("seed %d: expected single worker result to equal sequential reduction", seed)
		}
		if !parallel.Equal(single) {
			t.Errorf("seed %d: expected parallel result to equal single worker result", seed)
		}
	}
}

func TestGroupPrecompositeIsAssociative(t *testing.T) {
	viewport := R(0, 0, 60, 60)
	a := solid(1, R(0, 0, 40, 40), 200, 30, 30, 180)
	b := solid(2, R(10, 10, 40, 40), 30, 200, 30, 120)
	c := solid(3, R(20, 20, 40, 40), 30, 30, 200, 90)
	all, _ := Composite([]Layer{a, b, c}, viewport)
	// paint a, then "c over b" pre-composited in isolation
	bottom, _ := Composite([]Layer{a}, viewport)
	top, _ := Composite([]Layer{b, c}, viewport)
	blit(bottom, top, 0, 0)
	x, y := all.Bytes(), bottom.Bytes()
	for i := range x {
		if d := int(x[i]) - int(y[i]); d < -1 || d > 1 {
			t.Fatalf("expected pre-composited group to match, byte %d differs: %d vs %d", i, x[i], y[i])
		}
	}
}

func TestPixelBufferImage(t *testing.T) {
	pb := NewPixelBuffer(3, 2)
	pb.Set(2, 1, RGBA8(1, 2, 3, 4))
	pb.Set(5, 5, White) // ignored
	img := pb.Image()
	if img.Stride != 12 || img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("expected 3×2 image with stride 12, is %v stride %d", img.Bounds(), img.Stride)
	}
	if is := img.NRGBAAt(2, 1); is != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("expected (1,2,3,4) at (2,1), is %v", is)
	}
	if b := pb.Bytes(); len(b) != 24 || b[20] != 1 || b[23] != 4 {
		t.Errorf("expected 24 bytes in row-major RGBA order, is %v", b)
	}
}
