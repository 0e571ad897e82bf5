package composite

import (
	"math"
	"testing"
)

func TestRectOperations(t *testing.T) {
	a, b := R(0, 0, 100, 100), R(50, 50, 100, 100)
	if !a.Intersects(b) {
		t.Errorf("expected %v to intersect %v", a, b)
	}
	if is := a.Intersect(b); is != R(50, 50, 50, 50) {
		t.Errorf("expected intersection (50,50 50x50), is %v", is)
	}
	if u := a.Union(b); u != R(0, 0, 150, 150) {
		t.Errorf("expected union (0,0 150x150), is %v", u)
	}
	if a.Intersects(R(100, 0, 10, 10)) {
		t.Errorf("expected rectangles sharing an edge not to intersect")
	}
	if !R(0, 0, 0, 10).IsEmpty() || R(0, 0, 0, 10).Intersects(a) {
		t.Errorf("expected zero-width rectangle to be empty")
	}
	if u := (Rect{}).Union(b); u != b {
		t.Errorf("expected empty rectangle not to contribute to union, is %v", u)
	}
	for _, r := range []Rect{R(math.NaN(), 0, 1, 1), R(0, 0, -1, 1), R(0, math.Inf(1), 1, 1)} {
		if r.IsValid() {
			t.Errorf("expected %v to be invalid", r)
		}
	}
	if !R(-5, -5, 0, 0).IsValid() {
		t.Errorf("expected empty rectangle at negative origin to be valid")
	}
}

func TestZeroTransformIsIdentity(t *testing.T) {
	var tf Transform
	if !tf.IsIdentity() {
		t.Errorf("expected zero transform to be the identity, is %v", tf)
	}
	if x, y := tf.Apply(3, 4); x != 3 || y != 4 {
		t.Errorf("expected (3,4), is (%g,%g)", x, y)
	}
}

func TestTransformComposition(t *testing.T) {
	tf := Scale(2, 3).Then(Translate(10, 20))
	if x, y := tf.Apply(1, 1); x != 12 || y != 23 {
		t.Errorf("expected scale then translate to map (1,1) to (12,23), is (%g,%g)", x, y)
	}
	tf = Translate(10, 20).Then(Scale(2, 3))
	if x, y := tf.Apply(1, 1); x != 22 || y != 63 {
		t.Errorf("expected translate then scale to map (1,1) to (22,63), is (%g,%g)", x, y)
	}
	inv, ok := Rotate(0.7).Then(Translate(5, -3)).Invert()
	if !ok {
		t.Fatalf("expected transform to be invertible")
	}
	x, y := Rotate(0.7).Then(Translate(5, -3)).Apply(17, 11)
	x, y = inv.Apply(x, y)
	if math.Abs(x-17) > 1e-9 || math.Abs(y-11) > 1e-9 {
		t.Errorf("expected inverse to map back to (17,11), is (%g,%g)", x, y)
	}
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Errorf("expected singular transform not to be invertible")
	}
}

func TestBoundingBoxOfRotation(t *testing.T) {
	box := Rotate(math.Pi / 2).BoundingBox(R(0, 0, 10, 20))
	want := R(-20, 0, 20, 10)
	if math.Abs(box.X-want.X) > 1e-9 || math.Abs(box.Y-want.Y) > 1e-9 ||
		math.Abs(box.W-want.W) > 1e-9 || math.Abs(box.H-want.H) > 1e-9 {
		t.Errorf("expected bounding box %v, is %v", want, box)
	}
	box = Rotate(math.Pi / 4).BoundingBox(R(-1, -1, 2, 2))
	if d := math.Sqrt2; math.Abs(box.W-2*d) > 1e-9 || math.Abs(box.X+d) > 1e-9 {
		t.Errorf("expected 45° bounding box of width 2√2, is %v", box)
	}
}
