package composite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Rect is an axis-aligned rectangle with origin (X,Y) at the top left.
type Rect struct {
	X, Y, W, H float64
}

// R is a shortcut for creating a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// IsEmpty is a predicate: does r have no area?
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// IsValid is a predicate: are all coordinates finite and the extent
// non-negative?
func (r Rect) IsValid() bool {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.W >= 0 && r.H >= 0
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains is a predicate: is (x,y) inside r? The right and bottom edges
// are not part of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects is a predicate: do r and s share a region of positive area?
func (r Rect) Intersects(s Rect) bool {
	return !r.IsEmpty() && !s.IsEmpty() &&
		r.X < s.Right() && s.X < r.Right() &&
		r.Y < s.Bottom() && s.Y < r.Bottom()
}

// Intersect returns the intersection of r and s, which may be empty.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := math.Max(r.X, s.X), math.Max(r.Y, s.Y)
	x1, y1 := math.Min(r.Right(), s.Right()), math.Min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle enclosing r and s. Empty rectangles
// do not contribute.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	x0, y0 := math.Min(r.X, s.X), math.Min(r.Y, s.Y)
	x1, y1 := math.Max(r.Right(), s.Right()), math.Max(r.Bottom(), s.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// --- Affine transforms -----------------------------------------------------

// Transform is a 2D affine transform. It wraps a row-major 2×3 matrix
// [a b c; d e f], mapping (x,y) to (a·x + b·y + c, d·x + e·y + f).
//
// The zero value is the identity transform.
type Transform struct {
	m     f64.Aff3
	valid bool // false for the zero value
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, 1, 0}, valid: true}
}

// Matrix creates a transform from the six matrix coefficients.
func Matrix(a, b, c, d, e, f float64) Transform {
	return Transform{m: f64.Aff3{a, b, c, d, e, f}, valid: true}
}

// Translate returns a translation by (dx,dy).
func Translate(dx, dy float64) Transform {
	return Matrix(1, 0, dx, 0, 1, dy)
}

// Scale returns a scaling by (sx,sy) around the origin.
func Scale(sx, sy float64) Transform {
	return Matrix(sx, 0, 0, 0, sy, 0)
}

// Rotate returns a clockwise rotation around the origin (y pointing down),
// with angle θ given in radians.
func Rotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Matrix(cos, -sin, 0, sin, cos, 0)
}

// Aff3 returns the matrix of t.
func (t Transform) Aff3() f64.Aff3 {
	if !t.valid {
		return f64.Aff3{1, 0, 0, 0, 1, 0}
	}
	return t.m
}

// IsIdentity is a predicate.
func (t Transform) IsIdentity() bool {
	return t.Aff3() == f64.Aff3{1, 0, 0, 0, 1, 0}
}

// Then returns the transform applying t first and u second.
func (t Transform) Then(u Transform) Transform {
	p, q := t.Aff3(), u.Aff3()
	return Matrix(
		q[0]*p[0]+q[1]*p[3], q[0]*p[1]+q[1]*p[4], q[0]*p[2]+q[1]*p[5]+q[2],
		q[3]*p[0]+q[4]*p[3], q[3]*p[1]+q[4]*p[4], q[3]*p[2]+q[4]*p[5]+q[5],
	)
}

// Apply maps a point through t.
func (t Transform) Apply(x, y float64) (float64, float64) {
	m := t.Aff3()
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Invert returns the inverse of t. It returns false if t is singular or
// has non-finite coefficients.
func (t Transform) Invert() (Transform, bool) {
	m := t.Aff3()
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Transform{}, false
	}
	a, b, d, e := m[4]/det, -m[1]/det, -m[3]/det, m[0]/det
	return Matrix(a, b, -(a*m[2] + b*m[5]), d, e, -(d*m[2] + e*m[5])), true
}

// BoundingBox returns the axis-aligned rectangle enclosing the four
// transformed corners of r.
func (t Transform) BoundingBox(r Rect) Rect {
	if t.IsIdentity() {
		return r
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{r.X, r.Y}, {r.Right(), r.Y}, {r.X, r.Bottom()}, {r.Right(), r.Bottom()}} {
		x, y := t.Apply(c[0], c[1])
		x0, y0 = math.Min(x0, x), math.Min(y0, y)
		x1, y1 = math.Max(x1, x), math.Max(y1, y)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (t Transform) String() string {
	m := t.Aff3()
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// --- Pixel rectangles ------------------------------------------------------

// pixRect is a rectangle of whole pixels, [x0,x1) × [y0,y1).
type pixRect struct {
	x0, y0, x1, y1 int
}

func (p pixRect) empty() bool {
	return p.x1 <= p.x0 || p.y1 <= p.y0
}

func (p pixRect) width() int  { return p.x1 - p.x0 }
func (p pixRect) height() int { return p.y1 - p.y0 }

func (p pixRect) overlaps(q pixRect) bool {
	return !p.empty() && !q.empty() &&
		p.x0 < q.x1 && q.x0 < p.x1 && p.y0 < q.y1 && q.y0 < p.y1
}

func (p pixRect) union(q pixRect) pixRect {
	if p.empty() {
		return q
	}
	if q.empty() {
		return p
	}
	return pixRect{minInt(p.x0, q.x0), minInt(p.y0, q.y0), maxInt(p.x1, q.x1), maxInt(p.y1, q.y1)}
}

func (p pixRect) clip(q pixRect) pixRect {
	r := pixRect{maxInt(p.x0, q.x0), maxInt(p.y0, q.y0), minInt(p.x1, q.x1), minInt(p.y1, q.y1)}
	if r.empty() {
		return pixRect{}
	}
	return r
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
