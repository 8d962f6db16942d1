package vgmesh

import "github.com/chewxy/math32"

// Vec2 is a 2D vector in float32, the precision of the vertex buffer.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude of the vector.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector and the original length.
// A vector shorter than 1e-6 is returned unchanged.
func (v Vec2) Normalize() (Vec2, float32) {
	d := v.Length()
	if d > 1e-6 {
		id := 1 / d
		return Vec2{X: v.X * id, Y: v.Y * id}, d
	}
	return v, d
}

// Ortho returns (Y, -X). For the edges of a contour with positive area it
// is the normal pointing into the shape.
func (v Vec2) Ortho() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Lerp linearly interpolates between v and w.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// Approx reports whether both vectors are within epsilon of each other.
func (v Vec2) Approx(w Vec2, epsilon float32) bool {
	return math32.Abs(v.X-w.X) < epsilon && math32.Abs(v.Y-w.Y) < epsilon
}

// Equals reports whether v and w are closer than tol.
func (v Vec2) Equals(w Vec2, tol float32) bool {
	d := v.Sub(w)
	return d.LengthSq() < tol*tol
}

// Bounds is an axis-aligned bounding box.
// The zero value is an empty box anchored at the origin; use EmptyBounds to
// start an accumulation.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float32
}

// EmptyBounds returns an inverted box that any Extend call replaces.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math32.MaxFloat32, MinY: math32.MaxFloat32,
		MaxX: -math32.MaxFloat32, MaxY: -math32.MaxFloat32,
	}
}

// IsEmpty reports whether the box contains no point.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Extend grows the box to include p.
func (b Bounds) Extend(p Vec2) Bounds {
	b.MinX = math32.Min(b.MinX, p.X)
	b.MinY = math32.Min(b.MinY, p.Y)
	b.MaxX = math32.Max(b.MaxX, p.X)
	b.MaxY = math32.Max(b.MaxY, p.Y)
	return b
}

// Union returns the smallest box containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Bounds{
		MinX: math32.Min(b.MinX, o.MinX),
		MinY: math32.Min(b.MinY, o.MinY),
		MaxX: math32.Max(b.MaxX, o.MaxX),
		MaxY: math32.Max(b.MaxY, o.MaxY),
	}
}

// Contains reports whether (x, y) lies inside the box, edges included.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float32 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Bounds) Height() float32 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}
