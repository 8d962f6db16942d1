package vgmesh

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/matrix"
)

// Transform is a 2D affine transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transform struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// Translate creates a translation transform.
func Translate(x, y float32) Transform {
	return Transform{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling transform.
func Scale(x, y float32) Transform {
	return Transform{A: x, E: y}
}

// Rotate creates a rotation transform (angle in radians).
func Rotate(angle float32) Transform {
	sin, cos := math32.Sincos(angle)
	return Transform{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply returns t * o, which applies o first and then t.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.B*o.D,
		B: t.A*o.B + t.B*o.E,
		C: t.A*o.C + t.B*o.F + t.C,
		D: t.D*o.A + t.E*o.D,
		E: t.D*o.B + t.E*o.E,
		F: t.D*o.C + t.E*o.F + t.F,
	}
}

// Apply transforms the point (x, y).
func (t Transform) Apply(x, y float32) Vec2 {
	return Vec2{
		X: t.A*x + t.B*y + t.C,
		Y: t.D*x + t.E*y + t.F,
	}
}

// ApplyVector transforms a direction, ignoring translation.
func (t Transform) ApplyVector(v Vec2) Vec2 {
	return Vec2{
		X: t.A*v.X + t.B*v.Y,
		Y: t.D*v.X + t.E*v.Y,
	}
}

// Invert returns the inverse transform, or the identity if t is singular.
func (t Transform) Invert() Transform {
	det := t.A*t.E - t.B*t.D
	if math32.Abs(det) < 1e-10 {
		return Identity()
	}
	inv := 1 / det
	return Transform{
		A: t.E * inv,
		B: -t.B * inv,
		C: (t.B*t.F - t.C*t.E) * inv,
		D: -t.D * inv,
		E: t.A * inv,
		F: (t.C*t.D - t.A*t.F) * inv,
	}
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// AverageScale returns the mean length of the transformed unit axes.
// Stroke widths given in user space are multiplied by it.
func (t Transform) AverageScale() float32 {
	sx := math32.Hypot(t.A, t.D)
	sy := math32.Hypot(t.B, t.E)
	return (sx + sy) * 0.5
}

// CacheKey returns a 64-bit FNV-1a hash of the coefficient bit patterns.
// Transforms that compare equal bit for bit always share a key.
func (t Transform) CacheKey() uint64 {
	var buf [24]byte
	for i, v := range [6]float32{t.A, t.B, t.C, t.D, t.E, t.F} {
		binary.LittleEndian.PutUint32(buf[i*4:], math32.Float32bits(v))
	}
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// Aff3 converts t to the row-major affine matrix used by golang.org/x/image.
func (t Transform) Aff3() f32.Aff3 {
	return f32.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
}

// TransformFromAff3 converts a golang.org/x/image affine matrix.
func TransformFromAff3(m f32.Aff3) Transform {
	return Transform{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
}

// TransformFromMatrix converts a PDF-style column matrix
// [a b c d e f] (x' = a*x + c*y + e) from seehuhn.de/go/geom.
func TransformFromMatrix(m matrix.Matrix) Transform {
	return Transform{
		A: float32(m[0]), B: float32(m[2]), C: float32(m[4]),
		D: float32(m[1]), E: float32(m[3]), F: float32(m[5]),
	}
}

// Matrix converts t to a seehuhn.de/go/geom matrix.
func (t Transform) Matrix() matrix.Matrix {
	return matrix.Matrix{
		float64(t.A), float64(t.D),
		float64(t.B), float64(t.E),
		float64(t.C), float64(t.F),
	}
}
