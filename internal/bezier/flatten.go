// Package bezier flattens cubic Bezier curves into polylines.
//
// Subdivision uses an explicit worklist instead of recursion so that deep
// splits never grow the goroutine stack. The visiting order is identical to
// a depth-first recursive de Casteljau split, so emitted points come out in
// curve order.
package bezier

import "github.com/chewxy/math32"

// MaxDepth is the deepest subdivision level, so one curve flattens to at
// most 2^10 segments. A piece still not flat at this level is accepted as a
// chord and its endpoint is emitted. Stopping here rather than one level
// deeper and then dropping the point keeps every curve ending exactly on
// its endpoint.
const MaxDepth = 10

// Point is a 2D point (internal copy to avoid an import cycle).
type Point struct {
	X, Y float32
}

// Cubic is a cubic Bezier curve given by its four control points.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Split subdivides the curve at t = 0.5.
func (c Cubic) Split() (left, right Cubic) {
	p01 := mid(c.P0, c.P1)
	p12 := mid(c.P1, c.P2)
	p23 := mid(c.P2, c.P3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)

	left = Cubic{P0: c.P0, P1: p01, P2: p012, P3: p0123}
	right = Cubic{P0: p0123, P1: p123, P2: p23, P3: c.P3}
	return left, right
}

// Eval returns the point on the curve at parameter t.
func (c Cubic) Eval(t float32) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// IsFlat reports whether the curve is within tol of its chord.
//
// d2 and d3 are the cross products of the inner control points with the
// chord, i.e. their perpendicular distances scaled by the chord length, so
// the comparison against tol·|chord|² needs no square root.
func (c Cubic) IsFlat(tol float32) bool {
	dx := c.P3.X - c.P0.X
	dy := c.P3.Y - c.P0.Y
	d2 := math32.Abs((c.P1.X-c.P3.X)*dy - (c.P1.Y-c.P3.Y)*dx)
	d3 := math32.Abs((c.P2.X-c.P3.X)*dy - (c.P2.Y-c.P3.Y)*dx)
	return (d2+d3)*(d2+d3) < tol*(dx*dx+dy*dy)
}

// item is a pending curve on the worklist.
type item struct {
	curve Cubic
	depth int
	last  bool // curve ends at the original endpoint
}

// Flattener converts cubics to points. The zero value is ready to use and
// its worklist is reused across calls.
type Flattener struct {
	stack []item
}

// Flatten emits the points approximating c, excluding c.P0. The emit
// callback receives last = true for the original endpoint only.
func (f *Flattener) Flatten(c Cubic, tol float32, emit func(p Point, last bool)) {
	f.stack = append(f.stack[:0], item{curve: c, last: true})
	for len(f.stack) > 0 {
		it := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		if it.depth >= MaxDepth || it.curve.IsFlat(tol) {
			emit(it.curve.P3, it.last)
			continue
		}

		left, right := it.curve.Split()
		// Right half is pushed first so the left half is processed first.
		f.stack = append(f.stack,
			item{curve: right, depth: it.depth + 1, last: it.last},
			item{curve: left, depth: it.depth + 1},
		)
	}
}

// CurveDivisions returns how many segments an arc of the given radius and
// angle needs so the chordal error stays below tol.
func CurveDivisions(radius, arc, tol float32) int {
	da := math32.Acos(radius/(radius+tol)) * 2
	n := int(math32.Ceil(arc / da))
	if n < 2 {
		return 2
	}
	return n
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}
