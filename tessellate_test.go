package vgmesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectPath(x, y, w, h float32) *Path {
	p := NewPath()
	p.Rect(x, y, w, h)
	return p
}

// starPath records a five-pointed star drawn as a single self-intersecting
// contour around (cx, cy).
func starPath(cx, cy, r float32) *Path {
	p := NewPath()
	for k := range 5 {
		a := -math32.Pi/2 + float32(k)*4*math32.Pi/5
		x, y := cx+r*math32.Cos(a), cy+r*math32.Sin(a)
		if k == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// pentagram returns the five-point star drawn through its vertices in
// skip-one order.
func pentagram() *Path {
	p := linePath(50, 0, 21, 90, 98, 35, 2, 35, 79, 90)
	p.Close()
	return p
}

func tessellate(p *Path) *Contours {
	return NewTessellator().Tessellate(p, Identity(), DefaultTolerances())
}

func TestTessellate_Rect(t *testing.T) {
	c := tessellate(rectPath(0, 0, 100, 100))

	require.Equal(t, 1, c.Len())
	ct := c.List[0]
	assert.Len(t, ct.Points, 4)
	assert.True(t, ct.Closed)
	assert.Equal(t, Convex, ct.Convexity)
	assert.InDelta(t, 10000, ct.Area(), 1e-3)
	assert.Equal(t, Bounds{0, 0, 100, 100}, c.Bounds)
	assert.True(t, c.IsConvex())

	for i, pt := range ct.Points {
		assert.True(t, pt.Flags.Has(PointCorner), "point %d", i)
		assert.True(t, pt.Flags.Has(PointLeftTurn), "point %d", i)
		assert.InDelta(t, 100, pt.Len, 1e-4)
		assert.InDelta(t, 1, pt.Dir.Length(), 1e-5)
	}
}

func TestTessellate_Star(t *testing.T) {
	tests := []struct {
		name string
		path *Path
	}{
		{"generated", starPath(50, 50, 50)},
		{"pentagram", pentagram()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tessellate(tt.path)

			require.Equal(t, 1, c.Len())
			assert.Len(t, c.List[0].Points, 5)
			assert.True(t, c.List[0].Closed)
			assert.Equal(t, Concave, c.List[0].Convexity)
			assert.False(t, c.IsConvex())
		})
	}
}

func TestTessellate_Circle(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 100)
	c := tessellate(p)

	require.Equal(t, 1, c.Len())
	ct := c.List[0]
	assert.Equal(t, Convex, ct.Convexity)
	assert.Greater(t, len(ct.Points), 16)
	assert.Greater(t, ct.Area(), float32(0))

	// Flattened points lie on the curve, chord midpoints within the
	// tolerance of it.
	n := len(ct.Points)
	for i, pt := range ct.Points {
		assert.InDelta(t, 100, pt.Pos.Length(), 0.05, "point %d", i)
		mid := pt.Pos.Lerp(ct.Points[(i+1)%n].Pos, 0.5)
		assert.Greater(t, mid.Length(), float32(100-0.6), "chord %d", i)
	}
}

func TestTessellate_TighterToleranceAddsPoints(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 100)
	tess := NewTessellator()

	coarse := tess.Tessellate(p, Identity(), Tolerances{Tess: 1, Dist: 0.01}).PointCount()
	fine := tess.Tessellate(p, Identity(), Tolerances{Tess: 0.01, Dist: 0.01}).PointCount()
	assert.Greater(t, fine, coarse)
}

func TestTessellate_Idempotent(t *testing.T) {
	p := NewPath()
	p.RoundedRect(10, 10, 200, 100, 20)
	p.Circle(300, 300, 40)

	tess := NewTessellator()
	first := tess.Tessellate(p, Rotate(0.3), DefaultTolerances()).Clone()
	second := tess.Tessellate(p, Rotate(0.3), DefaultTolerances())
	assert.Equal(t, first, second)
}

func TestTessellate_Winding(t *testing.T) {
	tests := []struct {
		name     string
		solidity Solidity
		positive bool
	}{
		{"default", SolidityDefault, true},
		{"solid", Solid, true},
		{"hole", Hole, false},
	}
	for _, tt := range tests {
		for _, ccw := range []bool{false, true} {
			p := NewPath()
			p.MoveTo(0, 0)
			if ccw {
				p.LineTo(100, 0)
				p.LineTo(100, 100)
				p.LineTo(0, 100)
			} else {
				p.LineTo(0, 100)
				p.LineTo(100, 100)
				p.LineTo(100, 0)
			}
			p.Close()
			p.SetSolidity(tt.solidity)

			c := tessellate(p)
			require.Equal(t, 1, c.Len(), tt.name)
			area := c.List[0].Area()
			if tt.positive {
				assert.Greater(t, area, float32(0), "%s ccw=%v", tt.name, ccw)
			} else {
				assert.Less(t, area, float32(0), "%s ccw=%v", tt.name, ccw)
			}
		}
	}
}

func TestTessellate_HoleSolidity(t *testing.T) {
	p := rectPath(0, 0, 100, 100)
	p.Rect(25, 25, 50, 50)
	p.SetSolidity(Hole)

	c := tessellate(p)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, SolidityDefault, c.List[0].Solidity)
	assert.Equal(t, Hole, c.List[1].Solidity)
	assert.Greater(t, c.List[0].Area(), float32(0))
	assert.Less(t, c.List[1].Area(), float32(0))
}

func TestTessellate_PendingSolidity(t *testing.T) {
	p := NewPath()
	p.SetSolidity(Hole)
	p.Rect(0, 0, 10, 10)
	p.Rect(20, 0, 10, 10)

	c := tessellate(p)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, Hole, c.List[0].Solidity)
	assert.Equal(t, SolidityDefault, c.List[1].Solidity)
}

func TestTessellate_MergesClosePoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(0.001, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	c := tessellate(p)
	require.Equal(t, 1, c.Len())
	assert.Len(t, c.List[0].Points, 3)
	assert.False(t, c.List[0].Closed)
}

func TestTessellate_DropsClosingPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(0, 10)
	p.LineTo(10, 10)
	p.LineTo(0.005, 0)

	c := tessellate(p)
	require.Equal(t, 1, c.Len())
	assert.Len(t, c.List[0].Points, 3)
	assert.True(t, c.List[0].Closed, "returning to the start closes the contour")
}

func TestTessellate_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
	}{
		{"empty", func(*Path) {}},
		{"single move", func(p *Path) { p.MoveTo(5, 5) }},
		{"zero length line", func(p *Path) { p.MoveTo(5, 5); p.LineTo(5, 5) }},
		{"close only", func(p *Path) { p.Close() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			c := tessellate(p)
			assert.Equal(t, 0, c.Len())
			assert.True(t, c.Bounds.IsEmpty())
		})
	}
}

func TestTessellate_ImplicitContour(t *testing.T) {
	p := NewPath()
	p.LineTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	c := tessellate(p)
	require.Equal(t, 1, c.Len())
	assert.Len(t, c.List[0].Points, 3)
}

func TestTessellate_BezierWithoutContourStartsAtControlPoint(t *testing.T) {
	p := NewPath()
	p.BezierTo(0, 0, 10, 0, 10, 10)

	c := tessellate(p)
	require.Equal(t, 1, c.Len())
	b := c.List[0].Bounds
	assert.InDelta(t, 0, b.MinX, 1e-4)
	assert.InDelta(t, 0, b.MinY, 1e-4)
	assert.InDelta(t, 10, b.MaxX, 1e-4)
	assert.InDelta(t, 10, b.MaxY, 1e-4)
}

func TestTessellate_Transform(t *testing.T) {
	p := rectPath(0, 0, 10, 10)

	tess := NewTessellator()
	c := tess.Tessellate(p, Scale(2, 3), DefaultTolerances())
	assert.Equal(t, Bounds{0, 0, 20, 30}, c.Bounds)
	assert.Equal(t, Scale(2, 3), c.Transform)

	c = tess.Tessellate(p, Translate(5, -5), DefaultTolerances())
	assert.Equal(t, Bounds{5, -5, 15, 5}, c.Bounds)
}

func TestTessellate_ZeroTolerancesUseDefaults(t *testing.T) {
	tess := NewTessellator(WithDevicePixelRatio(2))
	assert.Equal(t, TolerancesForDPR(2), tess.Tolerances())

	c := tess.Tessellate(rectPath(0, 0, 1, 1), Identity(), Tolerances{})
	assert.Equal(t, float32(0.125), c.Tolerances.Tess)
	assert.Equal(t, float32(0.005), c.Tolerances.Dist)

	var zero Tessellator
	assert.Equal(t, DefaultTolerances(), zero.Tolerances())
	assert.Equal(t, 1, zero.Tessellate(rectPath(0, 0, 1, 1), Identity(), Tolerances{}).Len())
}

func TestTolerancesForDPR(t *testing.T) {
	assert.Equal(t, Tolerances{Tess: 0.25, Dist: 0.01, Fringe: 1}, DefaultTolerances())
	assert.Equal(t, Tolerances{Tess: 0.125, Dist: 0.005, Fringe: 0.5}, TolerancesForDPR(2))
	assert.Equal(t, DefaultTolerances(), TolerancesForDPR(0))
	assert.Equal(t, DefaultTolerances(), TolerancesForDPR(-3))
}

func TestContours_Clone(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	p.Rect(20, 20, 10, 10)
	tess := NewTessellator()

	c := tess.Tessellate(p, Identity(), DefaultTolerances())
	clone := c.Clone()
	require.Equal(t, c, clone)

	tess.Tessellate(rectPath(-50, -50, 1, 1), Identity(), DefaultTolerances())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, V2(0, 0), clone.List[0].Points[0].Pos)
	assert.Equal(t, 8, clone.PointCount())
}

func TestConvexity_String(t *testing.T) {
	assert.Equal(t, "Convex", Convex.String())
	assert.Equal(t, "Concave", Concave.String())
	assert.Equal(t, "Unknown", ConvexityUnknown.String())
}

func BenchmarkTessellate(b *testing.B) {
	p := NewPath()
	p.RoundedRect(0, 0, 400, 300, 24)
	p.Circle(200, 150, 80)
	tess := NewTessellator()
	xf := Scale(2, 2)
	b.ReportAllocs()
	for b.Loop() {
		tess.Tessellate(p, xf, DefaultTolerances())
	}
}
