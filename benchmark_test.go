package vgmesh

import (
	"testing"

	"github.com/chewxy/math32"
)

// scenePath records n rounded rectangles and circles laid out on a grid,
// roughly what a UI frame submits.
func scenePath(n int) *Path {
	p := NewPath()
	for i := range n {
		x := float32(i%20) * 50
		y := float32(i/20) * 50
		if i%2 == 0 {
			p.RoundedRect(x, y, 40, 30, 6)
		} else {
			p.Circle(x+20, y+20, 18)
		}
	}
	return p
}

// BenchmarkPipeline measures tessellation plus fill and stroke mesh
// generation for scenes of various sizes.
func BenchmarkPipeline(b *testing.B) {
	sizes := []struct {
		name   string
		shapes int
	}{
		{"10", 10},
		{"100", 100},
		{"1000", 1000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			p := scenePath(size.shapes)
			tess := NewTessellator()
			mb := NewMeshBuilder()
			fill := DefaultFillParams()
			stroke := DefaultStrokeParams().WithWidth(2)
			xf := Rotate(math32.Pi / 12)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				c := tess.Tessellate(p, xf, DefaultTolerances())
				mb.Fill(c, fill)
				mb.Stroke(c, stroke)
			}
		})
	}
}

// BenchmarkPipelineCached alternates between cache hits and rebuilds, the
// trade-off of keeping one slot per path.
func BenchmarkPipelineCached(b *testing.B) {
	cases := []struct {
		name      string
		alternate bool
	}{
		{"stable", false},
		{"alternating", true},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			p := scenePath(100)
			cache := NewCache()
			t1, t2 := Identity(), Translate(0.5, 0)
			i := 0
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				xf := t1
				if tc.alternate && i%2 == 1 {
					xf = t2
				}
				cache.GetOrBuild(p, xf, Tolerances{})
				i++
			}
		})
	}
}
