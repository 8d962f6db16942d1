package vgmesh

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vgmesh/internal/bezier"
)

// DefaultStrokeMiterLimit is the default miter limit for strokes.
const DefaultStrokeMiterLimit = 10

// StrokeParams configures stroke mesh generation.
// Widths are in device pixels; multiply user-space widths by
// Transform.AverageScale.
type StrokeParams struct {
	// Width is the full stroke width. Default: 1.0
	Width float32

	// FringeWidth is the antialiasing fringe width, typically 1/dpr.
	FringeWidth float32

	// AntiAlias enables coverage blending across the rails.
	AntiAlias bool

	// StartCap and EndCap shape the two ends of open contours.
	StartCap LineCap
	EndCap   LineCap

	// Join is the shape of corners. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the ratio at which miter joins become bevels.
	// Default: 10
	MiterLimit float32

	// TessTol bounds the chordal error of round caps and joins.
	// Default: 0.25
	TessTol float32
}

// DefaultStrokeParams returns a 1-pixel antialiased stroke with butt caps
// and miter joins.
func DefaultStrokeParams() StrokeParams {
	return StrokeParams{
		Width:       1,
		FringeWidth: 1,
		AntiAlias:   true,
		StartCap:    LineCapButt,
		EndCap:      LineCapButt,
		Join:        LineJoinMiter,
		MiterLimit:  DefaultStrokeMiterLimit,
		TessTol:     0.25,
	}
}

// WithWidth returns a copy with the given width.
func (s StrokeParams) WithWidth(w float32) StrokeParams {
	s.Width = w
	return s
}

// WithCap returns a copy using lineCap at both ends.
func (s StrokeParams) WithCap(lineCap LineCap) StrokeParams {
	s.StartCap = lineCap
	s.EndCap = lineCap
	return s
}

// WithCaps returns a copy with separate start and end caps.
func (s StrokeParams) WithCaps(start, end LineCap) StrokeParams {
	s.StartCap = start
	s.EndCap = end
	return s
}

// WithJoin returns a copy with the given join style.
func (s StrokeParams) WithJoin(join LineJoin) StrokeParams {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s StrokeParams) WithMiterLimit(limit float32) StrokeParams {
	s.MiterLimit = limit
	return s
}

// WithFringeWidth returns a copy with the given fringe width.
func (s StrokeParams) WithFringeWidth(w float32) StrokeParams {
	s.FringeWidth = w
	return s
}

// WithAntiAlias returns a copy with antialiasing switched on or off.
func (s StrokeParams) WithAntiAlias(aa bool) StrokeParams {
	s.AntiAlias = aa
	return s
}

// WithTolerances returns a copy using the fringe width and flattening
// tolerance of tol.
func (s StrokeParams) WithTolerances(tol Tolerances) StrokeParams {
	s.FringeWidth = tol.Fringe
	s.TessTol = tol.Tess
	return s
}

// EffectiveStroke applies the hairline policy: a stroke thinner than the
// fringe is drawn at fringe width with its alpha scaled by
// (width/fringe)². It returns the width to draw and the alpha scale.
func EffectiveStroke(width, fringe float32) (float32, float32) {
	if width < 0 {
		width = 0
	}
	if fringe <= 0 || width >= fringe {
		return width, 1
	}
	a := width / fringe
	return fringe, a * a
}

// Stroke builds the stroke mesh of c: one triangle-strip range per
// contour. Open contours get caps, closed contours loop back onto their
// first rail pair.
//
// The returned mesh aliases the builder buffers until the next call.
func (b *MeshBuilder) Stroke(c *Contours, params StrokeParams) *Mesh {
	b.reset()

	width, alpha := EffectiveStroke(params.Width, params.FringeWidth)
	if alpha < 1 && debugEnabled() {
		Logger().Debug("vgmesh: stroke below fringe width",
			slog.Float64("requested", float64(params.Width)),
			slog.Float64("width", float64(width)),
			slog.Float64("alpha", float64(alpha)),
		)
	}
	if c == nil || len(c.List) == 0 || width <= 0 {
		return b.finish(ProtocolDirect, alpha, width)
	}

	miterLimit := params.MiterLimit
	if miterLimit <= 0 {
		miterLimit = DefaultStrokeMiterLimit
	}
	tessTol := params.TessTol
	if tessTol <= 0 {
		tessTol = DefaultTolerances().Tess
	}

	var aa float32
	if params.AntiAlias {
		aa = params.FringeWidth
	}
	var u0, u1 float32 = 0, 1
	if aa == 0 {
		u0, u1 = 0.5, 0.5
	}
	w := width*0.5 + aa*0.5
	ncap := bezier.CurveDivisions(w, math32.Pi, tessTol)

	views := b.copyPoints(c)
	for _, pts := range views {
		classifyJoins(pts, w, params.Join, miterLimit)
	}

	for ci, pts := range views {
		closed := c.List[ci].Closed
		startCap, endCap := params.StartCap, params.EndCap
		if c.List[ci].Reversed {
			startCap, endCap = endCap, startCap
		}
		n := len(pts)
		off := b.beginRange()

		var p0, p1 *Point
		var s, e int
		if closed {
			p0, p1 = &pts[n-1], &pts[0]
			s, e = 0, n
		} else {
			p0, p1 = &pts[0], &pts[1]
			s, e = 1, n-1
			d, _ := p1.Pos.Sub(p0.Pos).Normalize()
			b.capStart(p0, d, w, aa, u0, u1, startCap, ncap)
		}

		for j := s; j < e; j++ {
			if p1.Flags&(PointBevel|PointInnerBevel) != 0 {
				if params.Join == LineJoinRound {
					b.roundJoin(p0, p1, w, w, u0, u1, ncap)
				} else {
					b.bevelJoin(p0, p1, w, w, u0, u1)
				}
			} else {
				l := p1.Pos.Add(p1.Miter.Mul(w))
				r := p1.Pos.Sub(p1.Miter.Mul(w))
				b.vertex(l.X, l.Y, u0, 1)
				b.vertex(r.X, r.Y, u1, 1)
			}
			p0 = p1
			if j+1 < n {
				p1 = &pts[j+1]
			}
		}

		if closed {
			first, second := b.verts[off], b.verts[off+1]
			b.vertex(first.X, first.Y, u0, 1)
			b.vertex(second.X, second.Y, u1, 1)
		} else {
			d, _ := p1.Pos.Sub(p0.Pos).Normalize()
			b.capEnd(p1, d, w, aa, u0, u1, endCap, ncap)
		}
		b.endRange(RangeStroke, off, ci, gputypes.PrimitiveTopologyTriangleStrip)
	}

	if debugEnabled() {
		Logger().Debug("vgmesh: stroke mesh",
			slog.Int("contours", len(c.List)),
			slog.Int("vertices", len(b.verts)),
			slog.Int("capSegments", ncap),
		)
	}
	return b.finish(ProtocolDirect, alpha, width)
}

// capStart emits the cap at p, where d is the unit direction into the
// stroke.
func (b *MeshBuilder) capStart(p *Point, d Vec2, w, aa, u0, u1 float32, lineCap LineCap, ncap int) {
	switch lineCap {
	case LineCapRound:
		b.roundCapStart(p, d, w, u0, u1, ncap)
	case LineCapSquare:
		b.buttCapStart(p, d, w, w-aa, aa, u0, u1)
	default:
		b.buttCapStart(p, d, w, -aa*0.5, aa, u0, u1)
	}
}

// capEnd emits the cap at p, where d is the unit direction out of the
// stroke.
func (b *MeshBuilder) capEnd(p *Point, d Vec2, w, aa, u0, u1 float32, lineCap LineCap, ncap int) {
	switch lineCap {
	case LineCapRound:
		b.roundCapEnd(p, d, w, u0, u1, ncap)
	case LineCapSquare:
		b.buttCapEnd(p, d, w, w-aa, aa, u0, u1)
	default:
		b.buttCapEnd(p, d, w, -aa*0.5, aa, u0, u1)
	}
}

// buttCapStart emits a flat end pushed back by ext along -d, with a fringe
// of width aa fading to V = 0.
func (b *MeshBuilder) buttCapStart(p *Point, d Vec2, w, ext, aa, u0, u1 float32) {
	px := p.Pos.X - d.X*ext
	py := p.Pos.Y - d.Y*ext
	dl := d.Ortho()
	b.vertex(px+dl.X*w-d.X*aa, py+dl.Y*w-d.Y*aa, u0, 0)
	b.vertex(px-dl.X*w-d.X*aa, py-dl.Y*w-d.Y*aa, u1, 0)
	b.vertex(px+dl.X*w, py+dl.Y*w, u0, 1)
	b.vertex(px-dl.X*w, py-dl.Y*w, u1, 1)
}

func (b *MeshBuilder) buttCapEnd(p *Point, d Vec2, w, ext, aa, u0, u1 float32) {
	px := p.Pos.X + d.X*ext
	py := p.Pos.Y + d.Y*ext
	dl := d.Ortho()
	b.vertex(px+dl.X*w, py+dl.Y*w, u0, 1)
	b.vertex(px-dl.X*w, py-dl.Y*w, u1, 1)
	b.vertex(px+dl.X*w+d.X*aa, py+dl.Y*w+d.Y*aa, u0, 0)
	b.vertex(px-dl.X*w+d.X*aa, py-dl.Y*w+d.Y*aa, u1, 0)
}

// roundCapStart emits a half-circle fan of ncap spokes around p.
func (b *MeshBuilder) roundCapStart(p *Point, d Vec2, w, u0, u1 float32, ncap int) {
	px, py := p.Pos.X, p.Pos.Y
	dl := d.Ortho()
	for i := range ncap {
		a := float32(i) / float32(ncap-1) * math32.Pi
		sin, cos := math32.Sincos(a)
		ax, ay := cos*w, sin*w
		b.vertex(px-dl.X*ax-d.X*ay, py-dl.Y*ax-d.Y*ay, u0, 1)
		b.vertex(px, py, 0.5, 1)
	}
	b.vertex(px+dl.X*w, py+dl.Y*w, u0, 1)
	b.vertex(px-dl.X*w, py-dl.Y*w, u1, 1)
}

func (b *MeshBuilder) roundCapEnd(p *Point, d Vec2, w, u0, u1 float32, ncap int) {
	px, py := p.Pos.X, p.Pos.Y
	dl := d.Ortho()
	b.vertex(px+dl.X*w, py+dl.Y*w, u0, 1)
	b.vertex(px-dl.X*w, py-dl.Y*w, u1, 1)
	for i := range ncap {
		a := float32(i) / float32(ncap-1) * math32.Pi
		sin, cos := math32.Sincos(a)
		ax, ay := cos*w, sin*w
		b.vertex(px, py, 0.5, 1)
		b.vertex(px-dl.X*ax+d.X*ay, py-dl.Y*ax+d.Y*ay, u0, 1)
	}
}
