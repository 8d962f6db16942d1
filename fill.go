package vgmesh

import (
	"log/slog"

	"github.com/gogpu/gputypes"
)

// DefaultFillMiterLimit is the miter limit used for fill fringes.
const DefaultFillMiterLimit = 2.4

// FillParams configures fill mesh generation.
type FillParams struct {
	// FringeWidth is the antialiasing fringe width in device pixels,
	// typically 1/dpr.
	FringeWidth float32

	// AntiAlias enables the fringe. When false the fill edges are hard.
	AntiAlias bool

	// MiterLimit bounds fringe miters at sharp corners. Default: 2.4
	MiterLimit float32
}

// DefaultFillParams returns antialiased fill parameters for a device pixel
// ratio of 1.
func DefaultFillParams() FillParams {
	return FillParams{
		FringeWidth: 1,
		AntiAlias:   true,
		MiterLimit:  DefaultFillMiterLimit,
	}
}

// WithFringeWidth returns a copy with the given fringe width.
func (p FillParams) WithFringeWidth(w float32) FillParams {
	p.FringeWidth = w
	return p
}

// WithAntiAlias returns a copy with antialiasing switched on or off.
func (p FillParams) WithAntiAlias(aa bool) FillParams {
	p.AntiAlias = aa
	return p
}

// WithMiterLimit returns a copy with the given miter limit.
func (p FillParams) WithMiterLimit(limit float32) FillParams {
	p.MiterLimit = limit
	return p
}

// Fill builds the fill mesh of c.
//
// Every contour contributes a triangle-list interior fanned from its first
// vertex and, when antialiasing is on, a triangle-strip fringe. A single
// convex contour is drawn directly with half a fringe; anything else needs
// the stencil-cover protocol and gets a cover quad over the bounds.
//
// The returned mesh aliases the builder buffers until the next call.
func (b *MeshBuilder) Fill(c *Contours, params FillParams) *Mesh {
	b.reset()
	if c == nil || len(c.List) == 0 {
		return b.finish(ProtocolDirect, 1, 0)
	}

	miterLimit := params.MiterLimit
	if miterLimit <= 0 {
		miterLimit = DefaultFillMiterLimit
	}
	aa := params.FringeWidth
	var w float32
	if params.AntiAlias && aa > 0 {
		w = aa
	}
	fringe := w > 0
	woff := 0.5 * aa
	convex := c.IsConvex()

	views := b.copyPoints(c)
	for _, pts := range views {
		classifyJoins(pts, w, LineJoinMiter, miterLimit)
	}

	for ci, pts := range views {
		n := len(pts)

		off := b.beginRange()
		if fringe {
			for i := range n {
				p0 := &pts[(i+n-1)%n]
				p1 := &pts[i]
				if p1.Flags&PointBevel != 0 && p1.Flags&PointLeftTurn == 0 {
					l0 := p1.Pos.Add(p0.Dir.Ortho().Mul(woff))
					l1 := p1.Pos.Add(p1.Dir.Ortho().Mul(woff))
					b.vertex(l0.X, l0.Y, 0.5, 1)
					b.vertex(l1.X, l1.Y, 0.5, 1)
				} else {
					m := p1.Pos.Add(p1.Miter.Mul(woff))
					b.vertex(m.X, m.Y, 0.5, 1)
				}
			}
		} else {
			for i := range pts {
				b.vertex(pts[i].Pos.X, pts[i].Pos.Y, 0.5, 1)
			}
		}
		b.fanToList(off)
		b.endRange(RangeFill, off, ci, gputypes.PrimitiveTopologyTriangleList)

		if !fringe {
			continue
		}

		lw, rw := w+woff, w-woff
		var lu, ru float32 = 0, 1
		if convex {
			lw = woff
			lu = 0.5
		}

		off = b.beginRange()
		for i := range n {
			p0 := &pts[(i+n-1)%n]
			p1 := &pts[i]
			if p1.Flags&(PointBevel|PointInnerBevel) != 0 {
				b.bevelJoin(p0, p1, lw, rw, lu, ru)
			} else {
				l := p1.Pos.Add(p1.Miter.Mul(lw))
				r := p1.Pos.Sub(p1.Miter.Mul(rw))
				b.vertex(l.X, l.Y, lu, 1)
				b.vertex(r.X, r.Y, ru, 1)
			}
		}
		first, second := b.verts[off], b.verts[off+1]
		b.vertex(first.X, first.Y, lu, 1)
		b.vertex(second.X, second.Y, ru, 1)
		b.endRange(RangeFringe, off, ci, gputypes.PrimitiveTopologyTriangleStrip)
	}

	protocol := ProtocolDirect
	if !convex {
		protocol = ProtocolStencilCover
		bb := c.Bounds
		off := b.beginRange()
		b.vertex(bb.MaxX, bb.MaxY, 0.5, 1)
		b.vertex(bb.MaxX, bb.MinY, 0.5, 1)
		b.vertex(bb.MinX, bb.MaxY, 0.5, 1)
		b.vertex(bb.MinX, bb.MinY, 0.5, 1)
		b.endRange(RangeCover, off, -1, gputypes.PrimitiveTopologyTriangleStrip)
	}

	if debugEnabled() {
		Logger().Debug("vgmesh: fill mesh",
			slog.Int("contours", len(c.List)),
			slog.Int("vertices", len(b.verts)),
			slog.String("protocol", protocol.String()),
		)
	}
	return b.finish(protocol, 1, 0)
}

// fanToList rewrites the polygon vertices appended since off as a
// triangle list fanned from the first one, since WebGPU has no fan
// topology.
func (b *MeshBuilder) fanToList(off int) {
	n := len(b.verts) - off
	if n < 3 {
		b.verts = b.verts[:off]
		return
	}
	b.scratchVerts = append(b.scratchVerts[:0], b.verts[off:]...)
	b.verts = b.verts[:off]
	for i := 1; i < n-1; i++ {
		b.verts = append(b.verts, b.scratchVerts[0], b.scratchVerts[i], b.scratchVerts[i+1])
	}
}
