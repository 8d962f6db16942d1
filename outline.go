package vgmesh

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"seehuhn.de/go/geom/path"
)

// ErrUnsupportedSegment is returned by the importers for segment kinds
// they cannot translate to path verbs.
var ErrUnsupportedSegment = errors.New("vgmesh: unsupported outline segment")

// AppendSFNTSegments appends a glyph outline loaded with
// golang.org/x/image/font/sfnt. Coordinates are 26.6 fixed point in y-down
// space and are multiplied by scale. Every contour is closed.
func (p *Path) AppendSFNTSegments(segs sfnt.Segments, scale float32) error {
	const inv = 1.0 / 64
	open := false
	for i, s := range segs {
		x0 := float32(s.Args[0].X) * inv * scale
		y0 := float32(s.Args[0].Y) * inv * scale
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(x0, y0)
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(x0, y0)
		case sfnt.SegmentOpQuadTo:
			x1 := float32(s.Args[1].X) * inv * scale
			y1 := float32(s.Args[1].Y) * inv * scale
			p.QuadTo(x0, y0, x1, y1)
		case sfnt.SegmentOpCubeTo:
			x1 := float32(s.Args[1].X) * inv * scale
			y1 := float32(s.Args[1].Y) * inv * scale
			x2 := float32(s.Args[2].X) * inv * scale
			y2 := float32(s.Args[2].Y) * inv * scale
			p.BezierTo(x0, y0, x1, y1, x2, y2)
		default:
			return fmt.Errorf("sfnt segment %d op %d: %w", i, s.Op, ErrUnsupportedSegment)
		}
	}
	if open {
		p.Close()
	}
	return nil
}

// AppendGlyphOutline appends a glyph outline from go-text/typesetting.
// Outlines are in font units with y pointing up; they are multiplied by
// scale and flipped to y-down. Every contour is closed.
func (p *Path) AppendGlyphOutline(o font.GlyphOutline, scale float32) error {
	open := false
	pt := func(sp opentype.SegmentPoint) (float32, float32) {
		return sp.X * scale, -sp.Y * scale
	}
	for i, s := range o.Segments {
		x0, y0 := pt(s.Args[0])
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(x0, y0)
			open = true
		case opentype.SegmentOpLineTo:
			p.LineTo(x0, y0)
		case opentype.SegmentOpQuadTo:
			x1, y1 := pt(s.Args[1])
			p.QuadTo(x0, y0, x1, y1)
		case opentype.SegmentOpCubeTo:
			x1, y1 := pt(s.Args[1])
			x2, y2 := pt(s.Args[2])
			p.BezierTo(x0, y0, x1, y1, x2, y2)
		default:
			return fmt.Errorf("glyph segment %d op %d: %w", i, s.Op, ErrUnsupportedSegment)
		}
	}
	if open {
		p.Close()
	}
	return nil
}

// AppendGeomPath appends a seehuhn.de/go/geom path. Open subpaths stay
// open.
func (p *Path) AppendGeomPath(gp path.Path) error {
	if gp == nil {
		return nil
	}
	i := 0
	for cmd, pts := range gp {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			p.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			c, e := pts[0], pts[1]
			p.QuadTo(float32(c.X), float32(c.Y), float32(e.X), float32(e.Y))
		case path.CmdCubeTo:
			c1, c2, e := pts[0], pts[1], pts[2]
			p.BezierTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(e.X), float32(e.Y))
		case path.CmdClose:
			p.Close()
		default:
			return fmt.Errorf("geom command %d (%d): %w", i, cmd, ErrUnsupportedSegment)
		}
		i++
	}
	return nil
}
