package vgmesh

import (
	"log/slog"

	"github.com/gogpu/vgmesh/internal/bezier"
)

// Tolerances control flattening precision in device pixels.
type Tolerances struct {
	// Tess is the flattening tolerance compared against the squared chord
	// deviation of a curve.
	Tess float32
	// Dist is the distance under which adjacent points are merged.
	Dist float32
	// Fringe is the antialiasing fringe width. It does not affect
	// tessellation and is carried for the mesh parameters.
	Fringe float32
}

// TolerancesForDPR returns the tolerances for a device pixel ratio.
// Non-positive ratios are treated as 1.
func TolerancesForDPR(dpr float32) Tolerances {
	if dpr <= 0 {
		dpr = 1
	}
	return Tolerances{
		Tess:   0.25 / dpr,
		Dist:   0.01 / dpr,
		Fringe: 1 / dpr,
	}
}

// DefaultTolerances returns the tolerances for a device pixel ratio of 1.
func DefaultTolerances() Tolerances {
	return TolerancesForDPR(1)
}

// classifyMiterLimit is the miter limit the tessellator uses to fill in
// join data, so that every produced contour has a known convexity.
const classifyMiterLimit = 10

// contourRec tracks a contour while its points are still being appended
// and the point buffer may move.
type contourRec struct {
	first    int
	count    int
	closed   bool
	solidity Solidity
}

// Tessellator flattens paths into contours.
//
// The zero value is usable with DefaultTolerances. A Tessellator reuses
// its buffers: the Contours returned by Tessellate stay valid until the
// next call. Tessellator is not safe for concurrent use.
type Tessellator struct {
	tol      Tolerances
	points   []Point
	recs     []contourRec
	result   Contours
	flat     bezier.Flattener
	distTol  float32
	tessTol  float32
	current  int
	solidity Solidity
}

// NewTessellator creates a tessellator.
//
// Example:
//
//	tess := vgmesh.NewTessellator(vgmesh.WithDevicePixelRatio(2))
func NewTessellator(opts ...Option) *Tessellator {
	o := applyOptions(opts)
	return &Tessellator{
		tol:    o.tol,
		points: make([]Point, 0, o.initialPoints),
		recs:   make([]contourRec, 0, 8),
	}
}

// Tolerances returns the tolerances the tessellator was configured with.
func (t *Tessellator) Tolerances() Tolerances {
	if t.tol == (Tolerances{}) {
		return DefaultTolerances()
	}
	return t.tol
}

// Tessellate flattens p under transform xf. The result aliases internal
// buffers until the next call; use Contours.Clone to keep it.
//
// Tessellate never fails. A path without drawable contours yields an empty
// list with empty bounds.
func (t *Tessellator) Tessellate(p *Path, xf Transform, tol Tolerances) *Contours {
	if tol.Tess <= 0 || tol.Dist <= 0 {
		def := t.Tolerances()
		if tol.Tess <= 0 {
			tol.Tess = def.Tess
		}
		if tol.Dist <= 0 {
			tol.Dist = def.Dist
		}
	}
	t.tessTol = tol.Tess
	t.distTol = tol.Dist
	t.points = t.points[:0]
	t.recs = t.recs[:0]
	t.current = -1
	t.solidity = SolidityDefault

	t.walk(p, xf)
	t.finish()

	t.result.Transform = xf
	t.result.Tolerances = tol

	if debugEnabled() {
		Logger().Debug("vgmesh: tessellated path",
			slog.Uint64("path", p.ID()),
			slog.Int("contours", len(t.result.List)),
			slog.Int("points", t.result.PointCount()),
		)
	}
	return &t.result
}

// walk replays the verbs and fills the point buffer.
func (t *Tessellator) walk(p *Path, xf Transform) {
	coords := p.Coords()
	k := 0
	for _, v := range p.Verbs() {
		switch v {
		case VerbMoveTo:
			t.addContour()
			t.addPoint(xf.Apply(coords[k], coords[k+1]), PointCorner)
		case VerbLineTo:
			t.addPoint(xf.Apply(coords[k], coords[k+1]), PointCorner)
		case VerbBezierTo:
			c1 := xf.Apply(coords[k], coords[k+1])
			c2 := xf.Apply(coords[k+2], coords[k+3])
			end := xf.Apply(coords[k+4], coords[k+5])
			if t.current < 0 || t.recs[t.current].count == 0 {
				t.addPoint(c1, PointCorner)
			}
			start := t.points[len(t.points)-1].Pos
			t.flat.Flatten(bezier.Cubic{
				P0: bezier.Point(start),
				P1: bezier.Point(c1),
				P2: bezier.Point(c2),
				P3: bezier.Point(end),
			}, t.tessTol, func(pt bezier.Point, last bool) {
				var fl PointFlags
				if last {
					fl = PointCorner
				}
				t.addPoint(Vec2(pt), fl)
			})
		case VerbClose:
			if t.current >= 0 {
				t.recs[t.current].closed = true
			}
		case VerbSolid, VerbHole:
			s := Solid
			if v == VerbHole {
				s = Hole
			}
			if t.current >= 0 {
				t.recs[t.current].solidity = s
			} else {
				t.solidity = s
			}
		}
		k += v.Arity()
	}
}

func (t *Tessellator) addContour() {
	t.recs = append(t.recs, contourRec{
		first:    len(t.points),
		solidity: t.solidity,
	})
	t.current = len(t.recs) - 1
	t.solidity = SolidityDefault
}

// addPoint appends pos to the current contour, merging it into the
// previous point when they are closer than the distance tolerance.
func (t *Tessellator) addPoint(pos Vec2, flags PointFlags) {
	if t.current < 0 {
		t.addContour()
	}
	rec := &t.recs[t.current]
	if rec.count > 0 {
		last := &t.points[len(t.points)-1]
		if last.Pos.Equals(pos, t.distTol) {
			last.Flags |= flags
			return
		}
	}
	t.points = append(t.points, Point{Pos: pos, Flags: flags})
	rec.count++
}

// finish turns the contour records into the result list.
func (t *Tessellator) finish() {
	t.result.List = t.result.List[:0]
	t.result.Bounds = EmptyBounds()

	for _, rec := range t.recs {
		pts := t.points[rec.first : rec.first+rec.count]

		if len(pts) > 2 && pts[len(pts)-1].Pos.Equals(pts[0].Pos, t.distTol) {
			pts = pts[:len(pts)-1]
			rec.closed = true
		}
		if len(pts) < 2 {
			continue
		}

		area := polyArea(pts)
		var reversed bool
		switch rec.solidity {
		case Hole:
			reversed = area > 0
		default:
			reversed = area < 0
		}
		if reversed {
			reversePoints(pts)
		}

		bounds := EmptyBounds()
		n := len(pts)
		for i := range n {
			p0 := &pts[i]
			p1 := &pts[(i+1)%n]
			p0.Dir, p0.Len = p1.Pos.Sub(p0.Pos).Normalize()
			bounds = bounds.Extend(p0.Pos)
		}

		nleft, nbevel := classifyJoins(pts, 0, LineJoinMiter, classifyMiterLimit)

		t.result.List = append(t.result.List, Contour{
			Points:     pts[:n:n],
			Closed:     rec.closed,
			Solidity:   rec.solidity,
			Reversed:   reversed,
			Convexity:  classifyConvexity(pts, nleft),
			BevelCount: nbevel,
			Bounds:     bounds,
		})
		t.result.Bounds = t.result.Bounds.Union(bounds)
	}
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
