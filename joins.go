package vgmesh

import "github.com/chewxy/math32"

// maxMiterScale bounds the miter extrusion for nearly reversing segments.
const maxMiterScale = 600

// classifyJoins computes Miter and the join flags of every point of one
// contour for a stroke of half-width w. It returns the number of left
// turns and of beveled points. Only PointCorner survives from the
// previous flags.
func classifyJoins(pts []Point, w float32, join LineJoin, miterLimit float32) (nleft, nbevel int) {
	n := len(pts)
	if n == 0 {
		return 0, 0
	}
	var iw float32
	if w > 0 {
		iw = 1 / w
	}

	for i := range n {
		p0 := &pts[(i+n-1)%n]
		p1 := &pts[i]

		dl0 := p0.Dir.Ortho()
		dl1 := p1.Dir.Ortho()
		p1.Miter = dl0.Add(dl1).Mul(0.5)
		dmr2 := p1.Miter.LengthSq()
		if dmr2 > 1e-6 {
			p1.Miter = p1.Miter.Mul(math32.Min(1/dmr2, maxMiterScale))
		}

		p1.Flags &= PointCorner

		if p1.Dir.X*p0.Dir.Y-p0.Dir.X*p1.Dir.Y > 0 {
			nleft++
			p1.Flags |= PointLeftTurn
		}

		limit := math32.Max(1.01, math32.Min(p0.Len, p1.Len)*iw)
		if dmr2*limit*limit < 1 {
			p1.Flags |= PointInnerBevel
		}

		if p1.Flags&PointCorner != 0 {
			if dmr2*miterLimit*miterLimit < 1 || join == LineJoinBevel || join == LineJoinRound {
				p1.Flags |= PointBevel
			}
		}

		if p1.Flags&(PointBevel|PointInnerBevel) != 0 {
			nbevel++
		}
	}
	return nleft, nbevel
}

// classifyConvexity returns Convex when every point is a left turn and the
// x and y components of the direction each change sign exactly twice going
// once around the contour. Components within 1e-6 of zero carry no sign.
// The sign test rejects self-intersecting polygons such as pentagrams that
// turn consistently but wind around more than once.
func classifyConvexity(pts []Point, nleft int) Convexity {
	if len(pts) < 3 || nleft != len(pts) {
		return Concave
	}
	xflips := signFlips(pts, func(d Vec2) float32 { return d.X })
	yflips := signFlips(pts, func(d Vec2) float32 { return d.Y })
	if xflips == 2 && yflips == 2 {
		return Convex
	}
	return Concave
}

// signFlips counts cyclic sign changes of one direction component.
func signFlips(pts []Point, comp func(Vec2) float32) int {
	const eps = 1e-6
	first, prev := 0, 0
	flips := 0
	for i := range pts {
		c := comp(pts[i].Dir)
		s := 0
		switch {
		case c > eps:
			s = 1
		case c < -eps:
			s = -1
		default:
			continue
		}
		if first == 0 {
			first = s
		} else if s != prev {
			flips++
		}
		prev = s
	}
	if first != 0 && prev != first {
		flips++
	}
	return flips
}

// chooseBevel returns the two rail points at p1 for a rail at distance w.
// Inner bevels use the normals of both segments, other corners collapse to
// the miter point.
func chooseBevel(bevel bool, p0, p1 *Point, w float32) (Vec2, Vec2) {
	if bevel {
		return p1.Pos.Add(p0.Dir.Ortho().Mul(w)), p1.Pos.Add(p1.Dir.Ortho().Mul(w))
	}
	m := p1.Pos.Add(p1.Miter.Mul(w))
	return m, m
}

// bevelJoin emits the strip vertices of a beveled corner at p1. The left
// rail lies at +lw along the normals with coverage lu, the right rail at
// -rw with coverage ru.
func (b *MeshBuilder) bevelJoin(p0, p1 *Point, lw, rw, lu, ru float32) {
	dl0 := p0.Dir.Ortho()
	dl1 := p1.Dir.Ortho()
	inner := p1.Flags&PointInnerBevel != 0
	bevel := p1.Flags&PointBevel != 0
	c := p1.Pos

	if p1.Flags&PointLeftTurn != 0 {
		l0, l1 := chooseBevel(inner, p0, p1, lw)
		r0 := c.Sub(dl0.Mul(rw))
		r1 := c.Sub(dl1.Mul(rw))

		b.vertex(l0.X, l0.Y, lu, 1)
		b.vertex(r0.X, r0.Y, ru, 1)
		if bevel {
			b.vertex(l0.X, l0.Y, lu, 1)
			b.vertex(r0.X, r0.Y, ru, 1)
			b.vertex(l1.X, l1.Y, lu, 1)
			b.vertex(r1.X, r1.Y, ru, 1)
		} else {
			rm := c.Sub(p1.Miter.Mul(rw))
			b.vertex(c.X, c.Y, 0.5, 1)
			b.vertex(r0.X, r0.Y, ru, 1)
			b.vertex(rm.X, rm.Y, ru, 1)
			b.vertex(rm.X, rm.Y, ru, 1)
			b.vertex(c.X, c.Y, 0.5, 1)
			b.vertex(r1.X, r1.Y, ru, 1)
		}
		b.vertex(l1.X, l1.Y, lu, 1)
		b.vertex(r1.X, r1.Y, ru, 1)
		return
	}

	r0, r1 := chooseBevel(inner, p0, p1, -rw)
	l0 := c.Add(dl0.Mul(lw))
	l1 := c.Add(dl1.Mul(lw))

	b.vertex(l0.X, l0.Y, lu, 1)
	b.vertex(r0.X, r0.Y, ru, 1)
	if bevel {
		b.vertex(l0.X, l0.Y, lu, 1)
		b.vertex(r0.X, r0.Y, ru, 1)
		b.vertex(l1.X, l1.Y, lu, 1)
		b.vertex(r1.X, r1.Y, ru, 1)
	} else {
		lm := c.Add(p1.Miter.Mul(lw))
		b.vertex(l0.X, l0.Y, lu, 1)
		b.vertex(c.X, c.Y, 0.5, 1)
		b.vertex(lm.X, lm.Y, lu, 1)
		b.vertex(lm.X, lm.Y, lu, 1)
		b.vertex(l1.X, l1.Y, lu, 1)
		b.vertex(c.X, c.Y, 0.5, 1)
	}
	b.vertex(l1.X, l1.Y, lu, 1)
	b.vertex(r1.X, r1.Y, ru, 1)
}

// roundJoin emits a fan of at most ncap segments around the outer side of
// the corner at p1.
func (b *MeshBuilder) roundJoin(p0, p1 *Point, lw, rw, lu, ru float32, ncap int) {
	dl0 := p0.Dir.Ortho()
	dl1 := p1.Dir.Ortho()
	inner := p1.Flags&PointInnerBevel != 0
	c := p1.Pos

	if p1.Flags&PointLeftTurn != 0 {
		l0, l1 := chooseBevel(inner, p0, p1, lw)
		a0 := math32.Atan2(-dl0.Y, -dl0.X)
		a1 := math32.Atan2(-dl1.Y, -dl1.X)
		if a1 > a0 {
			a1 -= 2 * math32.Pi
		}

		r0 := c.Sub(dl0.Mul(rw))
		b.vertex(l0.X, l0.Y, lu, 1)
		b.vertex(r0.X, r0.Y, ru, 1)

		n := fanSegments(a0-a1, ncap)
		for i := range n {
			a := a0 + float32(i)/float32(n-1)*(a1-a0)
			sin, cos := math32.Sincos(a)
			b.vertex(c.X, c.Y, 0.5, 1)
			b.vertex(c.X+cos*rw, c.Y+sin*rw, ru, 1)
		}

		r1 := c.Sub(dl1.Mul(rw))
		b.vertex(l1.X, l1.Y, lu, 1)
		b.vertex(r1.X, r1.Y, ru, 1)
		return
	}

	r0, r1 := chooseBevel(inner, p0, p1, -rw)
	a0 := math32.Atan2(dl0.Y, dl0.X)
	a1 := math32.Atan2(dl1.Y, dl1.X)
	if a1 < a0 {
		a1 += 2 * math32.Pi
	}

	l0 := c.Add(dl0.Mul(rw))
	b.vertex(l0.X, l0.Y, lu, 1)
	b.vertex(r0.X, r0.Y, ru, 1)

	n := fanSegments(a1-a0, ncap)
	for i := range n {
		a := a0 + float32(i)/float32(n-1)*(a1-a0)
		sin, cos := math32.Sincos(a)
		b.vertex(c.X+cos*lw, c.Y+sin*lw, lu, 1)
		b.vertex(c.X, c.Y, 0.5, 1)
	}

	l1 := c.Add(dl1.Mul(rw))
	b.vertex(l1.X, l1.Y, lu, 1)
	b.vertex(r1.X, r1.Y, ru, 1)
}

// fanSegments scales ncap, the segment count of a half circle, to the
// swept angle.
func fanSegments(sweep float32, ncap int) int {
	n := int(math32.Ceil(sweep / math32.Pi * float32(ncap)))
	return max(2, min(n, ncap))
}
