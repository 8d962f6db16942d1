package vgmesh

import "github.com/chewxy/math32"

// Kappa90 is the control point distance, as a fraction of the radius, of
// a cubic Bezier approximating a quarter circle.
const Kappa90 = 0.5522847493

// Direction is the sweep direction of an arc in y-down screen space.
type Direction uint8

const (
	// Clockwise sweeps with increasing angle.
	Clockwise Direction = iota
	// CounterClockwise sweeps with decreasing angle.
	CounterClockwise
)

// Rect adds a closed rectangle contour.
func (p *Path) Rect(x, y, w, h float32) {
	p.MoveTo(x, y)
	p.LineTo(x, y+h)
	p.LineTo(x+w, y+h)
	p.LineTo(x+w, y)
	p.Close()
}

// RoundedRect adds a closed rectangle contour with circular corners of
// radius r.
func (p *Path) RoundedRect(x, y, w, h, r float32) {
	p.RoundedRectVarying(x, y, w, h, r, r, r, r)
}

// RoundedRectVarying adds a rounded rectangle with a separate radius per
// corner: top-left, top-right, bottom-right, bottom-left. Radii are clamped
// to half the side lengths. If every radius is below 0.1 a plain Rect is
// added.
func (p *Path) RoundedRectVarying(x, y, w, h, tl, tr, br, bl float32) {
	if tl < 0.1 && tr < 0.1 && br < 0.1 && bl < 0.1 {
		p.Rect(x, y, w, h)
		return
	}

	halfW := math32.Abs(w) * 0.5
	halfH := math32.Abs(h) * 0.5
	sw, sh := sign(w), sign(h)
	rxBL, ryBL := math32.Min(bl, halfW)*sw, math32.Min(bl, halfH)*sh
	rxBR, ryBR := math32.Min(br, halfW)*sw, math32.Min(br, halfH)*sh
	rxTR, ryTR := math32.Min(tr, halfW)*sw, math32.Min(tr, halfH)*sh
	rxTL, ryTL := math32.Min(tl, halfW)*sw, math32.Min(tl, halfH)*sh
	const k = 1 - Kappa90

	p.MoveTo(x, y+ryTL)
	p.LineTo(x, y+h-ryBL)
	p.BezierTo(x, y+h-ryBL*k, x+rxBL*k, y+h, x+rxBL, y+h)
	p.LineTo(x+w-rxBR, y+h)
	p.BezierTo(x+w-rxBR*k, y+h, x+w, y+h-ryBR*k, x+w, y+h-ryBR)
	p.LineTo(x+w, y+ryTR)
	p.BezierTo(x+w, y+ryTR*k, x+w-rxTR*k, y, x+w-rxTR, y)
	p.LineTo(x+rxTL, y)
	p.BezierTo(x+rxTL*k, y, x, y+ryTL*k, x, y+ryTL)
	p.Close()
}

// Ellipse adds a closed ellipse contour made of four cubic segments,
// starting at the leftmost point.
func (p *Path) Ellipse(cx, cy, rx, ry float32) {
	p.MoveTo(cx-rx, cy)
	p.BezierTo(cx-rx, cy+ry*Kappa90, cx-rx*Kappa90, cy+ry, cx, cy+ry)
	p.BezierTo(cx+rx*Kappa90, cy+ry, cx+rx, cy+ry*Kappa90, cx+rx, cy)
	p.BezierTo(cx+rx, cy-ry*Kappa90, cx+rx*Kappa90, cy-ry, cx, cy-ry)
	p.BezierTo(cx-rx*Kappa90, cy-ry, cx-rx, cy-ry*Kappa90, cx-rx, cy)
	p.Close()
}

// Circle adds a closed circle contour.
func (p *Path) Circle(cx, cy, r float32) {
	p.Ellipse(cx, cy, r, r)
}

// Arc adds a circular arc centered at (cx, cy) from angle a0 to a1, swept
// in direction dir. The arc is split into at most five segments of up to
// 90 degrees. If the path already has verbs the arc is connected with a
// line, otherwise it starts a new contour.
func (p *Path) Arc(cx, cy, r, a0, a1 float32, dir Direction) {
	connect := len(p.verbs) > 0

	da := a1 - a0
	if dir == Clockwise {
		if math32.Abs(da) >= 2*math32.Pi {
			da = 2 * math32.Pi
		} else {
			for da < 0 {
				da += 2 * math32.Pi
			}
		}
	} else {
		if math32.Abs(da) >= 2*math32.Pi {
			da = -2 * math32.Pi
		} else {
			for da > 0 {
				da -= 2 * math32.Pi
			}
		}
	}

	divs := int(math32.Abs(da)/(math32.Pi*0.5) + 0.5)
	divs = max(1, min(divs, 5))
	hda := da / float32(divs) / 2
	sin, cos := math32.Sincos(hda)
	kappa := math32.Abs(4.0 / 3.0 * (1 - cos) / sin)
	if dir == CounterClockwise {
		kappa = -kappa
	}

	var px, py, ptx, pty float32
	for i := 0; i <= divs; i++ {
		a := a0 + da*float32(i)/float32(divs)
		dy, dx := math32.Sincos(a)
		x := cx + dx*r
		y := cy + dy*r
		tx := -dy * r * kappa
		ty := dx * r * kappa
		switch {
		case i > 0:
			p.BezierTo(px+ptx, py+pty, x-tx, y-ty, x, y)
		case connect:
			p.LineTo(x, y)
		default:
			p.MoveTo(x, y)
		}
		px, py, ptx, pty = x, y, tx, ty
	}
}

// ArcTo adds an arc of radius r tangent to the lines from the last
// position to (x1, y1) and from (x1, y1) to (x2, y2).
//
// A straight line to (x1, y1) is added instead when the points coincide
// or are collinear within the distance tolerance, when r is below it, or
// when the tangent points would lie more than 10000 units from the corner.
// ArcTo does nothing on an empty path.
func (p *Path) ArcTo(x1, y1, x2, y2, r float32) {
	if len(p.verbs) == 0 {
		return
	}
	tol := p.DistTolerance()
	x0, y0 := p.last.X, p.last.Y

	if ptEquals(x0, y0, x1, y1, tol) ||
		ptEquals(x1, y1, x2, y2, tol) ||
		distPtSegSq(x1, y1, x0, y0, x2, y2) < tol*tol ||
		r < tol {
		p.LineTo(x1, y1)
		return
	}

	d0, _ := Vec2{x0 - x1, y0 - y1}.Normalize()
	d1, _ := Vec2{x2 - x1, y2 - y1}.Normalize()
	a := math32.Acos(d0.Dot(d1))
	d := r / math32.Tan(a/2)
	if d > 10000 {
		p.LineTo(x1, y1)
		return
	}

	var cx, cy, a0, a1 float32
	var dir Direction
	if d0.Cross(d1) < 0 {
		cx = x1 + d0.X*d + d0.Y*r
		cy = y1 + d0.Y*d - d0.X*r
		a0 = math32.Atan2(d0.X, -d0.Y)
		a1 = math32.Atan2(-d1.X, d1.Y)
		dir = Clockwise
	} else {
		cx = x1 + d0.X*d - d0.Y*r
		cy = y1 + d0.Y*d + d0.X*r
		a0 = math32.Atan2(-d0.X, d0.Y)
		a1 = math32.Atan2(d1.X, -d1.Y)
		dir = CounterClockwise
	}
	p.Arc(cx, cy, r, a0, a1, dir)
}

func sign(v float32) float32 {
	if v >= 0 {
		return 1
	}
	return -1
}

func ptEquals(x1, y1, x2, y2, tol float32) bool {
	dx, dy := x2-x1, y2-y1
	return dx*dx+dy*dy < tol*tol
}

// distPtSegSq returns the squared distance from (x, y) to the segment
// (px, py)-(qx, qy).
func distPtSegSq(x, y, px, py, qx, qy float32) float32 {
	pqx, pqy := qx-px, qy-py
	dx, dy := x-px, y-py
	d := pqx*pqx + pqy*pqy
	t := pqx*dx + pqy*dy
	if d > 0 {
		t /= d
	}
	t = math32.Max(0, math32.Min(1, t))
	dx = px + t*pqx - x
	dy = py + t*pqy - y
	return dx*dx + dy*dy
}
