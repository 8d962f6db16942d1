package vgmesh

// ContainsPoint reports whether the device-space point (x, y) is inside
// the tessellated path under rule. Open contours are treated as closed.
//
// Each contour is tested on its own and the point is inside if any contour
// contains it. Under FillRuleEvenOdd a hole contour therefore does not
// subtract from the contour around it.
func (c *Contours) ContainsPoint(x, y float32, rule FillRule) bool {
	if c == nil || !c.Bounds.Contains(x, y) {
		return false
	}
	for i := range c.List {
		pts := c.List[i].Points
		if rule == FillRuleEvenOdd {
			if crossingParity(pts, x, y) {
				return true
			}
		} else if windingNumber(pts, x, y) != 0 {
			return true
		}
	}
	return false
}

// crossingParity casts a ray towards +x and reports whether it crosses
// the polygon an odd number of times.
func crossingParity(pts []Point, x, y float32) bool {
	inside := false
	n := len(pts)
	for i := range n {
		p0 := pts[(i+n-1)%n].Pos
		p1 := pts[i].Pos
		if (p1.Y > y) != (p0.Y > y) &&
			x < (p0.X-p1.X)*(y-p1.Y)/(p0.Y-p1.Y)+p1.X {
			inside = !inside
		}
	}
	return inside
}

// windingNumber returns how many times the polygon winds around (x, y).
func windingNumber(pts []Point, x, y float32) int {
	wn := 0
	n := len(pts)
	for i := range n {
		p0 := pts[(i+n-1)%n].Pos
		p1 := pts[i].Pos
		if p0.Y <= y {
			if p1.Y > y && isLeft(p0, p1, x, y) > 0 {
				wn++
			}
		} else if p1.Y <= y && isLeft(p0, p1, x, y) < 0 {
			wn--
		}
	}
	return wn
}

// isLeft is positive when (x, y) lies left of the line p0->p1 in y-up
// terms, negative when right and zero on the line.
func isLeft(p0, p1 Vec2, x, y float32) float32 {
	return (p1.X-p0.X)*(y-p0.Y) - (x-p0.X)*(p1.Y-p0.Y)
}
