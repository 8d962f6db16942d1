package vgmesh

// PointFlags classifies a flattened point.
type PointFlags uint8

const (
	// PointCorner marks a point where two path segments meet, as opposed to
	// an interior point of a flattened curve.
	PointCorner PointFlags = 1 << iota
	// PointLeftTurn marks a point where the contour turns towards its
	// interior.
	PointLeftTurn
	// PointBevel marks a corner that is drawn beveled or rounded.
	PointBevel
	// PointInnerBevel marks a corner whose inner side would self-intersect
	// at the current width.
	PointInnerBevel
)

// Has reports whether all bits of mask are set.
func (f PointFlags) Has(mask PointFlags) bool {
	return f&mask == mask
}

// Point is a flattened contour point in device space.
type Point struct {
	Pos Vec2
	// Dir is the unit direction towards the next point, wrapping at the
	// end of the contour.
	Dir Vec2
	// Len is the distance to the next point.
	Len float32
	// Miter is the extrusion vector: the averaged left normals of the
	// adjacent segments, scaled so that offsetting by Miter*w keeps both
	// edges at distance w.
	Miter Vec2
	Flags PointFlags
}

// Convexity is the shape classification of a contour.
type Convexity uint8

const (
	// ConvexityUnknown means the contour was not classified.
	ConvexityUnknown Convexity = iota
	// Convex contours turn one way and wind around once.
	Convex
	// Concave covers everything else, including self-intersecting contours.
	Concave
)

// String returns the convexity name.
func (c Convexity) String() string {
	switch c {
	case Convex:
		return "Convex"
	case Concave:
		return "Concave"
	default:
		return "Unknown"
	}
}

// Contour is one flattened sub-path. Reversed reports that winding
// enforcement flipped the recorded point order, so Points[0] of a reversed
// open contour is where the path ended.
type Contour struct {
	Points     []Point
	Closed     bool
	Solidity   Solidity
	Reversed   bool
	Convexity  Convexity
	BevelCount int
	Bounds     Bounds
}

// Area returns the signed area of the contour, positive for solid winding.
func (c *Contour) Area() float32 {
	return polyArea(c.Points)
}

// Contours is the tessellation of a path under one transform.
type Contours struct {
	List       []Contour
	Bounds     Bounds
	Transform  Transform
	Tolerances Tolerances
}

// Len returns the number of contours.
func (c *Contours) Len() int {
	return len(c.List)
}

// PointCount returns the total number of points over all contours.
func (c *Contours) PointCount() int {
	n := 0
	for i := range c.List {
		n += len(c.List[i].Points)
	}
	return n
}

// IsConvex reports whether the tessellation is a single convex contour,
// the shape that can be filled without a stencil pass.
func (c *Contours) IsConvex() bool {
	return len(c.List) == 1 && c.List[0].Convexity == Convex
}

// Clone returns a deep copy that does not alias the tessellator buffers.
func (c *Contours) Clone() *Contours {
	out := &Contours{
		List:       make([]Contour, len(c.List)),
		Bounds:     c.Bounds,
		Transform:  c.Transform,
		Tolerances: c.Tolerances,
	}
	pts := make([]Point, 0, c.PointCount())
	for i, ct := range c.List {
		start := len(pts)
		pts = append(pts, ct.Points...)
		ct.Points = pts[start:len(pts):len(pts)]
		out.List[i] = ct
	}
	return out
}

// polyArea returns half the sum of cross(p[i]-p[0], p[i-1]-p[0]).
func polyArea(pts []Point) float32 {
	if len(pts) < 3 {
		return 0
	}
	a := pts[0].Pos
	var area float32
	for i := 2; i < len(pts); i++ {
		b := pts[i-1].Pos.Sub(a)
		c := pts[i].Pos.Sub(a)
		area += c.Cross(b)
	}
	return area * 0.5
}
