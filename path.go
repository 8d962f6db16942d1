package vgmesh

import "sync/atomic"

// Verb is a path command.
type Verb uint8

const (
	// VerbMoveTo starts a new contour at (x, y).
	VerbMoveTo Verb = iota
	// VerbLineTo appends a straight segment to (x, y).
	VerbLineTo
	// VerbBezierTo appends a cubic Bezier with two control points and an end point.
	VerbBezierTo
	// VerbClose closes the current contour.
	VerbClose
	// VerbSolid marks the current contour as filled material.
	VerbSolid
	// VerbHole marks the current contour as a hole.
	VerbHole
)

// Arity returns the number of float32 coordinates the verb consumes.
func (v Verb) Arity() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2
	case VerbBezierTo:
		return 6
	default:
		return 0
	}
}

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbBezierTo:
		return "BezierTo"
	case VerbClose:
		return "Close"
	case VerbSolid:
		return "Solid"
	case VerbHole:
		return "Hole"
	default:
		return "Unknown"
	}
}

// Solidity is the winding directive of a contour.
type Solidity uint8

const (
	// SolidityDefault means no directive was given. It is treated as Solid.
	SolidityDefault Solidity = iota
	// Solid contours add material and are wound with positive area.
	Solid
	// Hole contours carve material and are wound with negative area.
	Hole
)

// String returns the solidity name.
func (s Solidity) String() string {
	switch s {
	case Solid:
		return "Solid"
	case Hole:
		return "Hole"
	default:
		return "Default"
	}
}

// DefaultDistTolerance is the point-merge tolerance used by ArcTo until
// SetDistTolerance is called.
const DefaultDistTolerance = 0.01

var nextPathID atomic.Uint64

// Path is an append-only recording of path verbs and their coordinates.
//
// Coordinates live in one flat buffer; each verb consumes Arity() values.
// Every mutation bumps Version so caches keyed by (ID, Version) notice
// edits. A Path must not be mutated concurrently.
type Path struct {
	verbs   []Verb
	coords  []float32
	id      uint64
	version uint64

	start   Vec2 // first point of the current contour
	last    Vec2
	distTol float32
}

// NewPath creates an empty path with a process-unique ID.
func NewPath() *Path {
	return &Path{
		verbs:   make([]Verb, 0, 16),
		coords:  make([]float32, 0, 32),
		id:      nextPathID.Add(1),
		distTol: DefaultDistTolerance,
	}
}

// ID returns the identity of the path. Clones get a new ID.
// A zero Path is assigned an ID on first use.
func (p *Path) ID() uint64 {
	if p.id == 0 {
		p.id = nextPathID.Add(1)
	}
	return p.id
}

// Version returns a counter bumped by every mutation.
func (p *Path) Version() uint64 {
	return p.version
}

// SetDistTolerance sets the tolerance ArcTo uses to detect degenerate
// corners. Values <= 0 restore DefaultDistTolerance.
func (p *Path) SetDistTolerance(tol float32) {
	if tol <= 0 {
		tol = DefaultDistTolerance
	}
	p.distTol = tol
}

// DistTolerance returns the tolerance used by ArcTo.
func (p *Path) DistTolerance() float32 {
	if p.distTol <= 0 {
		return DefaultDistTolerance
	}
	return p.distTol
}

// MoveTo starts a new contour at (x, y).
// A MoveTo directly following another MoveTo replaces it.
func (p *Path) MoveTo(x, y float32) {
	if n := len(p.verbs); n > 0 && p.verbs[n-1] == VerbMoveTo {
		c := len(p.coords)
		p.coords[c-2], p.coords[c-1] = x, y
	} else {
		p.verbs = append(p.verbs, VerbMoveTo)
		p.coords = append(p.coords, x, y)
	}
	p.start = Vec2{x, y}
	p.last = p.start
	p.version++
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float32) {
	p.verbs = append(p.verbs, VerbLineTo)
	p.coords = append(p.coords, x, y)
	p.last = Vec2{x, y}
	p.version++
}

// BezierTo appends a cubic Bezier curve with control points (c1x, c1y),
// (c2x, c2y) ending at (x, y).
func (p *Path) BezierTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.verbs = append(p.verbs, VerbBezierTo)
	p.coords = append(p.coords, c1x, c1y, c2x, c2y, x, y)
	p.last = Vec2{x, y}
	p.version++
}

// QuadTo appends a quadratic Bezier curve with control point (cx, cy)
// ending at (x, y). It is stored as the equivalent cubic.
func (p *Path) QuadTo(cx, cy, x, y float32) {
	x0, y0 := p.last.X, p.last.Y
	p.BezierTo(
		x0+2.0/3.0*(cx-x0), y0+2.0/3.0*(cy-y0),
		x+2.0/3.0*(cx-x), y+2.0/3.0*(cy-y),
		x, y,
	)
}

// Close closes the current contour. The last position returns to the
// contour start.
func (p *Path) Close() {
	p.verbs = append(p.verbs, VerbClose)
	p.last = p.start
	p.version++
}

// SetSolidity sets the winding directive of the current contour. The
// directive applies to the whole contour, including points added before it.
func (p *Path) SetSolidity(s Solidity) {
	switch s {
	case Solid:
		p.verbs = append(p.verbs, VerbSolid)
	case Hole:
		p.verbs = append(p.verbs, VerbHole)
	default:
		return
	}
	p.version++
}

// Clear removes all verbs. The ID is kept and the version advances.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.coords = p.coords[:0]
	p.start = Vec2{}
	p.last = Vec2{}
	p.version++
}

// Clone returns a deep copy with a new ID.
func (p *Path) Clone() *Path {
	c := &Path{
		verbs:   append([]Verb(nil), p.verbs...),
		coords:  append([]float32(nil), p.coords...),
		id:      nextPathID.Add(1),
		start:   p.start,
		last:    p.last,
		distTol: p.distTol,
	}
	return c
}

// Verbs returns the recorded verbs. The slice must not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Coords returns the flat coordinate buffer. The slice must not be modified.
func (p *Path) Coords() []float32 {
	return p.coords
}

// LastPosition returns the end point of the last recorded verb.
func (p *Path) LastPosition() Vec2 {
	return p.last
}

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}
