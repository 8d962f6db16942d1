package vgmesh

import (
	"unsafe"

	"github.com/gogpu/gputypes"
)

// Vertex is one mesh vertex.
//
// U carries antialiasing coverage across fringes and stroke rails: 0.5 is
// full coverage and both 0 and 1 fade to nothing. V is 1 except on the
// outer edge of butt and square cap fringes, where it is 0.
type Vertex struct {
	X, Y float32
	U, V float32
}

// vertexSize is the byte size of Vertex in the vertex buffer.
const vertexSize = uint64(unsafe.Sizeof(Vertex{}))

// VertexLayout returns the GPU vertex buffer layout of Vertex: position at
// location 0 and coverage coordinates at location 1.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: gputypes.VertexFormatFloat32x2.Size(), ShaderLocation: 1},
		},
	}
}

// RangeKind tags the role of a draw range.
type RangeKind uint8

const (
	// RangeFill is the interior of a filled contour.
	RangeFill RangeKind = iota
	// RangeFringe is the antialiasing ribbon around a filled contour.
	RangeFringe
	// RangeStroke is the ribbon of a stroked contour.
	RangeStroke
	// RangeCover is the bounding quad drawn in the cover pass of a
	// stencil fill.
	RangeCover
)

// String returns the kind name.
func (k RangeKind) String() string {
	switch k {
	case RangeFill:
		return "Fill"
	case RangeFringe:
		return "Fringe"
	case RangeStroke:
		return "Stroke"
	case RangeCover:
		return "Cover"
	default:
		return "Unknown"
	}
}

// Range is a run of vertices drawn with one topology.
type Range struct {
	Kind     RangeKind
	Offset   int
	Count    int
	Topology gputypes.PrimitiveTopology
	// Contour is the index of the source contour, -1 for the cover quad.
	Contour int
}

// Protocol is the draw protocol a mesh requires.
type Protocol uint8

const (
	// ProtocolDirect draws all ranges in a single pass.
	ProtocolDirect Protocol = iota + 1
	// ProtocolStencilCover writes fill ranges to the stencil buffer, then
	// draws the fringe and cover ranges where the stencil is set.
	ProtocolStencilCover
)

// String returns the protocol name.
func (p Protocol) String() string {
	switch p {
	case ProtocolDirect:
		return "Direct"
	case ProtocolStencilCover:
		return "StencilCover"
	default:
		return "Unknown"
	}
}

// Passes returns the number of draw passes the protocol needs.
func (p Protocol) Passes() int {
	if p == ProtocolStencilCover {
		return 2
	}
	return 1
}

// Mesh is the GPU-ready geometry of one fill or stroke.
type Mesh struct {
	Vertices []Vertex
	Ranges   []Range
	Protocol Protocol
	Bounds   Bounds
	// AlphaScale multiplies the paint alpha. It is below 1 for strokes
	// thinner than the fringe.
	AlphaScale float32
	// Width is the effective stroke width, 0 for fills.
	Width float32
}

// IsEmpty reports whether the mesh has nothing to draw.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// RangeVertices returns the vertices of r.
func (m *Mesh) RangeVertices(r Range) []Vertex {
	return m.Vertices[r.Offset : r.Offset+r.Count]
}

// Float32s returns the vertices flattened to x, y, u, v quadruples.
func (m *Mesh) Float32s() []float32 {
	out := make([]float32, 0, len(m.Vertices)*4)
	for _, v := range m.Vertices {
		out = append(out, v.X, v.Y, v.U, v.V)
	}
	return out
}

// Clone returns a deep copy that does not alias the builder buffers.
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.Vertices = append([]Vertex(nil), m.Vertices...)
	c.Ranges = append([]Range(nil), m.Ranges...)
	return &c
}

// MeshBuilder converts contours into fill and stroke meshes.
//
// The zero value is ready to use. A MeshBuilder reuses its buffers: the
// Mesh returned by Fill or Stroke stays valid until the next call.
// MeshBuilder is not safe for concurrent use.
type MeshBuilder struct {
	verts   []Vertex
	ranges  []Range
	scratch []Point
	views   [][]Point
	mesh    Mesh

	scratchVerts []Vertex
}

// NewMeshBuilder creates a builder with preallocated buffers.
func NewMeshBuilder(opts ...Option) *MeshBuilder {
	o := applyOptions(opts)
	return &MeshBuilder{
		verts:   make([]Vertex, 0, o.initialPoints*4),
		ranges:  make([]Range, 0, 8),
		scratch: make([]Point, 0, o.initialPoints),
	}
}

// reset prepares the buffers for a new mesh.
func (b *MeshBuilder) reset() {
	b.verts = b.verts[:0]
	b.ranges = b.ranges[:0]
}

// copyPoints copies the points of c into the scratch buffer so join
// classification can run without touching the contours.
func (b *MeshBuilder) copyPoints(c *Contours) [][]Point {
	b.scratch = b.scratch[:0]
	for i := range c.List {
		b.scratch = append(b.scratch, c.List[i].Points...)
	}
	b.views = b.views[:0]
	k := 0
	for i := range c.List {
		n := len(c.List[i].Points)
		b.views = append(b.views, b.scratch[k:k+n:k+n])
		k += n
	}
	return b.views
}

func (b *MeshBuilder) vertex(x, y, u, v float32) {
	b.verts = append(b.verts, Vertex{X: x, Y: y, U: u, V: v})
}

// beginRange returns the offset of the next range.
func (b *MeshBuilder) beginRange() int {
	return len(b.verts)
}

// endRange records the vertices appended since offset.
func (b *MeshBuilder) endRange(kind RangeKind, offset, contour int, topo gputypes.PrimitiveTopology) {
	if n := len(b.verts) - offset; n > 0 {
		b.ranges = append(b.ranges, Range{
			Kind:     kind,
			Offset:   offset,
			Count:    n,
			Topology: topo,
			Contour:  contour,
		})
	}
}

// finish publishes the buffers as the builder mesh.
func (b *MeshBuilder) finish(p Protocol, alpha, width float32) *Mesh {
	bounds := EmptyBounds()
	for _, v := range b.verts {
		bounds = bounds.Extend(Vec2{v.X, v.Y})
	}
	b.mesh = Mesh{
		Vertices:   b.verts,
		Ranges:     b.ranges,
		Protocol:   p,
		Bounds:     bounds,
		AlphaScale: alpha,
		Width:      width,
	}
	return &b.mesh
}
