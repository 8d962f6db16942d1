package vgmesh

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	l := VertexLayout()

	assert.Equal(t, uint64(16), l.ArrayStride)
	assert.Equal(t, gputypes.VertexStepModeVertex, l.StepMode)
	require.Len(t, l.Attributes, 2)
	assert.Equal(t, gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, l.Attributes[0])
	assert.Equal(t, gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, l.Attributes[1])
}

func TestMesh_Float32s(t *testing.T) {
	m := &Mesh{Vertices: []Vertex{{1, 2, 0.5, 1}, {3, 4, 0, 0}}}
	assert.Equal(t, []float32{1, 2, 0.5, 1, 3, 4, 0, 0}, m.Float32s())
	assert.Empty(t, (&Mesh{}).Float32s())
}

func TestMesh_RangesCoverVertices(t *testing.T) {
	p := rectPath(0, 0, 100, 100)
	p.Circle(50, 50, 20)
	p.SetSolidity(Hole)
	m := NewMeshBuilder().Fill(tessellate(p), DefaultFillParams())

	next := 0
	for _, r := range m.Ranges {
		assert.Equal(t, next, r.Offset, r.Kind.String())
		assert.Positive(t, r.Count)
		next = r.Offset + r.Count
	}
	assert.Equal(t, len(m.Vertices), next)
}

func TestMesh_Clone(t *testing.T) {
	b := NewMeshBuilder()
	m := b.Fill(tessellate(rectPath(0, 0, 10, 10)), DefaultFillParams())
	clone := m.Clone()
	require.Equal(t, m, clone)

	b.Stroke(tessellate(linePath(0, 0, 500, 500)), DefaultStrokeParams().WithWidth(20))
	assert.Equal(t, ProtocolDirect, clone.Protocol)
	assert.Equal(t, RangeFill, clone.Ranges[0].Kind)
	assert.InDelta(t, 10.5, clone.Bounds.MaxX, 1e-5)
	assert.InDelta(t, 0.5, clone.Vertices[0].X, 1e-5)
}

func TestMeshBuilder_ZeroValue(t *testing.T) {
	var b MeshBuilder
	m := b.Fill(tessellate(rectPath(0, 0, 10, 10)), DefaultFillParams())
	assert.Len(t, m.Ranges, 2)

	m = b.Stroke(tessellate(linePath(0, 0, 10, 0)), DefaultStrokeParams())
	assert.Len(t, m.Vertices, 8)
}

func TestEnums_String(t *testing.T) {
	assert.Equal(t, "Fill", RangeFill.String())
	assert.Equal(t, "Fringe", RangeFringe.String())
	assert.Equal(t, "Stroke", RangeStroke.String())
	assert.Equal(t, "Cover", RangeCover.String())
	assert.Equal(t, "Unknown", RangeKind(42).String())

	assert.Equal(t, "Direct", ProtocolDirect.String())
	assert.Equal(t, "StencilCover", ProtocolStencilCover.String())
	assert.Equal(t, "Unknown", Protocol(0).String())
	assert.Equal(t, 1, ProtocolDirect.Passes())
	assert.Equal(t, 2, ProtocolStencilCover.Passes())
}
