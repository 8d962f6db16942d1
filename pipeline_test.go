package vgmesh

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderSource(t *testing.T) {
	src := ShaderSource()
	for _, want := range []string{"fn vs_main", "fn fs_main", "@location(1) uv", "@group(0) @binding(0)"} {
		assert.Contains(t, src, want)
	}
}

func TestCompileShader(t *testing.T) {
	words, err := CompileShader()
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileShader() = %v", err)
	}
	require.NotEmpty(t, words)
	assert.Equal(t, uint32(0x07230203), words[0], "SPIR-V magic number")
}

func TestUniformsFor(t *testing.T) {
	color := [4]float32{1, 0.5, 0, 1}

	fill := NewMeshBuilder().Fill(tessellate(rectPath(0, 0, 10, 10)), DefaultFillParams())
	u := UniformsFor(fill, 1, 800, 600, color)
	assert.Equal(t, ShaderUniforms{
		Viewport:   [2]float32{800, 600},
		StrokeMult: 1,
		AlphaScale: 1,
		Color:      color,
	}, u)

	s := NewMeshBuilder().Stroke(tessellate(linePath(0, 0, 10, 0)), DefaultStrokeParams().WithWidth(4))
	u = UniformsFor(s, 1, 800, 600, color)
	assert.Equal(t, float32(2.5), u.StrokeMult)

	hair := NewMeshBuilder().Stroke(tessellate(linePath(0, 0, 10, 0)), DefaultStrokeParams().WithWidth(0.5))
	u = UniformsFor(hair, 1, 800, 600, color)
	assert.Equal(t, float32(1), u.StrokeMult)
	assert.Equal(t, float32(0.25), u.AlphaScale)
}

func TestShaderUniforms_AppendBytes(t *testing.T) {
	u := ShaderUniforms{
		Viewport:   [2]float32{800, 600},
		StrokeMult: 2.5,
		AlphaScale: 0.25,
		Color:      [4]float32{1, 0.5, 0, 1},
	}
	b := u.AppendBytes(nil)
	require.Len(t, b, UniformSize)

	f := func(i int) float32 { return math32.Float32frombits(binary.LittleEndian.Uint32(b[i*4:])) }
	assert.Equal(t, float32(800), f(0))
	assert.Equal(t, float32(600), f(1))
	assert.Equal(t, float32(2.5), f(2))
	assert.Equal(t, float32(0.25), f(3))
	assert.Equal(t, float32(0.5), f(5))
}

func TestDrawSteps_Direct(t *testing.T) {
	m := NewMeshBuilder().Fill(tessellate(rectPath(0, 0, 10, 10)), DefaultFillParams())
	steps := m.DrawSteps(FillRuleNonZero)

	require.Len(t, steps, 1)
	s := steps[0]
	assert.Equal(t, "direct", s.Label)
	assert.Len(t, s.Ranges(m), 2)
	assert.Equal(t, gputypes.ColorWriteMaskAll, s.WriteMask)
	require.NotNil(t, s.Blend)
	assert.Equal(t, gputypes.BlendStatePremultiplied(), *s.Blend)
	assert.Equal(t, uint32(0), s.DepthStencil.StencilWriteMask)
	assert.Equal(t, gputypes.CompareFunctionAlways, s.DepthStencil.StencilFront.Compare)

	stroke := NewMeshBuilder().Stroke(tessellate(linePath(0, 0, 10, 0)), DefaultStrokeParams())
	steps = stroke.DrawSteps(FillRuleEvenOdd)
	require.Len(t, steps, 1)
	assert.Len(t, steps[0].Ranges(stroke), 1)
}

func TestDrawSteps_StencilCover(t *testing.T) {
	m := NewMeshBuilder().Fill(tessellate(starPath(50, 50, 50)), DefaultFillParams())
	require.Equal(t, ProtocolStencilCover, m.Protocol)

	tests := []struct {
		rule        FillRule
		front, back gputypes.StencilOperation
	}{
		{FillRuleNonZero, gputypes.StencilOperationIncrementWrap, gputypes.StencilOperationDecrementWrap},
		{FillRuleEvenOdd, gputypes.StencilOperationInvert, gputypes.StencilOperationInvert},
	}
	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			steps := m.DrawSteps(tt.rule)
			require.Len(t, steps, 3)

			stencil, fringe, cover := steps[0], steps[1], steps[2]
			assert.Equal(t, "stencil", stencil.Label)
			assert.Equal(t, gputypes.ColorWriteMaskNone, stencil.WriteMask)
			assert.Nil(t, stencil.Blend)
			assert.Equal(t, tt.front, stencil.DepthStencil.StencilFront.PassOp)
			assert.Equal(t, tt.back, stencil.DepthStencil.StencilBack.PassOp)
			assert.Equal(t, StencilFormat, stencil.DepthStencil.Format)

			assert.Equal(t, gputypes.CompareFunctionEqual, fringe.DepthStencil.StencilFront.Compare)
			assert.Equal(t, []RangeKind{RangeFringe}, fringe.Kinds)

			assert.Equal(t, gputypes.CompareFunctionNotEqual, cover.DepthStencil.StencilFront.Compare)
			assert.Equal(t, gputypes.StencilOperationZero, cover.DepthStencil.StencilFront.PassOp)
			require.Len(t, cover.Ranges(m), 1)
			assert.Equal(t, -1, cover.Ranges(m)[0].Contour)
		})
	}
}

func TestDrawSteps_SkipsEmptySteps(t *testing.T) {
	m := NewMeshBuilder().Fill(tessellate(starPath(50, 50, 50)), DefaultFillParams().WithAntiAlias(false))

	steps := m.DrawSteps(FillRuleNonZero)
	require.Len(t, steps, 2)
	assert.Equal(t, "stencil", steps[0].Label)
	assert.Equal(t, "cover", steps[1].Label)

	assert.Empty(t, (&Mesh{Protocol: ProtocolDirect}).DrawSteps(FillRuleNonZero))
}

func TestRange_PrimitiveState(t *testing.T) {
	r := Range{Topology: gputypes.PrimitiveTopologyTriangleStrip}
	assert.Equal(t, gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleStrip,
		CullMode: gputypes.CullModeNone,
	}, r.PrimitiveState())
}
