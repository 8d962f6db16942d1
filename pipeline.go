package vgmesh

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

// Embedded WGSL source of the mesh shader.
//
//go:embed shaders/mesh.wgsl
var meshShaderSource string

// ShaderSource returns the WGSL source of the mesh shader. Its entry points
// are vs_main and fs_main, its vertex input matches VertexLayout and it
// reads ShaderUniforms from group(0) binding(0).
func ShaderSource() string {
	return meshShaderSource
}

// CompileShader compiles the mesh shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirv, err := naga.Compile(meshShaderSource)
	if err != nil {
		return nil, fmt.Errorf("vgmesh: compile mesh shader: %w", err)
	}
	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}

// UniformSize is the byte size of ShaderUniforms in the uniform buffer.
// Layout: viewport (vec2<f32>) + stroke_mult (f32) + alpha_scale (f32) +
// color (vec4<f32>) = 32 bytes.
const UniformSize = 32

// ShaderUniforms are the per-draw parameters of the mesh shader.
type ShaderUniforms struct {
	// Viewport is the target size in device pixels.
	Viewport [2]float32
	// StrokeMult stretches coverage across the rails so that the ribbon
	// interior stays opaque. It is 1 for fills.
	StrokeMult float32
	// AlphaScale is Mesh.AlphaScale.
	AlphaScale float32
	// Color is straight (non-premultiplied) RGBA.
	Color [4]float32
}

// UniformsFor returns the uniforms that draw m in color on a viewport of
// width x height device pixels. fringe is the fringe width m was built
// with.
func UniformsFor(m *Mesh, fringe, width, height float32, color [4]float32) ShaderUniforms {
	mult := float32(1)
	if m.Width > 0 && fringe > 0 {
		mult = (m.Width*0.5 + fringe*0.5) / fringe
	}
	return ShaderUniforms{
		Viewport:   [2]float32{width, height},
		StrokeMult: mult,
		AlphaScale: m.AlphaScale,
		Color:      color,
	}
}

// AppendBytes appends the uniform buffer contents of u to dst.
func (u ShaderUniforms) AppendBytes(dst []byte) []byte {
	for _, v := range [...]float32{
		u.Viewport[0], u.Viewport[1], u.StrokeMult, u.AlphaScale,
		u.Color[0], u.Color[1], u.Color[2], u.Color[3],
	} {
		dst = binary.LittleEndian.AppendUint32(dst, math32.Float32bits(v))
	}
	return dst
}

// StencilFormat is the depth-stencil format the draw steps assume.
const StencilFormat = gputypes.TextureFormatDepth24PlusStencil8

// DrawStep is one pipeline configuration used to draw a mesh: the range
// kinds it draws and the stencil and color state it draws them with.
type DrawStep struct {
	Label        string
	Kinds        []RangeKind
	DepthStencil gputypes.DepthStencilState
	WriteMask    gputypes.ColorWriteMask
	// Blend is nil when color writes are off.
	Blend *gputypes.BlendState
}

// Ranges returns the ranges of m the step draws, in mesh order.
func (s DrawStep) Ranges(m *Mesh) []Range {
	var out []Range
	for _, r := range m.Ranges {
		for _, k := range s.Kinds {
			if r.Kind == k {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// PrimitiveState returns the primitive state for drawing r. Culling is
// off since fill triangles come in both windings.
func (r Range) PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: r.Topology,
		CullMode: gputypes.CullModeNone,
	}
}

// DrawSteps returns the steps that draw m under rule, in submission order.
// Steps without ranges in m are left out.
//
// A direct mesh is drawn in one step. A stencil-cover mesh first writes
// the winding of its fill ranges to the stencil buffer with color writes
// off, then draws the fringe where the stencil is clear and finally the
// cover quad where it is set, zeroing the stencil for the next path.
func (m *Mesh) DrawSteps(rule FillRule) []DrawStep {
	var steps []DrawStep
	if m.Protocol == ProtocolStencilCover {
		steps = []DrawStep{
			stencilStep(rule),
			coverStep("fringe", RangeFringe, gputypes.CompareFunctionEqual, gputypes.StencilOperationKeep),
			coverStep("cover", RangeCover, gputypes.CompareFunctionNotEqual, gputypes.StencilOperationZero),
		}
	} else {
		blend := gputypes.BlendStatePremultiplied()
		steps = []DrawStep{{
			Label: "direct",
			Kinds: []RangeKind{RangeFill, RangeFringe, RangeStroke},
			DepthStencil: depthStencil(
				gputypes.DefaultStencilFaceState(),
				gputypes.DefaultStencilFaceState(),
				0,
			),
			WriteMask: gputypes.ColorWriteMaskAll,
			Blend:     &blend,
		}}
	}

	out := steps[:0]
	for _, s := range steps {
		if len(s.Ranges(m)) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// stencilStep accumulates winding: NonZero counts front faces up and back
// faces down, EvenOdd flips parity on both.
func stencilStep(rule FillRule) DrawStep {
	front, back := gputypes.StencilOperationIncrementWrap, gputypes.StencilOperationDecrementWrap
	if rule == FillRuleEvenOdd {
		front, back = gputypes.StencilOperationInvert, gputypes.StencilOperationInvert
	}
	face := func(op gputypes.StencilOperation) gputypes.StencilFaceState {
		return gputypes.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      gputypes.StencilOperationKeep,
			DepthFailOp: gputypes.StencilOperationKeep,
			PassOp:      op,
		}
	}
	return DrawStep{
		Label:        "stencil",
		Kinds:        []RangeKind{RangeFill},
		DepthStencil: depthStencil(face(front), face(back), 0xFF),
		WriteMask:    gputypes.ColorWriteMaskNone,
	}
}

func coverStep(label string, kind RangeKind, cmp gputypes.CompareFunction, pass gputypes.StencilOperation) DrawStep {
	face := gputypes.StencilFaceState{
		Compare:     cmp,
		FailOp:      gputypes.StencilOperationKeep,
		DepthFailOp: gputypes.StencilOperationKeep,
		PassOp:      pass,
	}
	blend := gputypes.BlendStatePremultiplied()
	return DrawStep{
		Label:        label,
		Kinds:        []RangeKind{kind},
		DepthStencil: depthStencil(face, face, 0xFF),
		WriteMask:    gputypes.ColorWriteMaskAll,
		Blend:        &blend,
	}
}

func depthStencil(front, back gputypes.StencilFaceState, writeMask uint32) gputypes.DepthStencilState {
	return gputypes.DepthStencilState{
		Format:            StencilFormat,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      front,
		StencilBack:       back,
		StencilReadMask:   0xFF,
		StencilWriteMask:  writeMask,
	}
}
