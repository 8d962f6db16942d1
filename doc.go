// Package vgmesh turns 2D vector paths into GPU-ready triangle meshes.
//
// # Overview
//
// vgmesh is the geometry core of the GoGPU vector renderer. It records
// resolution-independent paths, flattens them under an affine transform and
// emits antialiased fill and stroke meshes. It never touches a graphics
// device: the output is a flat vertex buffer plus typed draw ranges that a
// backend uploads and draws.
//
// # Quick Start
//
//	p := vgmesh.NewPath()
//	p.RoundedRect(10, 10, 200, 100, 12)
//
//	tess := vgmesh.NewTessellator(vgmesh.WithDevicePixelRatio(2))
//	contours := tess.Tessellate(p, vgmesh.Identity(), tess.Tolerances())
//
//	var mb vgmesh.MeshBuilder
//	fill := mb.Fill(contours, vgmesh.DefaultFillParams())
//	upload(fill.Float32s(), vgmesh.VertexLayout())
//
// # Pipeline
//
//   - Path: append-only verb and coordinate store (MoveTo, LineTo, BezierTo,
//     Close, Solid, Hole) with shape helpers.
//   - Tessellator: flattens curves, merges near-duplicate points, enforces
//     winding and classifies joins and convexity.
//   - MeshBuilder: builds fill meshes (interior, fringe and cover quad) and
//     stroke ribbons (caps and joins).
//   - Contours.ContainsPoint: even-odd and non-zero hit testing.
//   - Cache: memoizes contours per path and transform.
//   - Mesh.DrawSteps and CompileShader: the stencil and color state and the
//     WGSL shader a backend needs to draw a mesh.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles are
// in radians. Solid contours are normalized to positive signed area in this
// coordinate system (clockwise on screen).
//
// # Buffers
//
// Tessellator and MeshBuilder reuse their buffers. A returned Contours or
// Mesh stays valid until the next call on the same instance; use Clone to
// keep a result longer or to hand it to another goroutine.
package vgmesh
