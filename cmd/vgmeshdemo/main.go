// Command vgmeshdemo tessellates a small scene with vgmesh and writes the
// resulting triangles as an SVG wireframe.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vgmesh"
)

func main() {
	var (
		width   = flag.Int("width", 800, "viewport width")
		height  = flag.Int("height", 600, "viewport height")
		dpr     = flag.Float64("dpr", 1, "device pixel ratio")
		text    = flag.String("text", "vgmesh", "text rendered with Go Regular")
		output  = flag.String("output", "demo.svg", "output file")
		verbose = flag.Bool("v", false, "log tessellation details")
	)
	flag.Parse()

	if *verbose {
		vgmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ratio := float32(*dpr)
	tol := vgmesh.TolerancesForDPR(ratio)
	cache := vgmesh.NewCache(vgmesh.WithDevicePixelRatio(ratio))
	mb := vgmesh.NewMeshBuilder()
	fill := vgmesh.DefaultFillParams().WithFringeWidth(tol.Fringe)

	var meshes []*vgmesh.Mesh
	add := func(p *vgmesh.Path, xf vgmesh.Transform, stroke *vgmesh.StrokeParams) {
		c := cache.GetOrBuild(p, xf, tol)
		if stroke != nil {
			s := stroke.WithWidth(stroke.Width * xf.AverageScale())
			meshes = append(meshes, mb.Stroke(c, s).Clone())
			return
		}
		meshes = append(meshes, mb.Fill(c, fill).Clone())
	}

	scale := vgmesh.Scale(ratio, ratio)
	for _, p := range shapes() {
		add(p, scale, nil)
	}

	square := vgmesh.NewPath()
	square.Rect(-30, -30, 60, 60)
	for i := range 8 {
		xf := scale.Multiply(vgmesh.Translate(600, 150)).Multiply(vgmesh.Rotate(float32(i) * math32.Pi / 4))
		add(square, xf, nil)
	}

	curve := vgmesh.NewPath()
	curve.MoveTo(150, 400)
	curve.BezierTo(200, 350, 250, 450, 300, 400)
	curve.BezierTo(350, 370, 400, 430, 450, 400)
	sp := vgmesh.DefaultStrokeParams().
		WithWidth(6).
		WithCap(vgmesh.LineCapRound).
		WithJoin(vgmesh.LineJoinRound).
		WithTolerances(tol)
	add(curve, scale, &sp)
	add(star(550, 400, 60, 30), scale, nil)

	glyphs, err := textPath(*text, 48)
	if err != nil {
		log.Fatalf("Failed to load text: %v", err)
	}
	add(glyphs, scale.Multiply(vgmesh.Translate(150, 540)), nil)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	w := bufio.NewWriter(f)
	writeSVG(w, meshes, float32(*width)*ratio, float32(*height)*ratio)
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	vertices := 0
	for _, m := range meshes {
		vertices += len(m.Vertices)
	}
	st := cache.Stats()
	log.Printf("Wireframe saved to %s: %d meshes, %d vertices, cache %d hits %d misses %d rebuilds\n",
		*output, len(meshes), vertices, st.Hits, st.Misses, st.Rebuilds)
}

func shapes() []*vgmesh.Path {
	circles := vgmesh.NewPath()
	circles.Circle(150, 150, 60)
	circles.Circle(200, 150, 60)
	circles.Circle(175, 200, 60)

	rr := vgmesh.NewPath()
	rr.RoundedRect(350, 100, 120, 80, 15)

	return []*vgmesh.Path{circles, rr}
}

func star(cx, cy, outer, inner float32) *vgmesh.Path {
	p := vgmesh.NewPath()
	const points = 5
	for i := range points * 2 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float32(i)*math32.Pi/points - math32.Pi/2
		x, y := cx+r*math32.Cos(a), cy+r*math32.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// textPath lays out s on a single line at the given pixel size.
func textPath(s string, size float32) (*vgmesh.Path, error) {
	font, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	p := vgmesh.NewPath()
	var x fixed.Int26_6
	for _, r := range s {
		gi, err := font.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		segs, err := font.LoadGlyph(&buf, gi, ppem, nil)
		if err != nil {
			return nil, err
		}
		for i := range segs {
			for j := range segs[i].Args {
				segs[i].Args[j].X += x
			}
		}
		if err := p.AppendSFNTSegments(segs, 1); err != nil {
			return nil, err
		}
		adv, err := font.GlyphAdvance(&buf, gi, ppem, 0)
		if err != nil {
			return nil, err
		}
		x += adv
	}
	return p, nil
}

// writeSVG draws every triangle of every range as an outline. Fill and
// cover ranges are blue, fringes red and strokes green.
func writeSVG(w io.Writer, meshes []*vgmesh.Mesh, width, height float32) {
	fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\">\n", width, height)
	fmt.Fprintln(w, "<g fill=\"none\" stroke-width=\"0.3\">")
	for _, m := range meshes {
		for _, r := range m.Ranges {
			color := "#36c"
			switch r.Kind {
			case vgmesh.RangeFringe:
				color = "#c33"
			case vgmesh.RangeStroke:
				color = "#3a3"
			}
			v := m.RangeVertices(r)
			if r.Topology == gputypes.PrimitiveTopologyTriangleStrip {
				for i := 2; i < len(v); i++ {
					writeTriangle(w, color, v[i-2], v[i-1], v[i])
				}
				continue
			}
			for i := 0; i+2 < len(v); i += 3 {
				writeTriangle(w, color, v[i], v[i+1], v[i+2])
			}
		}
	}
	fmt.Fprintln(w, "</g>")
	fmt.Fprintln(w, "</svg>")
}

func writeTriangle(w io.Writer, color string, a, b, c vgmesh.Vertex) {
	fmt.Fprintf(w, "<path stroke=\"%s\" d=\"M%g %gL%g %gL%g %gZ\"/>\n",
		color, a.X, a.Y, b.X, b.Y, c.X, c.Y)
}
