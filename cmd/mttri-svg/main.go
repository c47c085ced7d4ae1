// Command mttri-svg renders a .tri or .cdt triangulation to an SVG file for
// visual inspection, in the same project-to-screen-then-draw-polygons style
// s2delaunay's example renderer uses.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/UMDGeoVis/mttri/trig"
	"github.com/UMDGeoVis/mttri/types"
)

const (
	triangleStyle   = "fill:rgb(255,255,255);stroke:rgb(120,120,120);stroke-width:1"
	constraintStyle = "stroke:rgb(200,30,30);stroke-width:2"
	vertexStyle     = "fill:rgb(0,0,255)"
)

func main() {
	var (
		input  = flag.String("input", "", "Input .tri or .cdt file")
		output = flag.String("output", "mttri.svg", "Output SVG file path")
		width  = flag.Int("width", 1024, "Canvas width")
		height = flag.Int("height", 1024, "Canvas height")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *output, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string, width, height int) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	var (
		pts  []types.Point3
		tris [][3]int
		segs [][2]int
	)

	switch filepath.Ext(input) {
	case ".cdt":
		cdt, err := trig.ReadCdt(in)
		if err != nil {
			return fmt.Errorf("reading %s: %w", input, err)
		}
		pts, tris, segs = cdt.Points, cdt.Triangles, cdt.Segments
	default:
		tf, err := trig.ReadTri(in)
		if err != nil {
			return fmt.Errorf("reading %s: %w", input, err)
		}
		pts, tris = tf.Points, tf.Triangles
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	render(out, pts, tris, segs, width, height)
	return nil
}

func render(w *os.File, pts []types.Point3, tris [][3]int, segs [][2]int, width, height int) {
	minX, minY, maxX, maxY := bounds(pts)
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	margin := 20
	toScreen := func(p types.Point3) (int, int) {
		x := margin + int((p.X-minX)/spanX*float64(width-2*margin))
		y := height - margin - int((p.Y-minY)/spanY*float64(height-2*margin))
		return x, y
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	xs := make([]int, 3)
	ys := make([]int, 3)
	for _, t := range tris {
		for i, idx := range t {
			xs[i], ys[i] = toScreen(pts[idx])
		}
		canvas.Polygon(xs, ys, triangleStyle)
	}

	for _, s := range segs {
		x0, y0 := toScreen(pts[s[0]])
		x1, y1 := toScreen(pts[s[1]])
		canvas.Line(x0, y0, x1, y1, constraintStyle)
	}

	for _, p := range pts {
		x, y := toScreen(p)
		canvas.Circle(x, y, 2, vertexStyle)
	}

	canvas.End()
}

func bounds(pts []types.Point3) (minX, minY, maxX, maxY float64) {
	if len(pts) == 0 {
		return 0, 0, 1, 1
	}
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}
