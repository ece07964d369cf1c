package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/Eqicness/cdt2d"
)

// Demo of constrained Delaunay triangulation. Input on stdin should be
// newline separated points in the form "x y". A blank line ends the point
// list; any lines after it are constraint edges in the form "i j", with
// 0-based indices into the points read so far.
var (
	noDelaunay   = kingpin.Flag("no-delaunay", "Skip the Delaunay refinement pass.").Bool()
	interiorOnly = kingpin.Flag("interior-only", "Keep only triangles inside the constraint loops.").Bool()
	exteriorOnly = kingpin.Flag("exterior-only", "Keep only triangles outside the constraint loops.").Bool()
	infinity     = kingpin.Flag("infinity", "Append pseudo-triangles for the unbounded face.").Bool()
	render       = kingpin.Flag("render", "Render the triangulation to a PNG file.").PlaceHolder("FILE").String()
	scale        = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("100").Float64()
)

func main() {
	kingpin.Parse()

	points, edges := readInput(os.Stdin)
	fmt.Printf("Read %s and %s\n",
		aurora.Cyan(fmt.Sprintf("%d points", len(points))),
		aurora.Cyan(fmt.Sprintf("%d constraint edges", len(edges))))

	opts := []cdt2d.Option{
		cdt2d.WithDelaunay(!*noDelaunay),
		cdt2d.WithInfinity(*infinity),
	}
	if *interiorOnly {
		opts = append(opts, cdt2d.WithExterior(false))
	}
	if *exteriorOnly {
		opts = append(opts, cdt2d.WithInterior(false))
	}

	cells, err := cdt2d.Triangulate(points, edges, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	fmt.Printf("Produced %s\n", aurora.Green(fmt.Sprintf("%d triangles", len(cells))))
	for _, c := range cells {
		fmt.Println(c[0], c[1], c[2])
	}

	if *render != "" {
		if err := renderCells(*render, points, cells, *scale); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", aurora.Cyan(*render))
	}
}

func readInput(in *os.File) ([]cdt2d.Point, []cdt2d.Edge) {
	points := []cdt2d.Point{}
	edges := []cdt2d.Edge{}
	readingEdges := false

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			// The first blank line switches from points to edges.
			if len(points) > 0 {
				readingEdges = true
			}
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("expected two fields, got %q", line)
		}
		if readingEdges {
			i, err1 := strconv.Atoi(parts[0])
			j, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				kingpin.Fatalf("invalid edge %q", line)
			}
			edges = append(edges, cdt2d.Edge{i, j})
		} else {
			x, err1 := strconv.ParseFloat(parts[0], 64)
			y, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				kingpin.Fatalf("invalid point %q", line)
			}
			points = append(points, cdt2d.Point{X: x, Y: y})
		}
	}
	return points, edges
}

func renderCells(path string, points []cdt2d.Point, cells []cdt2d.Cell, scale float64) error {
	var minX, minY, maxX, maxY float64
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	const padding = 10
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1.5)
	for _, cell := range cells {
		if cell[0] < 0 || cell[1] < 0 || cell[2] < 0 {
			// Pseudo-triangles have no finite third corner.
			continue
		}
		a, b, d := points[cell[0]], points[cell[1]], points[cell[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGBA(0.2, 0.6, 0.2, 0.4)
	c.FillPreserve()
	c.SetRGB(0.1, 0.1, 0.1)
	c.Stroke()

	return c.SavePNG(path)
}
