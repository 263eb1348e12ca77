package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/arc-tools/archull"
	"github.com/arc-tools/archull/geom"
	"github.com/arc-tools/archull/hull"
)

// Demo of arc-polygon hulls. Input on stdin is one edge per line:
//
//	x1 y1 x2 y2            straight segment
//	x1 y1 x2 y2 cx cy r    CCW arc around (cx, cy)
//
// Edges must chain in travel order and close. Blank lines are ignored. For
// convenience, lines with just "x y" are also accepted and joined into
// segments point to point, closing back to the first.
var (
	draw    = kingpin.Flag("draw", "Render the input and hull to the terminal.").Bool()
	scale   = kingpin.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64()
	indexed = kingpin.Flag("index", "Scan candidates through the spatial index.").Bool()
)

func main() {
	kingpin.Parse()

	poly, err := readBoundary(os.Stdin)
	if err != nil {
		kingpin.Fatalf("reading input: %v", err)
	}
	fmt.Printf("Read %d edges\n", len(poly))

	var opts []archull.Option
	if *indexed {
		opts = append(opts, archull.WithIndex())
	}
	result, err := archull.ConvexHull(poly, opts...)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	fmt.Printf("Hull has %s edges:\n", aurora.Bold(strconv.Itoa(len(result))))
	for _, e := range result {
		kind := aurora.Green("arc").String()
		if e.IsSeg() {
			kind = aurora.Cyan("seg").String()
		}
		fmt.Printf("  %s %s\n", kind, e)
	}

	if *draw {
		hull.DbgDraw(poly, result, *scale)
	}
}

func readBoundary(in *os.File) (geom.ArcPolygon, error) {
	var poly geom.ArcPolygon
	var loose []geom.Point

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad number %q", line, f)
			}
			vals[i] = v
		}
		switch len(vals) {
		case 2:
			loose = append(loose, geom.Pt(vals[0], vals[1]))
		case 4:
			poly = append(poly, geom.NewSeg(geom.Pt(vals[0], vals[1]), geom.Pt(vals[2], vals[3])))
		case 7:
			poly = append(poly, geom.NewArc(
				geom.Pt(vals[0], vals[1]), geom.Pt(vals[2], vals[3]),
				geom.Pt(vals[4], vals[5]), vals[6]))
		default:
			return nil, fmt.Errorf("line %d: expected 2, 4 or 7 numbers, got %d", line, len(vals))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(loose) > 0 {
		if len(poly) > 0 {
			return nil, fmt.Errorf("cannot mix bare points with explicit edges")
		}
		for i, p := range loose {
			q := loose[(i+1)%len(loose)]
			if p.CloseEnough(q, geom.PointTolerance) {
				continue
			}
			poly = append(poly, geom.NewSeg(p, q))
		}
	}
	return poly, nil
}
