package hull

import (
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/arc-tools/archull/dbg"
	"github.com/arc-tools/archull/geom"
)

// This is for debugging purposes only

const dbgDrawPadding = 100

// DbgDraw renders the input boundary (dim) with the hull on top (bright)
// into a PNG and cats it to the terminal.
func DbgDraw(poly, hull geom.ArcPolygon, scale float64) {
	box := poly.Bounds().Union(hull.Bounds())
	if box.IsEmpty() {
		return
	}

	width := int(scale*box.Width()) + dbgDrawPadding*2
	height := int(scale*box.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-box.MinX, -box.MinY)

	c.SetLineWidth(1)
	c.SetRGB(0, 0.5, 0)
	tracePath(c, poly)
	c.Stroke()

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	tracePath(c, hull)
	c.Stroke()

	c.SavePNG("/tmp/archull.png")
	imgcat.CatFile("/tmp/archull.png", os.Stdout)
}

func tracePath(c *gg.Context, poly geom.ArcPolygon) {
	for _, e := range poly {
		c.MoveTo(e.A.X, e.A.Y)
		if e.IsSeg() {
			c.LineTo(e.B.X, e.B.Y)
			continue
		}
		start := e.StartAngle()
		c.DrawArc(e.C.X, e.C.Y, e.R, start, start+e.SweepTo(e.B))
	}
}

// DbgName colors an edge's readable name by its role: connectors cyan,
// surviving input pieces green, degenerate slivers red.
func DbgName(e geom.Edge) string {
	name := dbg.Name(e.ID)
	switch {
	case e.A.CloseEnough(e.B, geom.PointTolerance) && e.IsSeg():
		return aurora.Red(name).String()
	case e.IsSeg():
		return aurora.Cyan(name).String()
	default:
		return aurora.Green(name).String()
	}
}

// DbgString is a one-line colored dump of a boundary.
func DbgString(poly geom.ArcPolygon) string {
	parts := make([]string, 0, len(poly))
	for _, e := range poly {
		parts = append(parts, fmt.Sprintf("%s %s", DbgName(e), e))
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
