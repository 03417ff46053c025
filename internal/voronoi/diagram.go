package voronoi

import (
	"fmt"
	"image"

	"github.com/fogleman/delaunay"

	"voronoi-relief/internal/field"
	"voronoi-relief/pkg/core"
)

// Segment is one finite Voronoi edge in image coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Diagram is a rasterized tessellation: the flat color render handed to the
// save/display side and the cell/border mask consumed by the relief core.
type Diagram struct {
	Flat   *image.RGBA
	Mask   *field.Mask
	Points []delaunay.Point
	Edges  []Segment
}

// Generate samples seed points, computes the Voronoi diagram and rasterizes
// it. The result depends only on p and the RNG state, so callers seeking
// reproducible diagrams pass a freshly seeded RNG.
func Generate(p Params, rng *core.RNG) (*Diagram, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	points := SamplePoints(p, rng)
	sites := append(append([]delaunay.Point{}, points...), ghostCorners(p)...)

	tri, err := delaunay.Triangulate(sites)
	if err != nil {
		return nil, fmt.Errorf("voronoi: triangulation failed: %w", err)
	}

	edges := voronoiEdges(tri)
	d := &Diagram{
		Flat:   image.NewRGBA(image.Rect(0, 0, p.Width, p.Height)),
		Mask:   field.NewMask(p.Width, p.Height),
		Points: points,
		Edges:  edges,
	}
	d.rasterize(p)
	return d, nil
}

// voronoiEdges extracts the finite Voronoi edges as segments between the
// circumcenters of triangles sharing a Delaunay halfedge. Hull halfedges
// have no twin and would extend to infinity, so they are skipped; the ghost
// corner sites keep every visible edge finite.
func voronoiEdges(tri *delaunay.Triangulation) []Segment {
	centers := make([]delaunay.Point, len(tri.Triangles)/3)
	for t := range centers {
		centers[t] = circumcenter(
			tri.Points[tri.Triangles[3*t]],
			tri.Points[tri.Triangles[3*t+1]],
			tri.Points[tri.Triangles[3*t+2]],
		)
	}

	var edges []Segment
	for e, twin := range tri.Halfedges {
		if twin < e {
			continue // hull edge (-1) or already emitted from the twin side
		}
		a := centers[e/3]
		b := centers[twin/3]
		edges = append(edges, Segment{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y})
	}
	return edges
}

// circumcenter returns the center of the circle through a, b and c.
func circumcenter(a, b, c delaunay.Point) delaunay.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ex := c.X - a.X
	ey := c.Y - a.Y

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 2 * (dx*ey - dy*ex)
	if d == 0 {
		// Degenerate (collinear) triangle; fall back to the first vertex.
		return a
	}
	return delaunay.Point{
		X: a.X + (ey*bl-dy*cl)/d,
		Y: a.Y + (dx*cl-ex*bl)/d,
	}
}

// rasterize fills the flat render with the background color and stamps the
// Voronoi edges and optional seed points onto the image and the mask. The
// mask starts all-interior; edge pixels become border. Edges are clipped to
// the frame first: circumcenters can sit far off-frame with an edge still
// crossing the visible area, and clipping also bounds the Bresenham walk.
func (d *Diagram) rasterize(p Params) {
	fillRGBA(d.Flat, p.BackgroundColor)
	d.Mask.Fill(true)

	// Pad by the stamp radius so a thick line clipped at the frame edge
	// still contributes its in-frame disc pixels.
	pad := float64(p.EdgeThickness/2 + 1)
	for _, s := range d.Edges {
		clipped, ok := clipSegment(s, -pad, -pad, float64(p.Width)+pad, float64(p.Height)+pad)
		if !ok {
			continue
		}
		drawLine(d.Flat, d.Mask, clipped, p.EdgeColor, p.EdgeThickness)
	}

	if p.ShowPoints {
		for _, pt := range d.Points {
			drawDisc(d.Flat, nil, int(pt.X), int(pt.Y), p.PointSize, p.PointColor)
		}
	}
}
