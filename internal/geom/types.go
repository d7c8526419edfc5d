package geom

import "github.com/paulmach/orb"

// Point2D is an input vertex in the x-y plane.
type Point2D struct {
	X, Y float64
}

// Ring is an implicitly closed vertex sequence: the last vertex connects
// back to the first.
type Ring []Point2D

// Polygon is one extrusion footprint: an outer ring plus optional holes.
type Polygon struct {
	Name  string // optional; names the resulting solid
	Outer Ring
	Holes []Ring
}

// Rings returns the outer ring followed by the holes. Ring index 0 is
// always the outer boundary.
func (p Polygon) Rings() []Ring {
	out := make([]Ring, 0, 1+len(p.Holes))
	out = append(out, p.Outer)
	return append(out, p.Holes...)
}

// Extrusion is the z-interval the solid spans. Z1 and Z2 may be given in
// either order.
type Extrusion struct {
	Z1, Z2 float64
}

func (e Extrusion) Min() float64 { return min(e.Z1, e.Z2) }
func (e Extrusion) Max() float64 { return max(e.Z1, e.Z2) }

// Input is what a loader extracts from a file. Only the literal format
// carries the extrusion and scale; other formats leave them nil.
type Input struct {
	Polygons  []Polygon
	Extrusion *Extrusion
	Scale     *float64
}

// orbRing converts to a closed orb ring.
func (r Ring) orbRing() orb.Ring {
	out := make(orb.Ring, 0, len(r)+1)
	for _, p := range r {
		out = append(out, orb.Point{p.X, p.Y})
	}
	if len(r) > 0 {
		out = append(out, orb.Point{r[0].X, r[0].Y})
	}
	return out
}

// ringFromOrb drops the repeated closing vertex that WKT, GeoJSON and KML
// rings carry.
func ringFromOrb(r orb.Ring) Ring {
	pts := make(Ring, 0, len(r))
	for _, p := range r {
		pts = append(pts, Point2D{X: p[0], Y: p[1]})
	}
	return trimClosing(pts)
}

func trimClosing(r Ring) Ring {
	for len(r) > 1 && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	return r
}

func polygonFromOrb(p orb.Polygon, name string) Polygon {
	out := Polygon{Name: name}
	for i, r := range p {
		if i == 0 {
			out.Outer = ringFromOrb(r)
			continue
		}
		out.Holes = append(out.Holes, ringFromOrb(r))
	}
	return out
}
