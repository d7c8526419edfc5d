package tui

import (
	"strings"

	"github.com/paulmach/orb"
)

// project maps a footprint point to micro-pixel coordinates of a w x h
// cell map, applying zoom about the centre and the pan offset.
func (m Model) project(p orb.Point, w, h int) (int, int) {
	nx := (p.X() - m.bound.Min.X()) / (m.bound.Max.X() - m.bound.Min.X())
	ny := (p.Y() - m.bound.Min.Y()) / (m.bound.Max.Y() - m.bound.Min.Y())
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w*2-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(h*4-1)) + m.offsetY*4
	return sx, sy
}

// cellToXY is the inverse of project for a map cell.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bound.Min.X() + nx*(m.bound.Max.X()-m.bound.Min.X())
	y := m.bound.Min.Y() + ny*(m.bound.Max.Y()-m.bound.Min.Y())
	return x, y, true
}

func (m Model) projectPolygon(p orb.Polygon, w, h int) [][][2]int {
	rings := make([][][2]int, 0, len(p))
	for _, r := range p {
		pts := make([][2]int, 0, len(r))
		for _, pt := range r {
			x, y := m.project(pt, w, h)
			pts = append(pts, [2]int{x, y})
		}
		rings = append(rings, pts)
	}
	return rings
}

// renderFootprint draws every polygon filled, holes open, with its edges
// on top.
func (m Model) renderFootprint(w, h int) string {
	c := newCanvas(w, h)
	for _, p := range m.footprint {
		rings := m.projectPolygon(p, w, h)
		c.fill(rings)
		c.outline(rings)
	}
	lines := c.rows()

	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// nearestVertex returns the micro-pixel position of the footprint vertex
// closest to micro-pixel (hx, hy).
func (m Model) nearestVertex(hx, hy, w, h int) (int, int, bool) {
	best := -1
	var bx, by int
	for _, p := range m.footprint {
		for _, r := range p {
			for _, pt := range r {
				x, y := m.project(pt, w, h)
				dx, dy := x-hx, y-hy
				if d := dx*dx + dy*dy; best < 0 || d < best {
					best, bx, by = d, x, y
				}
			}
		}
	}
	return bx, by, best >= 0
}
