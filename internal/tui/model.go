// Package tui is the interactive preview shown before the STEP file is
// written: the extruded footprint drawn in braille and a table of the
// solids that will be exported. Enter accepts, q or Esc aborts.
package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"stepfg/internal/brep"
	"stepfg/internal/geom"
)

type Model struct {
	width  int
	height int

	helpVisible bool
	showTable   bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data, in output units
	title     string
	footprint []orb.Polygon
	bound     orb.Bound
	zMin      float64
	zMax      float64
	stats     brep.Stats

	// solids table
	tbl table.Model

	// hover state
	hovering   bool
	hoverMicX  int
	hoverMicY  int
	hoverHasXY bool
	hoverX     float64
	hoverY     float64

	confirmed bool
}

// New prepares a preview of body, which must have been built from m.
func New(m *geom.Model, body *brep.Body, title string) Model {
	p := Model{
		helpVisible: true,
		zoom:        1.0,
		title:       title,
		zMin:        m.ZMin(),
		zMax:        m.ZMax(),
		stats:       body.Stats(),
	}
	p.footprint = footprint(m)
	p.bound = footprintBound(p.footprint)
	p.status = fmt.Sprintf("%s  z=[%g, %g]", p.stats, p.zMin, p.zMax)

	p.tbl = table.New(table.WithFocused(true), table.WithColumns(solidColumns()))
	p.tbl.SetRows(solidRows(body, p.footprint))
	p.tbl.SetHeight(12)
	return p
}

func (m Model) Init() tea.Cmd { return nil }

// Confirmed reports whether the preview was closed with Enter.
func (m Model) Confirmed() bool { return m.confirmed }

// footprint returns the bottom cap outline of every polygon in output
// units, as closed orb rings.
func footprint(m *geom.Model) []orb.Polygon {
	out := make([]orb.Polygon, 0, len(m.Polygons()))
	for pi, p := range m.Polygons() {
		poly := make(orb.Polygon, 0, len(p.Rings()))
		for ri, r := range p.Rings() {
			ring := make(orb.Ring, 0, len(r)+1)
			for i := range r {
				v := m.Bottom(pi, ri, i)
				ring = append(ring, orb.Point{v.X, v.Y})
			}
			ring = append(ring, ring[0])
			poly = append(poly, ring)
		}
		out = append(out, poly)
	}
	return out
}

// footprintBound is the union of all bounds, widened when flat in either
// axis so that projection never divides by zero.
func footprintBound(polys []orb.Polygon) orb.Bound {
	if len(polys) == 0 {
		return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}
	}
	b := polys[0].Bound()
	for _, p := range polys[1:] {
		b = b.Union(p.Bound())
	}
	if b.Max.X() <= b.Min.X() || b.Max.Y() <= b.Min.Y() {
		b = b.Pad(0.5)
	}
	return b
}
