package tui

import (
	"fmt"
	"math"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"stepfg/internal/brep"
)

func solidColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "solid", Width: 20},
		{Title: "vertices", Width: 9},
		{Title: "edges", Width: 7},
		{Title: "faces", Width: 7},
		{Title: "holes", Width: 6},
		{Title: "area", Width: 12},
		{Title: "winding", Width: 8},
	}
}

// solidRows has one row per solid. footprint[i] is the outline of solid i.
func solidRows(body *brep.Body, footprint []orb.Polygon) []table.Row {
	rows := make([]table.Row, 0, len(body.Solids))
	for i, s := range body.Solids {
		st := s.Shell.Stats()
		area, holes, winding := "", "", ""
		if i < len(footprint) && len(footprint[i]) > 0 {
			poly := footprint[i]
			area = fmt.Sprintf("%.4g", math.Abs(planar.Area(poly)))
			holes = fmt.Sprintf("%d", len(poly)-1)
			winding = orientationName(poly[0].Orientation())
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", st.Vertices),
			fmt.Sprintf("%d", st.Edges),
			fmt.Sprintf("%d", st.Faces),
			holes,
			area,
			winding,
		})
	}
	return rows
}

// orientationName flags clockwise outer rings, whose solids come out with
// inward normals.
func orientationName(o orb.Orientation) string {
	switch o {
	case orb.CCW:
		return "ccw"
	case orb.CW:
		return "cw (!)"
	}
	return "flat"
}
