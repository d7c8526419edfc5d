package geom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads one vertex per row. Column detection is case-insensitive:
// polygon|poly|part|id groups rows into polygons, ring (optional, 0 = outer,
// k = k-th hole) groups them into rings, and x|lon|lng and y|lat hold the
// coordinates. Rows keep their file order within a ring.
func ParseCSV(r io.Reader) ([]Polygon, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %v", ErrInputSyntax, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: empty csv", ErrInputSyntax)
	}
	idxPoly, idxRing, idxX, idxY := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "polygon", "poly", "part", "id":
			if idxPoly == -1 {
				idxPoly = i
			}
		case "ring":
			if idxRing == -1 {
				idxRing = i
			}
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxPoly == -1 || idxX == -1 || idxY == -1 {
		return nil, fmt.Errorf("%w: csv: polygon/x/y columns not found", ErrInputSyntax)
	}

	var (
		polys []Polygon
		index = map[string]int{}
	)
	for n, row := range recs[1:] {
		line := n + 2
		id := strings.TrimSpace(row[idxPoly])
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: csv line %d: invalid coordinate", ErrInputSyntax, line)
		}
		ring := 0
		if idxRing != -1 {
			ring, err = strconv.Atoi(strings.TrimSpace(row[idxRing]))
			if err != nil || ring < 0 {
				return nil, fmt.Errorf("%w: csv line %d: invalid ring index", ErrInputSyntax, line)
			}
		}
		pi, ok := index[id]
		if !ok {
			pi = len(polys)
			index[id] = pi
			polys = append(polys, Polygon{Name: id})
		}
		p := &polys[pi]
		pt := Point2D{X: x, Y: y}
		if ring == 0 {
			p.Outer = append(p.Outer, pt)
			continue
		}
		for len(p.Holes) < ring {
			p.Holes = append(p.Holes, nil)
		}
		p.Holes[ring-1] = append(p.Holes[ring-1], pt)
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: csv: %v", ErrInputSyntax, errNoPolygons)
	}
	for i := range polys {
		polys[i].Outer = trimClosing(polys[i].Outer)
		for h := range polys[i].Holes {
			polys[i].Holes[h] = trimClosing(polys[i].Holes[h])
		}
	}
	return polys, nil
}
