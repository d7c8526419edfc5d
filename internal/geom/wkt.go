package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT reads a POLYGON, MULTIPOLYGON or GEOMETRYCOLLECTION of them.
// Other geometry types inside a collection are skipped.
func ParseWKT(src string) ([]Polygon, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return nil, fmt.Errorf("%w: empty wkt", ErrInputSyntax)
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: wkt: %v", ErrInputSyntax, err)
	}
	polys := polygonsFromOrb(g, "")
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: wkt: no polygons in %s", ErrInputSyntax, g.GeoJSONType())
	}
	return polys, nil
}

// polygonsFromOrb flattens any polygonal content of g.
func polygonsFromOrb(g orb.Geometry, name string) []Polygon {
	switch g := g.(type) {
	case orb.Polygon:
		return []Polygon{polygonFromOrb(g, name)}
	case orb.MultiPolygon:
		out := make([]Polygon, 0, len(g))
		for _, p := range g {
			out = append(out, polygonFromOrb(p, name))
		}
		return out
	case orb.Collection:
		var out []Polygon
		for _, c := range g {
			out = append(out, polygonsFromOrb(c, name)...)
		}
		return out
	}
	return nil
}

var errNoPolygons = errors.New("no polygons found")
