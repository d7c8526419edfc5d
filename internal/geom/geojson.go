package geom

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON reads polygons from a FeatureCollection, a single Feature or
// a bare geometry object. A feature's "name" property names its solids.
func ParseGeoJSON(data []byte) ([]Polygon, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: geojson: %v", ErrInputSyntax, err)
	}
	var polys []Polygon
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: geojson: %v", ErrInputSyntax, err)
		}
		for _, f := range fc.Features {
			polys = append(polys, featurePolygons(f)...)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: geojson: %v", ErrInputSyntax, err)
		}
		polys = featurePolygons(f)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: geojson: %v", ErrInputSyntax, err)
		}
		polys = polygonsFromOrb(g.Geometry(), "")
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: geojson: %v", ErrInputSyntax, errNoPolygons)
	}
	return polys, nil
}

func featurePolygons(f *geojson.Feature) []Polygon {
	if f == nil || f.Geometry == nil {
		return nil
	}
	return polygonsFromOrb(f.Geometry, f.Properties.MustString("name", ""))
}
