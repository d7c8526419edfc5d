package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlPlacemark struct {
	Name     string       `xml:"name"`
	Polygons []kmlPolygon `xml:"Polygon"`
	Multi    []kmlPolygon `xml:"MultiGeometry>Polygon"`
}

// ParseKML extracts Placemark polygons wherever they sit in the document
// tree (Document, Folder, ...). KML coordinates are "x,y[,z]" tuples
// separated by whitespace; z is ignored.
func ParseKML(r io.Reader) ([]Polygon, error) {
	dec := xml.NewDecoder(r)
	var polys []Polygon
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: kml: %v", ErrInputSyntax, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, fmt.Errorf("%w: kml: %v", ErrInputSyntax, err)
		}
		for _, kp := range append(pm.Polygons, pm.Multi...) {
			p := Polygon{Name: strings.TrimSpace(pm.Name)}
			if p.Outer, err = kmlCoordinates(kp.Outer.Coordinates); err != nil {
				return nil, err
			}
			for _, in := range kp.Inner {
				h, err := kmlCoordinates(in.Coordinates)
				if err != nil {
					return nil, err
				}
				p.Holes = append(p.Holes, h)
			}
			polys = append(polys, p)
		}
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: kml: %v", ErrInputSyntax, errNoPolygons)
	}
	return polys, nil
}

func kmlCoordinates(s string) (Ring, error) {
	var ring Ring
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("%w: kml: bad coordinate tuple %q", ErrInputSyntax, tuple)
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: kml: bad coordinate tuple %q", ErrInputSyntax, tuple)
		}
		ring = append(ring, Point2D{X: x, Y: y})
	}
	return trimClosing(ring), nil
}
