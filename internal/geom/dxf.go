package geom

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"stepfg/internal/logging"
)

const dxfTolerance = 1e-9

// ParseDXF reads closed polylines from the model-space ENTITIES section.
// LWPOLYLINE counts as closed when its closed flag is set or its end points
// coincide; POLYLINE only when its end points coincide. Each polyline is an
// outer ring named after its layer. Block definitions are not expanded.
//
// encoding selects how layer names are decoded; "gbk" is supported for
// drawings saved by Chinese-locale CAD tools, anything else keeps the raw
// bytes.
func ParseDXF(r io.Reader, encoding string) ([]Polygon, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("%w: dxf: %v", ErrInputSyntax, err)
	}
	log := logging.Logger()
	var polys []Polygon
	for _, entity := range doc.Entities.Entities {
		switch e := entity.(type) {
		case *entities.LWPolyline:
			var ring Ring
			for _, v := range e.Points {
				ring = append(ring, Point2D{X: v.Point.X, Y: v.Point.Y})
			}
			if !e.Closed && !dxfClosed(ring) {
				log.Debug("skipping open LWPOLYLINE", "layer", e.LayerName)
				continue
			}
			polys = append(polys, Polygon{Name: decodeLayer(e.LayerName, encoding), Outer: dxfTrim(ring)})
		case *entities.Polyline:
			var ring Ring
			for _, v := range e.Vertices {
				ring = append(ring, Point2D{X: v.Location.X, Y: v.Location.Y})
			}
			if !dxfClosed(ring) {
				log.Debug("skipping open POLYLINE", "layer", e.LayerName)
				continue
			}
			polys = append(polys, Polygon{Name: decodeLayer(e.LayerName, encoding), Outer: dxfTrim(ring)})
		}
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: dxf: %v", ErrInputSyntax, errNoPolygons)
	}
	return polys, nil
}

func dxfEqual(a, b Point2D) bool {
	return math.Abs(a.X-b.X) < dxfTolerance && math.Abs(a.Y-b.Y) < dxfTolerance
}

func dxfClosed(r Ring) bool {
	return len(r) > 1 && dxfEqual(r[0], r[len(r)-1])
}

func dxfTrim(r Ring) Ring {
	for dxfClosed(r) {
		r = r[:len(r)-1]
	}
	return r
}

func decodeLayer(name, encoding string) string {
	if !strings.EqualFold(encoding, "gbk") {
		return name
	}
	out, _, err := transform.String(simplifiedchinese.GBK.NewDecoder(), name)
	if err != nil {
		return name
	}
	return out
}
