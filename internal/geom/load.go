package geom

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stepfg/internal/logging"
)

// LoadOptions tunes format-specific decoding.
type LoadOptions struct {
	DXFEncoding string
}

// Formats lists the recognised input extensions; anything else is read as
// the native literal format.
var Formats = []string{".txt", ".wkt", ".geojson", ".json", ".csv", ".kml", ".dxf"}

// Load reads an input file, choosing the format by extension.
func Load(path string, opts LoadOptions) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	logging.Logger().Debug("loading input", "path", path, "format", ext)

	var polys []Polygon
	switch ext {
	case ".wkt":
		polys, err = ParseWKT(string(data))
	case ".geojson", ".json":
		polys, err = ParseGeoJSON(data)
	case ".csv":
		polys, err = ParseCSV(bytes.NewReader(data))
	case ".kml":
		polys, err = ParseKML(bytes.NewReader(data))
	case ".dxf":
		polys, err = ParseDXF(bytes.NewReader(data), opts.DXFEncoding)
	default:
		return ParseLiteral(string(data))
	}
	if err != nil {
		return Input{}, err
	}
	return Input{Polygons: polys}, nil
}

// Resolve applies extrusion and scale overrides: a non-nil argument
// replaces the value read from the file. Both must be known afterwards.
func Resolve(in Input, ext *Extrusion, scale *float64) (Input, error) {
	if ext != nil {
		in.Extrusion = ext
	}
	if scale != nil {
		in.Scale = scale
	}
	if in.Extrusion == nil {
		return Input{}, fmt.Errorf("%w: no z-coordinate interval given", ErrInputSyntax)
	}
	if in.Scale == nil {
		return Input{}, fmt.Errorf("%w: no proportionality coefficient given", ErrInputSyntax)
	}
	return in, nil
}
