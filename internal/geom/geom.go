// Package geom is the validated 2D input model: polygons, the extrusion
// interval and the scale factor, plus loaders for the supported input
// formats.
package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"

	"stepfg/internal/logging"
)

var (
	ErrInputSyntax       = errors.New("input syntax error")
	ErrMalformedGeometry = errors.New("malformed geometry")
	ErrInvalidExtrusion  = errors.New("invalid extrusion")
	ErrInvalidScale      = errors.New("invalid scale")
)

// Model is the validated, read-only geometry of one run.
type Model struct {
	polygons []Polygon
	ext      Extrusion
	scale    float64
}

// New validates the input once and returns an immutable model. The
// polygons are copied.
func New(polygons []Polygon, ext Extrusion, scale float64) (*Model, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale factor must be positive, got %v", ErrInvalidScale, scale)
	}
	if !finite(ext.Z1) || !finite(ext.Z2) {
		return nil, fmt.Errorf("%w: z-interval [%v, %v] is not finite", ErrInvalidExtrusion, ext.Z1, ext.Z2)
	}
	if ext.Z1 == ext.Z2 {
		return nil, fmt.Errorf("%w: z2 must differ from z1 in [%v, %v]", ErrInvalidExtrusion, ext.Z1, ext.Z2)
	}
	if len(polygons) == 0 {
		return nil, fmt.Errorf("%w: no polygons", ErrMalformedGeometry)
	}
	m := &Model{ext: ext, scale: scale, polygons: make([]Polygon, len(polygons))}
	for pi, p := range polygons {
		for ri, r := range p.Rings() {
			if len(r) < 3 {
				return nil, fmt.Errorf("%w: polygon %d ring %d has %d vertices, need at least 3",
					ErrMalformedGeometry, pi, ri, len(r))
			}
			for vi, v := range r {
				if !finite(v.X) || !finite(v.Y) {
					return nil, fmt.Errorf("%w: polygon %d ring %d vertex %d is not finite",
						ErrMalformedGeometry, pi, ri, vi)
				}
			}
			if planar.Area(r.orbRing()) == 0 {
				logging.Logger().Warn("zero-area ring, faces will be degenerate", "polygon", pi, "ring", ri)
			}
		}
		cp := Polygon{Name: p.Name, Outer: append(Ring(nil), p.Outer...)}
		for _, h := range p.Holes {
			cp.Holes = append(cp.Holes, append(Ring(nil), h...))
		}
		m.polygons[pi] = cp
	}
	return m, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Polygons returns the validated polygons. Callers must not modify them.
func (m *Model) Polygons() []Polygon { return m.polygons }

func (m *Model) Extrusion() Extrusion { return m.ext }

func (m *Model) Scale() float64 { return m.scale }

// ZMin and ZMax are the scaled end planes.
func (m *Model) ZMin() float64 { return m.scale * m.ext.Min() }
func (m *Model) ZMax() float64 { return m.scale * m.ext.Max() }

// Bottom returns the scaled vertex i of ring r of polygon p on the lower
// end plane. Ring 0 is the outer boundary, ring k the (k-1)th hole.
func (m *Model) Bottom(p, r, i int) r3.Vec {
	return m.at(p, r, i, m.ZMin())
}

// Top is Bottom on the upper end plane.
func (m *Model) Top(p, r, i int) r3.Vec {
	return m.at(p, r, i, m.ZMax())
}

func (m *Model) at(p, r, i int, z float64) r3.Vec {
	v := m.ring(p, r)[i]
	return r3.Vec{X: m.scale * v.X, Y: m.scale * v.Y, Z: z}
}

func (m *Model) ring(p, r int) Ring {
	if r == 0 {
		return m.polygons[p].Outer
	}
	return m.polygons[p].Holes[r-1]
}

// Bounds is the unscaled 2D bounding box of all outer rings.
func (m *Model) Bounds() orb.Bound {
	var b orb.Bound
	for i, p := range m.polygons {
		rb := p.Outer.orbRing().Bound()
		if i == 0 {
			b = rb
			continue
		}
		b = b.Union(rb)
	}
	return b
}
