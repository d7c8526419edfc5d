package geom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// NormalizeWinding returns copies of the polygons with outer rings
// counter-clockwise and holes clockwise as seen from +z, which is the
// orientation the B-rep builder assumes for outward-facing normals.
// A ring with zero signed area has no orientation and is rejected.
func NormalizeWinding(polygons []Polygon) ([]Polygon, error) {
	out := make([]Polygon, len(polygons))
	for pi, p := range polygons {
		cp := Polygon{Name: p.Name}
		for ri, r := range p.Rings() {
			want := orb.CCW
			if ri > 0 {
				want = orb.CW
			}
			oriented, err := orient(r, want)
			if err != nil {
				return nil, fmt.Errorf("polygon %d ring %d: %w", pi, ri, err)
			}
			if ri == 0 {
				cp.Outer = oriented
			} else {
				cp.Holes = append(cp.Holes, oriented)
			}
		}
		out[pi] = cp
	}
	return out, nil
}

func orient(r Ring, want orb.Orientation) (Ring, error) {
	cp := append(Ring(nil), r...)
	if len(r) < 3 {
		return cp, nil // left for New to reject
	}
	got := r.orbRing().Orientation()
	if got == 0 {
		return nil, fmt.Errorf("%w: ring is neither clockwise nor counter-clockwise", ErrMalformedGeometry)
	}
	if got != want {
		for i, j := 0, len(cp)-1; i < j; i, j = i+1, j-1 {
			cp[i], cp[j] = cp[j], cp[i]
		}
	}
	return cp, nil
}
