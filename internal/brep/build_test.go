package brep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"stepfg/internal/geom"
)

func mustModel(t *testing.T, polys []geom.Polygon, ext geom.Extrusion, scale float64) *geom.Model {
	t.Helper()
	m, err := geom.New(polys, ext, scale)
	require.NoError(t, err)
	return m
}

func square() geom.Polygon {
	return geom.Polygon{Outer: geom.Ring{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}}
}

func TestBuildSquare(t *testing.T) {
	t.Parallel()

	body := Build(mustModel(t, []geom.Polygon{square()}, geom.Extrusion{Z1: 0, Z2: 10}, 10))
	require.Len(t, body.Solids, 1)
	assert.Equal(t, Stats{Solids: 1, Faces: 6, Edges: 12, Vertices: 8}, body.Stats())
	assert.Equal(t, "PartBody.1", body.Solids[0].Name)
	require.NoError(t, body.CheckClosed())

	sh := body.Solids[0].Shell
	var bottom, top []r3.Vec
	for _, v := range sh.Vertices {
		if v.Plane == Bottom {
			bottom = append(bottom, v.Point)
		} else {
			top = append(top, v.Point)
		}
	}
	assert.Equal(t, []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 20, Y: 0, Z: 0}, {X: 20, Y: 20, Z: 0}, {X: 0, Y: 20, Z: 0}}, bottom)
	assert.Equal(t, []r3.Vec{{X: 0, Y: 0, Z: 100}, {X: 20, Y: 0, Z: 100}, {X: 20, Y: 20, Z: 100}, {X: 0, Y: 20, Z: 100}}, top)
}

func TestBuildFaceCountsAndIncidence(t *testing.T) {
	t.Parallel()

	for n := 3; n <= 9; n++ {
		ring := make(geom.Ring, n)
		for i := range ring {
			// convex, counter-clockwise
			ring[i] = geom.Point2D{X: float64(i), Y: float64(i * i)}
		}
		ring[0] = geom.Point2D{X: 0, Y: float64(n * n)}
		body := Build(mustModel(t, []geom.Polygon{{Outer: ring}}, geom.Extrusion{Z1: -1, Z2: 1}, 1))
		sh := body.Solids[0].Shell

		assert.Len(t, sh.Faces, n+2, "n=%d", n)
		assert.Len(t, sh.Edges, 3*n, "n=%d", n)
		assert.Len(t, sh.Vertices, 2*n, "n=%d", n)
		require.NoError(t, sh.CheckClosed(), "n=%d", n)

		capEdges := map[*Vertex]int{}
		sideEdges := map[*Vertex]int{}
		for _, e := range sh.Edges {
			if e.Kind == SideEdge {
				sideEdges[e.Start]++
				sideEdges[e.End]++
				continue
			}
			capEdges[e.Start]++
			capEdges[e.End]++
		}
		for _, v := range sh.Vertices {
			assert.Equal(t, 2, capEdges[v], "cap edges at %s vertex %d", v.Plane, v.Index)
			assert.Equal(t, 1, sideEdges[v], "side edges at %s vertex %d", v.Plane, v.Index)
		}
	}
}

func TestBuildOutwardNormals(t *testing.T) {
	t.Parallel()

	body := Build(mustModel(t, []geom.Polygon{square()}, geom.Extrusion{Z1: 0, Z2: 1}, 1))
	centre := r3.Vec{X: 1, Y: 1, Z: 0.5}
	for _, f := range body.Solids[0].Shell.Faces {
		// normal agrees with the right-hand rule on the outer loop
		a := f.Outer[0].From().Point
		b := f.Outer[1].From().Point
		c := f.Outer[2].From().Point
		winding := r3.Unit(r3.Cross(r3.Sub(b, a), r3.Sub(c, b)))
		assert.InDelta(t, 1, r3.Dot(winding, f.Normal), 1e-12, "%s face %d", f.Kind, f.Index)

		// and points away from the centre of the box
		assert.Positive(t, r3.Dot(f.Normal, r3.Sub(f.Origin, centre)), "%s face %d", f.Kind, f.Index)
		assert.InDelta(t, 0, r3.Dot(f.Normal, f.RefDir), 1e-12)
	}
}

func TestBuildReversedWindingPointsInward(t *testing.T) {
	t.Parallel()

	cw := geom.Polygon{Outer: geom.Ring{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}}
	body := Build(mustModel(t, []geom.Polygon{cw}, geom.Extrusion{Z1: 0, Z2: 1}, 1))
	centre := r3.Vec{X: 1, Y: 1, Z: 0.5}
	for _, f := range body.Solids[0].Shell.Faces {
		if f.Kind != SideFace {
			continue
		}
		assert.Negative(t, r3.Dot(f.Normal, r3.Sub(f.Origin, centre)))
	}
	// still topologically closed
	assert.NoError(t, body.CheckClosed())
}

func TestBuildWithHole(t *testing.T) {
	t.Parallel()

	p := geom.Polygon{
		Name:  "washer",
		Outer: geom.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Holes: []geom.Ring{{{X: 3, Y: 3}, {X: 3, Y: 6}, {X: 6, Y: 6}}},
	}
	body := Build(mustModel(t, []geom.Polygon{p}, geom.Extrusion{Z1: 0, Z2: 2}, 1))
	sh := body.Solids[0].Shell

	assert.Equal(t, "washer", body.Solids[0].Name)
	assert.Len(t, sh.Faces, 2+4+3)
	assert.Len(t, sh.Edges, 3*(4+3))
	assert.Len(t, sh.Vertices, 2*(4+3))
	require.NoError(t, sh.CheckClosed())

	for _, f := range sh.Faces[:2] {
		require.Len(t, f.Inner, 1, f.Kind.String())
		assert.Len(t, f.Inner[0], 3)
	}
	// hole side faces face into the hole
	holeCentre := r3.Vec{X: 4, Y: 5, Z: 1}
	for _, f := range sh.Faces {
		if f.Kind == SideFace && f.Ring == 1 {
			assert.Positive(t, r3.Dot(f.Normal, r3.Sub(holeCentre, f.Origin)))
		}
	}
}

func TestBuildMultiplePolygons(t *testing.T) {
	t.Parallel()

	other := geom.Polygon{Outer: geom.Ring{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5.5, Y: 1}}}
	body := Build(mustModel(t, []geom.Polygon{square(), other}, geom.Extrusion{Z1: 0, Z2: 1}, 1))
	require.Len(t, body.Solids, 2)
	assert.Equal(t, "PartBody.2", body.Solids[1].Name)
	assert.Equal(t, Stats{Solids: 2, Faces: 6 + 5, Edges: 12 + 9, Vertices: 8 + 6}, body.Stats())
}

func TestBuildDegenerateEdgeHasFiniteFrame(t *testing.T) {
	t.Parallel()

	p := geom.Polygon{Outer: geom.Ring{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}
	body := Build(mustModel(t, []geom.Polygon{p}, geom.Extrusion{Z1: 0, Z2: 1}, 1))
	f := body.Solids[0].Shell.Faces[2]
	assert.Equal(t, xAxis, f.Normal)
	assert.Equal(t, yAxis, f.RefDir)
}

func TestCheckClosedDetectsBrokenShell(t *testing.T) {
	t.Parallel()

	body := Build(mustModel(t, []geom.Polygon{square()}, geom.Extrusion{Z1: 0, Z2: 1}, 1))
	sh := body.Solids[0].Shell
	sh.Faces = sh.Faces[:len(sh.Faces)-1]
	assert.ErrorIs(t, sh.CheckClosed(), ErrOpenShell)
}
