package brep

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"stepfg/internal/geom"
	"stepfg/internal/logging"
)

var (
	zUp   = r3.Vec{Z: 1}
	zDown = r3.Vec{Z: -1}
	xAxis = r3.Vec{X: 1}
	yAxis = r3.Vec{Y: 1}
)

// Build extrudes every polygon of m into its own closed shell and solid.
//
// For a ring b_0..b_n-1 (bottom) / t_0..t_n-1 (top) the bottom cap walks
// the ring backwards, the top cap forwards, and side face i is
// [b_i, b_i+1, t_i+1, t_i]. With outer rings counter-clockwise and holes
// clockwise seen from +z every face normal points out of the solid; with
// the opposite winding they all point in.
func Build(m *geom.Model) *Body {
	body := &Body{}
	for pi, p := range m.Polygons() {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("PartBody.%d", pi+1)
		}
		s := &Solid{Index: pi, Name: name, Shell: buildShell(m, pi, len(p.Rings()))}
		logging.Logger().Debug("built shell", "solid", s.Name, "stats", s.Shell.Stats().String())
		body.Solids = append(body.Solids, s)
	}
	return body
}

// ringTopology is the deduplicated vertex and edge table of one ring.
type ringTopology struct {
	bottom, top          []*Vertex
	bottomE, topE, sideE []*Edge
}

func buildShell(m *geom.Model, pi, rings int) *Shell {
	sh := &Shell{}
	rts := make([]ringTopology, rings)
	for r := range rings {
		rts[r] = buildRing(m, sh, pi, r)
	}

	bottom := &Face{Kind: BottomCap, Normal: zDown, RefDir: xAxis, Origin: rts[0].bottom[0].Point}
	top := &Face{Kind: TopCap, Normal: zUp, RefDir: xAxis, Origin: rts[0].top[0].Point}
	for r, rt := range rts {
		n := len(rt.bottom)
		down := make(Loop, 0, n)
		for i := n - 1; i >= 0; i-- {
			down = append(down, OrientedEdge{Edge: rt.bottomE[i]})
		}
		up := make(Loop, 0, n)
		for i := range n {
			up = append(up, OrientedEdge{Edge: rt.topE[i], Forward: true})
		}
		if r == 0 {
			bottom.Outer, top.Outer = down, up
		} else {
			bottom.Inner = append(bottom.Inner, down)
			top.Inner = append(top.Inner, up)
		}
	}
	sh.Faces = append(sh.Faces, bottom, top)

	for r, rt := range rts {
		n := len(rt.bottom)
		for i := range n {
			j := (i + 1) % n
			f := &Face{
				Kind:  SideFace,
				Ring:  r,
				Index: i,
				Outer: Loop{
					{Edge: rt.bottomE[i], Forward: true},
					{Edge: rt.sideE[j], Forward: true},
					{Edge: rt.topE[i]},
					{Edge: rt.sideE[i]},
				},
				Origin: rt.bottom[i].Point,
			}
			f.Normal, f.RefDir = sideFrame(rt.bottomE[i].Vector())
			sh.Faces = append(sh.Faces, f)
		}
	}
	return sh
}

func buildRing(m *geom.Model, sh *Shell, pi, r int) ringTopology {
	n := len(m.Polygons()[pi].Rings()[r])
	rt := ringTopology{
		bottom:  make([]*Vertex, n),
		top:     make([]*Vertex, n),
		bottomE: make([]*Edge, n),
		topE:    make([]*Edge, n),
		sideE:   make([]*Edge, n),
	}
	for i := range n {
		rt.bottom[i] = &Vertex{Ring: r, Index: i, Plane: Bottom, Point: m.Bottom(pi, r, i)}
		rt.top[i] = &Vertex{Ring: r, Index: i, Plane: Top, Point: m.Top(pi, r, i)}
	}
	sh.Vertices = append(sh.Vertices, rt.bottom...)
	sh.Vertices = append(sh.Vertices, rt.top...)
	for i := range n {
		j := (i + 1) % n
		rt.bottomE[i] = &Edge{Kind: BottomEdge, Ring: r, Index: i, Start: rt.bottom[i], End: rt.bottom[j]}
		rt.topE[i] = &Edge{Kind: TopEdge, Ring: r, Index: i, Start: rt.top[i], End: rt.top[j]}
		rt.sideE[i] = &Edge{Kind: SideEdge, Ring: r, Index: i, Start: rt.bottom[i], End: rt.top[i]}
	}
	sh.Edges = append(sh.Edges, rt.bottomE...)
	sh.Edges = append(sh.Edges, rt.topE...)
	sh.Edges = append(sh.Edges, rt.sideE...)
	return rt
}

// sideFrame returns the outward normal and in-plane reference direction of
// the side face swept by a horizontal edge with vector d. A zero-length
// edge gets a fixed frame so the output never carries NaN.
func sideFrame(d r3.Vec) (normal, ref r3.Vec) {
	if r3.Norm(d) == 0 {
		return xAxis, yAxis
	}
	return r3.Unit(r3.Cross(d, zUp)), r3.Unit(d)
}
