package step

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"stepfg/internal/brep"
	"stepfg/internal/logging"
)

// Encode registers the product context and every solid of body, and
// returns the filled registry ready for Write.
func Encode(body *brep.Body, hdr Header) (*Registry, error) {
	if body == nil || len(body.Solids) == 0 {
		return nil, fmt.Errorf("%w: nothing to encode", ErrSerialization)
	}
	reg := NewRegistry()
	ctx := registerProduct(reg, hdr)
	e := encoder{reg: reg}

	solids := make([]ID, 0, len(body.Solids))
	for si, s := range body.Solids {
		id, err := e.solid(si, s)
		if err != nil {
			return nil, fmt.Errorf("solid %s: %w", s.Name, err)
		}
		solids = append(solids, id)
	}

	brepRep := reg.Add(Key{Kind: "advanced_brep_shape_representation"},
		Simple("ADVANCED_BREP_SHAPE_REPRESENTATION", Str("NONE"), Refs(solids...), ctx.geometricContext))
	reg.Add(Key{Kind: "shape_representation_relationship"},
		Simple("SHAPE_REPRESENTATION_RELATIONSHIP", Str("NONE"), Str("relationship between shapes"), ctx.shapeRep, brepRep))

	logging.Logger().Debug("encoded body", "solids", len(solids), "records", reg.Len())
	return reg, nil
}

type encoder struct {
	reg *Registry
}

func (e encoder) ref(k Key) (ID, error) {
	id, ok := e.reg.Lookup(k)
	if !ok {
		return 0, fmt.Errorf("%w: no %s for solid %d ring %d index %d (%d)",
			ErrSerialization, k.Kind, k.Solid, k.Ring, k.Index, k.Sub)
	}
	return id, nil
}

func vertexKey(kind string, si int, v *brep.Vertex) Key {
	return Key{Kind: kind, Solid: si, Ring: v.Ring, Index: v.Index, Sub: int(v.Plane)}
}

func edgeKey(kind string, si int, ed *brep.Edge) Key {
	return Key{Kind: kind, Solid: si, Ring: ed.Ring, Index: ed.Index, Sub: int(ed.Kind)}
}

func (e encoder) solid(si int, s *brep.Solid) (ID, error) {
	sh := s.Shell
	for _, v := range sh.Vertices {
		pt := e.reg.Add(vertexKey("point", si, v), Simple("CARTESIAN_POINT", Str(""), Coords(v.Point)))
		e.reg.Add(vertexKey("vertex", si, v), Simple("VERTEX_POINT", Str(""), pt))
	}
	for _, ed := range sh.Edges {
		if err := e.edge(si, ed); err != nil {
			return 0, err
		}
	}
	faces := make([]ID, 0, len(sh.Faces))
	for _, f := range sh.Faces {
		id, err := e.face(si, f)
		if err != nil {
			return 0, err
		}
		faces = append(faces, id)
	}
	shell := e.reg.Add(Key{Kind: "closed_shell", Solid: si}, Simple("CLOSED_SHELL", Str(""), Refs(faces...)))
	return e.reg.Add(Key{Kind: "manifold_solid_brep", Solid: si},
		Simple("MANIFOLD_SOLID_BREP", Str(s.Name), shell)), nil
}

func (e encoder) edge(si int, ed *brep.Edge) error {
	start, err := e.ref(vertexKey("vertex", si, ed.Start))
	if err != nil {
		return err
	}
	end, err := e.ref(vertexKey("vertex", si, ed.End))
	if err != nil {
		return err
	}
	origin, err := e.ref(vertexKey("point", si, ed.Start))
	if err != nil {
		return err
	}

	d := ed.Vector()
	length := r3.Norm(d)
	dir := r3.Vec{X: 1}
	if length > 0 {
		dir = r3.Unit(d)
	}
	dirID := e.reg.Add(edgeKey("direction", si, ed), Simple("DIRECTION", Str(""), Coords(dir)))
	vec := e.reg.Add(edgeKey("vector", si, ed), Simple("VECTOR", Str(""), dirID, Real(length)))
	line := e.reg.Add(edgeKey("line", si, ed), Simple("LINE", Str(""), origin, vec))
	e.reg.Add(edgeKey("edge_curve", si, ed), Simple("EDGE_CURVE", Str(""), start, end, line, Bool(true)))
	return nil
}

func (e encoder) orientedEdge(si int, oe brep.OrientedEdge) (ID, error) {
	curve, err := e.ref(edgeKey("edge_curve", si, oe.Edge))
	if err != nil {
		return 0, err
	}
	sense := 0
	if oe.Forward {
		sense = 1
	}
	k := Key{Kind: "oriented_edge", Solid: si, Ring: oe.Edge.Ring, Index: oe.Edge.Index, Sub: int(oe.Edge.Kind)*2 + sense}
	return e.reg.Add(k, Simple("ORIENTED_EDGE", Str(""), Derived, Derived, curve, Bool(oe.Forward))), nil
}

func (e encoder) loop(si int, l brep.Loop) (ID, error) {
	edges := make([]ID, 0, len(l))
	for _, oe := range l {
		id, err := e.orientedEdge(si, oe)
		if err != nil {
			return 0, err
		}
		edges = append(edges, id)
	}
	return e.reg.New(Simple("EDGE_LOOP", Str(""), Refs(edges...))), nil
}

func (e encoder) face(si int, f *brep.Face) (ID, error) {
	outer, err := e.loop(si, f.Outer)
	if err != nil {
		return 0, err
	}
	bounds := []ID{e.reg.New(Simple("FACE_OUTER_BOUND", Str(""), outer, Bool(true)))}
	for _, l := range f.Inner {
		inner, err := e.loop(si, l)
		if err != nil {
			return 0, err
		}
		bounds = append(bounds, e.reg.New(Simple("FACE_BOUND", Str(""), inner, Bool(true))))
	}

	origin := e.reg.New(Simple("CARTESIAN_POINT", Str(""), Coords(f.Origin)))
	axis := e.reg.New(Simple("DIRECTION", Str(""), Coords(f.Normal)))
	ref := e.reg.New(Simple("DIRECTION", Str(""), Coords(f.RefDir)))
	placement := e.reg.New(Simple("AXIS2_PLACEMENT_3D", Str(""), origin, axis, ref))
	plane := e.reg.New(Simple("PLANE", Str(""), placement))

	k := Key{Kind: "advanced_face", Solid: si, Ring: f.Ring, Index: f.Index, Sub: int(f.Kind)}
	return e.reg.Add(k, Simple("ADVANCED_FACE", Str(""), Refs(bounds...), plane, Bool(true))), nil
}
