// Package brep builds the boundary representation of extruded polygons:
// vertices, edges, oriented loops, planar faces, closed shells and solids.
//
// Every entity is created once while walking the model and is not modified
// afterwards. Vertices and edges are shared by reference between the faces
// that use them, so a vertex or edge is one value no matter how many loops
// point at it.
package brep

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane selects one of the two end planes of the extrusion.
type Plane int

const (
	Bottom Plane = iota
	Top
)

func (p Plane) String() string {
	if p == Top {
		return "top"
	}
	return "bottom"
}

type EdgeKind int

const (
	BottomEdge EdgeKind = iota // b_i -> b_i+1
	TopEdge                    // t_i -> t_i+1
	SideEdge                   // b_i -> t_i
)

type FaceKind int

const (
	BottomCap FaceKind = iota
	TopCap
	SideFace
)

func (k FaceKind) String() string {
	switch k {
	case BottomCap:
		return "bottom cap"
	case TopCap:
		return "top cap"
	}
	return "side"
}

// Vertex is vertex Index of ring Ring on one end plane.
type Vertex struct {
	Ring, Index int
	Plane       Plane
	Point       r3.Vec
}

// Edge is a straight segment from Start to End.
type Edge struct {
	Kind        EdgeKind
	Ring, Index int
	Start, End  *Vertex
}

// Vector is End - Start.
func (e *Edge) Vector() r3.Vec { return r3.Sub(e.End.Point, e.Start.Point) }

// OrientedEdge is an edge as traversed by a loop. Forward means Start to End.
type OrientedEdge struct {
	Edge    *Edge
	Forward bool
}

func (oe OrientedEdge) From() *Vertex {
	if oe.Forward {
		return oe.Edge.Start
	}
	return oe.Edge.End
}

func (oe OrientedEdge) To() *Vertex {
	if oe.Forward {
		return oe.Edge.End
	}
	return oe.Edge.Start
}

// Loop is a closed chain of oriented edges: each edge ends where the next
// one starts, and the last ends where the first starts.
type Loop []OrientedEdge

// Face is a planar face. Normal points out of the solid; RefDir is a unit
// vector in the plane. Inner holds one loop per hole (caps only).
type Face struct {
	Kind        FaceKind
	Ring, Index int // side faces: the ring edge they sweep
	Outer       Loop
	Inner       []Loop
	Origin      r3.Vec
	Normal      r3.Vec
	RefDir      r3.Vec
}

// Loops returns the outer loop followed by the inner loops.
func (f *Face) Loops() []Loop {
	return append([]Loop{f.Outer}, f.Inner...)
}

// Shell is the closed face set of one extruded polygon.
type Shell struct {
	Vertices []*Vertex
	Edges    []*Edge
	Faces    []*Face
}

// Solid is one manifold solid, one per input polygon.
type Solid struct {
	Index int
	Name  string
	Shell *Shell
}

// Body is every solid of a run.
type Body struct {
	Solids []*Solid
}

// Stats counts topology entities.
type Stats struct {
	Solids, Faces, Edges, Vertices int
}

func (s Stats) String() string {
	return fmt.Sprintf("solids=%d faces=%d edges=%d vertices=%d", s.Solids, s.Faces, s.Edges, s.Vertices)
}

func (s *Shell) Stats() Stats {
	return Stats{Solids: 1, Faces: len(s.Faces), Edges: len(s.Edges), Vertices: len(s.Vertices)}
}

func (b *Body) Stats() Stats {
	var st Stats
	for _, s := range b.Solids {
		ss := s.Shell.Stats()
		st.Solids++
		st.Faces += ss.Faces
		st.Edges += ss.Edges
		st.Vertices += ss.Vertices
	}
	return st
}
