// Package step writes B-rep bodies as ISO 10303-21 exchange files using
// the AP203 (CONFIG_CONTROL_DESIGN) schema.
//
// Records are collected in a Registry, which hands out entity identifiers
// and deduplicates logically identical entities, and are then rendered by
// Write.
package step

import "gonum.org/v1/gonum/spatial/r3"

// ID is an entity instance name, written as #n.
type ID int

// Param is one attribute value of an entity record.
type Param interface {
	isParam()
}

type (
	Str  string  // 'text'
	Real float64 // always written with a decimal point
	Int  int
	Enum string // .NAME.
	Bool bool   // .T. / .F.
	List []Param
	// Typed is a typed parameter such as LENGTH_MEASURE(0.005).
	Typed struct {
		Name  string
		Value Param
	}
	special string
)

const (
	Unset   special = "$"
	Derived special = "*"
)

func (ID) isParam()      {}
func (Str) isParam()     {}
func (Real) isParam()    {}
func (Int) isParam()     {}
func (Enum) isParam()    {}
func (Bool) isParam()    {}
func (List) isParam()    {}
func (Typed) isParam()   {}
func (special) isParam() {}

// Part is one partial entity: a type name and its attributes.
type Part struct {
	Name   string
	Params []Param
}

// Entity is a simple instance (one part) or a complex instance (several
// parts, listed in alphabetical order as the exchange format requires).
type Entity []Part

// Simple builds a single-part entity.
func Simple(name string, params ...Param) Entity {
	return Entity{{Name: name, Params: params}}
}

// Complex builds a multi-part entity.
func Complex(parts ...Part) Entity {
	return Entity(parts)
}

// Refs builds an aggregate of references.
func Refs(ids ...ID) List {
	out := make(List, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

// Coords builds a coordinate triple.
func Coords(v r3.Vec) List {
	return List{Real(v.X), Real(v.Y), Real(v.Z)}
}
