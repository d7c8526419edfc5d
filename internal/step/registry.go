package step

// Key names a logical entity, e.g. the bottom vertex 3 of ring 0 of solid
// 1. Entities registered under the same key share one ID. The zero Key is
// anonymous: every Add with it issues a new ID.
type Key struct {
	Kind               string
	Solid, Ring, Index int
	Sub                int // plane, edge kind, face kind or sense, depending on Kind
}

// Record is a registered entity with its ID.
type Record struct {
	ID     ID
	Entity Entity
}

// Registry is an arena of entity records. IDs start at 1 and are issued in
// registration order without gaps.
type Registry struct {
	ids     map[Key]ID
	records []Entity
}

func NewRegistry() *Registry {
	return &Registry{ids: make(map[Key]ID)}
}

// Add registers e under k and returns its ID. If k was registered before,
// the existing ID is returned and e is discarded.
func (r *Registry) Add(k Key, e Entity) ID {
	if k != (Key{}) {
		if id, ok := r.ids[k]; ok {
			return id
		}
	}
	r.records = append(r.records, e)
	id := ID(len(r.records))
	if k != (Key{}) {
		r.ids[k] = id
	}
	return id
}

// New registers an anonymous entity.
func (r *Registry) New(e Entity) ID {
	return r.Add(Key{}, e)
}

// Lookup returns the ID registered under k.
func (r *Registry) Lookup(k Key) (ID, bool) {
	id, ok := r.ids[k]
	return id, ok
}

// Len is the number of records, which is also the highest issued ID.
func (r *Registry) Len() int { return len(r.records) }

// Has reports whether id was issued.
func (r *Registry) Has(id ID) bool { return id >= 1 && int(id) <= len(r.records) }

// Records returns all records in ID order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	for i, e := range r.records {
		out[i] = Record{ID: ID(i + 1), Entity: e}
	}
	return out
}

// Count returns how many records have an entity of the given type name as
// their first part.
func (r *Registry) Count(name string) int {
	n := 0
	for _, e := range r.records {
		if len(e) > 0 && e[0].Name == name {
			n++
		}
	}
	return n
}
