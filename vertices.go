package agraph

// Vertices is an ordered collection of Vertex values, indexed by ident for
// O(1) lookup. Insertion order is preserved for deterministic iteration
// (diffing, snapshot export).
type Vertices struct {
	order []*Vertex
	byIdent map[string]*Vertex
}

// NewVertices returns an empty Vertices container.
func NewVertices() *Vertices {
	return &Vertices{byIdent: make(map[string]*Vertex)}
}

// Add inserts v, replacing any existing vertex with the same ident in
// place (preserving its position in iteration order).
func (vs *Vertices) Add(v *Vertex) {
	ident, _ := v.Ident()
	if existing, ok := vs.byIdent[ident]; ok {
		for i, cur := range vs.order {
			if cur == existing {
				vs.order[i] = v
				break
			}
		}
		vs.byIdent[ident] = v
		return
	}
	vs.order = append(vs.order, v)
	vs.byIdent[ident] = v
}

// Remove deletes the vertex with the given ident, if present.
func (vs *Vertices) Remove(ident string) {
	v, ok := vs.byIdent[ident]
	if !ok {
		return
	}
	delete(vs.byIdent, ident)
	for i, cur := range vs.order {
		if cur == v {
			vs.order = append(vs.order[:i], vs.order[i+1:]...)
			break
		}
	}
}

// GetByIdent returns the vertex with the given ident, if any.
func (vs *Vertices) GetByIdent(ident string) (*Vertex, bool) {
	v, ok := vs.byIdent[ident]
	return v, ok
}

// Len returns the number of vertices.
func (vs *Vertices) Len() int { return len(vs.order) }

// All returns the vertices in insertion order. The returned slice is owned
// by the caller; mutating it does not affect vs.
func (vs *Vertices) All() []*Vertex {
	out := make([]*Vertex, len(vs.order))
	copy(out, vs.order)
	return out
}

// Query returns a QueryBuilder scoped to vertices, backed by cache.
func (vs *Vertices) Query(graphName string, cache *queryCache) *QueryBuilder[*Vertex] {
	return newQueryBuilder[*Vertex](graphName, cache.vertices, func() []queryItem {
		items := make([]queryItem, len(vs.order))
		for i, v := range vs.order {
			items[i] = v
		}
		return items
	})
}

// Clone returns a deep copy of vs.
func (vs *Vertices) Clone() *Vertices {
	out := NewVertices()
	for _, v := range vs.order {
		out.Add(v.Clone())
	}
	return out
}
