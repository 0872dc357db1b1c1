package agraph

// Edges is an ordered collection of Edge values, indexed by ident for O(1)
// lookup. Insertion order is preserved for deterministic iteration.
type Edges struct {
	order   []*Edge
	byIdent map[string]*Edge
}

// NewEdges returns an empty Edges container.
func NewEdges() *Edges {
	return &Edges{byIdent: make(map[string]*Edge)}
}

// Add inserts e, replacing any existing edge with the same ident in place
// (preserving its position in iteration order).
func (es *Edges) Add(e *Edge) {
	ident, _ := e.Ident()
	if existing, ok := es.byIdent[ident]; ok {
		for i, cur := range es.order {
			if cur == existing {
				es.order[i] = e
				break
			}
		}
		es.byIdent[ident] = e
		return
	}
	es.order = append(es.order, e)
	es.byIdent[ident] = e
}

// Remove deletes the edge with the given ident, if present.
func (es *Edges) Remove(ident string) {
	e, ok := es.byIdent[ident]
	if !ok {
		return
	}
	delete(es.byIdent, ident)
	for i, cur := range es.order {
		if cur == e {
			es.order = append(es.order[:i], es.order[i+1:]...)
			break
		}
	}
}

// GetByIdent returns the edge with the given ident, if any.
func (es *Edges) GetByIdent(ident string) (*Edge, bool) {
	e, ok := es.byIdent[ident]
	return e, ok
}

// Len returns the number of edges.
func (es *Edges) Len() int { return len(es.order) }

// All returns the edges in insertion order. The returned slice is owned by
// the caller; mutating it does not affect es.
func (es *Edges) All() []*Edge {
	out := make([]*Edge, len(es.order))
	copy(out, es.order)
	return out
}

// Query returns a QueryBuilder scoped to edges, backed by cache.
func (es *Edges) Query(graphName string, cache *queryCache) *QueryBuilder[*Edge] {
	return newQueryBuilder[*Edge](graphName, cache.edges, func() []queryItem {
		items := make([]queryItem, len(es.order))
		for i, e := range es.order {
			items[i] = e
		}
		return items
	})
}

// Clone returns a deep copy of es.
func (es *Edges) Clone() *Edges {
	out := NewEdges()
	for _, e := range es.order {
		out.Add(e.Clone())
	}
	return out
}
