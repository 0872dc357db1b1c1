package agraph

// Edge is a directed, labeled relationship between two vertices, identified
// by the idents of its endpoints rather than their (possibly still-unknown)
// server ids.
type Edge struct {
	entity

	// startId/endId are the endpoints' server-assigned ids, known only once
	// an edge has been loaded from (or persisted to) a graph database. The
	// delete-edge match clause prefers these over start_ident/end_ident when
	// both are present.
	startId *int64
	endId   *int64
}

// NewEdge builds an Edge with the given label, ident, and endpoint idents,
// merging in any extra properties. The three idents are written into props
// under IdentKey/StartIdentKey/EndIdentKey, overwriting any values already
// there.
func NewEdge(label, ident, startIdent, endIdent string, props Properties) *Edge {
	if props == nil {
		props = NewProperties()
	} else {
		props = props.Clone()
	}
	e := &Edge{entity: entity{label: label, properties: props}}
	e.SetIdent(ident)
	e.Properties().SetStartIdent(startIdent)
	e.Properties().SetEndIdent(endIdent)
	return e
}

// NewEdgeFromRecord reconstructs an Edge from a persisted record: a label, a
// server-assigned id, the endpoints' server-assigned ids (if known), and the
// full property map (which must already carry ident/start_ident/end_ident).
// Used by the persistence driver when rehydrating a snapshot.
func NewEdgeFromRecord(label string, id int64, startId, endId *int64, props Properties) *Edge {
	e := &Edge{entity: entity{label: label, properties: props.Clone()}}
	e.SetId(id)
	if startId != nil {
		e.SetStartId(*startId)
	}
	if endId != nil {
		e.SetEndId(*endId)
	}
	return e
}

// StartIdent returns the ident of the edge's start vertex.
func (e *Edge) StartIdent() (string, bool) { return e.Properties().StartIdent() }

// EndIdent returns the ident of the edge's end vertex.
func (e *Edge) EndIdent() (string, bool) { return e.Properties().EndIdent() }

// StartId returns the server-assigned id of the edge's start vertex, if
// known.
func (e *Edge) StartId() (int64, bool) {
	if e.startId == nil {
		return 0, false
	}
	return *e.startId, true
}

// SetStartId records the server-assigned id of the edge's start vertex.
func (e *Edge) SetStartId(id int64) { e.startId = &id }

// EndId returns the server-assigned id of the edge's end vertex, if known.
func (e *Edge) EndId() (int64, bool) {
	if e.endId == nil {
		return 0, false
	}
	return *e.endId, true
}

// SetEndId records the server-assigned id of the edge's end vertex.
func (e *Edge) SetEndId(id int64) { e.endId = &id }

// Clone returns a deep copy of e.
func (e *Edge) Clone() *Edge {
	clone := &Edge{entity: entity{label: e.label, properties: e.Properties().Clone()}}
	if e.id != nil {
		clone.SetId(*e.id)
	}
	if e.startId != nil {
		clone.SetStartId(*e.startId)
	}
	if e.endId != nil {
		clone.SetEndId(*e.endId)
	}
	return clone
}

// Equal reports whether e and other carry the same label, endpoints, and
// properties, independent of property-map iteration order.
func (e *Edge) Equal(other *Edge) bool {
	if other == nil {
		return false
	}
	startA, _ := e.StartIdent()
	endA, _ := e.EndIdent()
	startB, _ := other.StartIdent()
	endB, _ := other.EndIdent()
	return e.label == other.label && startA == startB && endA == endB && e.Properties().Equal(other.Properties())
}

// Upsert deep-merges props into e's existing properties and, if label is
// non-empty, replaces e's label. The ident, start_ident, and end_ident
// already present on e are always preserved: callers cannot accidentally
// retarget an edge's endpoints by including those keys in props.
func (e *Edge) Upsert(label string, props Properties) {
	if label != "" {
		e.label = label
	}
	ident, _ := e.Ident()
	startIdent, _ := e.StartIdent()
	endIdent, _ := e.EndIdent()
	merged := e.Properties().DeepMerge(props)
	merged.SetIdent(ident)
	merged.SetStartIdent(startIdent)
	merged.SetEndIdent(endIdent)
	e.SetProperties(merged)
}

func (e *Edge) validate() error {
	if err := e.entity.validate(); err != nil {
		return err
	}
	if start, ok := e.StartIdent(); !ok || start == "" {
		return &ValidationError{Ident: identOf(&e.entity), Reason: "start_ident must be set"}
	}
	if end, ok := e.EndIdent(); !ok || end == "" {
		return &ValidationError{Ident: identOf(&e.entity), Reason: "end_ident must be set"}
	}
	return nil
}
