package agraph

// Vertex is a node in a property graph: a label, an optional server id, and
// a property bag carrying at minimum the caller's ident.
type Vertex struct {
	entity
}

// NewVertex builds a Vertex with the given label and ident, merging in any
// extra properties. The ident is written into props under IdentKey,
// overwriting any value already there.
func NewVertex(label, ident string, props Properties) *Vertex {
	if props == nil {
		props = NewProperties()
	} else {
		props = props.Clone()
	}
	v := &Vertex{entity{label: label, properties: props}}
	v.SetIdent(ident)
	return v
}

// NewVertexFromProperties builds a Vertex from label and properties alone:
// the ident is pulled from properties[IdentKey] if present, or generated
// otherwise. Convenient for callers that don't already have a natural
// external identity for the vertex they're creating.
func NewVertexFromProperties(label string, properties Properties) *Vertex {
	ident, ok := properties.Ident()
	if !ok || ident == "" {
		ident = GenerateIdent(3, "_")
	}
	return NewVertex(label, ident, properties)
}

// NewVertexFromRecord reconstructs a Vertex from a persisted record: a
// label, a server-assigned id, and the full property map (which must
// already carry an ident). Used by the persistence driver when rehydrating
// a snapshot.
func NewVertexFromRecord(label string, id int64, props Properties) *Vertex {
	v := &Vertex{entity{label: label, properties: props.Clone()}}
	v.SetId(id)
	return v
}

// Clone returns a deep copy of v.
func (v *Vertex) Clone() *Vertex {
	clone := &Vertex{entity{label: v.label, properties: v.Properties().Clone()}}
	if v.id != nil {
		clone.SetId(*v.id)
	}
	return clone
}

// Equal reports whether v and other carry the same label and properties.
// Server-assigned ids are not compared: two snapshots of the same logical
// vertex, one persisted and one not yet, are still equal for diffing
// purposes.
func (v *Vertex) Equal(other *Vertex) bool {
	if other == nil {
		return false
	}
	return v.label == other.label && v.Properties().Equal(other.Properties())
}

// Upsert deep-merges props into v's existing properties and, if label is
// non-empty, replaces v's label. The ident (and, transitively, start/end
// idents — irrelevant for a vertex) already present on v is always
// preserved: callers cannot accidentally overwrite it by including IdentKey
// in props.
func (v *Vertex) Upsert(label string, props Properties) {
	if label != "" {
		v.label = label
	}
	ident, _ := v.Ident()
	merged := v.Properties().DeepMerge(props)
	merged.SetIdent(ident)
	v.SetProperties(merged)
}

func (v *Vertex) validate() error { return v.entity.validate() }
