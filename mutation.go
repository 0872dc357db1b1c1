package agraph

// MutationKind identifies what a Mutation does.
type MutationKind int

const (
	AddVertexMutation MutationKind = iota
	RemoveVertexMutation
	UpdateVertexMutation
	AddEdgeMutation
	RemoveEdgeMutation
	UpdateEdgeMutation
)

func (k MutationKind) String() string {
	switch k {
	case AddVertexMutation:
		return "add_vertex"
	case RemoveVertexMutation:
		return "remove_vertex"
	case UpdateVertexMutation:
		return "update_vertex"
	case AddEdgeMutation:
		return "add_edge"
	case RemoveEdgeMutation:
		return "remove_edge"
	case UpdateEdgeMutation:
		return "update_edge"
	default:
		return "unknown"
	}
}

// Mutation is a single, atomic step toward turning one graph snapshot into
// another: add or remove a vertex/edge, or update a vertex/edge's
// properties to the after-state. Patch.Mutations is an ordered sequence of these,
// produced by Diff in an order that never lets an edge reference a vertex
// that hasn't been created yet, nor outlive the vertex it's attached to.
type Mutation struct {
	Kind MutationKind

	// Vertex/Edge carry the resulting state for Add*/Update* mutations, and
	// the removed entity's last known state for Remove* mutations (useful
	// for logging and for building the Cypher match clause).
	Vertex *Vertex
	Edge   *Edge

	// StartLabel/EndLabel carry an edge mutation's endpoint vertex labels,
	// resolved by Diff from the after-graph at the time the mutation was
	// built. Add/update edge statements require both to be set: an edge's
	// MERGE pattern must constrain both endpoints by label, not just ident.
	StartLabel string
	EndLabel   string
}

// NewAddVertex returns a mutation that creates v.
func NewAddVertex(v *Vertex) Mutation { return Mutation{Kind: AddVertexMutation, Vertex: v} }

// NewRemoveVertex returns a mutation that deletes v (and, transitively, any
// edges still attached to it).
func NewRemoveVertex(v *Vertex) Mutation { return Mutation{Kind: RemoveVertexMutation, Vertex: v} }

// NewUpdateVertex returns a mutation that updates the vertex identified by
// v's ident to v's state.
func NewUpdateVertex(v *Vertex) Mutation { return Mutation{Kind: UpdateVertexMutation, Vertex: v} }

// NewAddEdge returns a mutation that creates e between its start and end
// vertices, labeled startLabel and endLabel respectively.
func NewAddEdge(e *Edge, startLabel, endLabel string) Mutation {
	return Mutation{Kind: AddEdgeMutation, Edge: e, StartLabel: startLabel, EndLabel: endLabel}
}

// NewRemoveEdge returns a mutation that deletes e.
func NewRemoveEdge(e *Edge) Mutation { return Mutation{Kind: RemoveEdgeMutation, Edge: e} }

// NewUpdateEdge returns a mutation that updates the edge identified by e's
// ident to e's state. startLabel/endLabel are its
// endpoints' labels, needed to re-render the MERGE pattern that locates it.
func NewUpdateEdge(e *Edge, startLabel, endLabel string) Mutation {
	return Mutation{Kind: UpdateEdgeMutation, Edge: e, StartLabel: startLabel, EndLabel: endLabel}
}

// Ident returns the ident of the entity this mutation targets.
func (m Mutation) Ident() string {
	if m.Vertex != nil {
		ident, _ := m.Vertex.Ident()
		return ident
	}
	if m.Edge != nil {
		ident, _ := m.Edge.Ident()
		return ident
	}
	return ""
}
