package cypher

import (
	"github.com/veloper/agraph"
)

// Emit renders m as the Statement appropriate for its kind. It returns an
// error only if m carries a kind it doesn't recognize, is missing the
// entity its kind requires, or is an add/update edge mutation without both
// endpoint labels — a well-formed Patch produced by agraph.Diff triggers
// none of these cases.
func Emit(m agraph.Mutation) (Statement, error) {
	switch m.Kind {
	case agraph.AddVertexMutation:
		if m.Vertex == nil {
			return nil, &agraph.EmissionError{Reason: "add_vertex mutation missing vertex"}
		}
		return AddVertexStatement{Vertex: m.Vertex}, nil
	case agraph.UpdateVertexMutation:
		if m.Vertex == nil {
			return nil, &agraph.EmissionError{Reason: "update_vertex mutation missing vertex"}
		}
		return UpdateVertexStatement{Vertex: m.Vertex}, nil
	case agraph.RemoveVertexMutation:
		if m.Vertex == nil {
			return nil, &agraph.EmissionError{Reason: "remove_vertex mutation missing vertex"}
		}
		return DeleteVertexStatement{Vertex: m.Vertex}, nil
	case agraph.AddEdgeMutation:
		if m.Edge == nil {
			return nil, &agraph.EmissionError{Reason: "add_edge mutation missing edge"}
		}
		if m.StartLabel == "" || m.EndLabel == "" {
			return nil, &agraph.EmissionError{Ident: m.Ident(), Reason: "add_edge mutation missing an endpoint label"}
		}
		return AddEdgeStatement{Edge: m.Edge, StartLabel: m.StartLabel, EndLabel: m.EndLabel}, nil
	case agraph.UpdateEdgeMutation:
		if m.Edge == nil {
			return nil, &agraph.EmissionError{Reason: "update_edge mutation missing edge"}
		}
		if m.StartLabel == "" || m.EndLabel == "" {
			return nil, &agraph.EmissionError{Ident: m.Ident(), Reason: "update_edge mutation missing an endpoint label"}
		}
		return UpdateEdgeStatement{Edge: m.Edge, StartLabel: m.StartLabel, EndLabel: m.EndLabel}, nil
	case agraph.RemoveEdgeMutation:
		if m.Edge == nil {
			return nil, &agraph.EmissionError{Reason: "remove_edge mutation missing edge"}
		}
		return DeleteEdgeStatement{Edge: m.Edge}, nil
	default:
		return nil, &agraph.EmissionError{Ident: m.Ident(), Reason: "unrecognized mutation kind"}
	}
}

// EmitAll renders every mutation in patch, in order.
func EmitAll(mutations []agraph.Mutation) ([]Statement, error) {
	statements := make([]Statement, 0, len(mutations))
	for _, m := range mutations {
		stmt, err := Emit(m)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}
