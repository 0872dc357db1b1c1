package cypher

import (
	"fmt"

	"github.com/veloper/agraph"
)

// AddVertexStatement creates a new vertex.
type AddVertexStatement struct {
	Vertex *agraph.Vertex
}

func (s AddVertexStatement) String() string {
	return fmt.Sprintf("CREATE (n:%s %s) RETURN n", s.Vertex.Label(), encodeDict(propsMap(s.Vertex.Properties())))
}

// UpdateVertexStatement locates an existing vertex (by id if known, else by
// ident) and merge-assigns its properties. The label only constrains the
// MATCH; it is not written.
type UpdateVertexStatement struct {
	Vertex *agraph.Vertex
}

func (s UpdateVertexStatement) String() string {
	var id *int64
	if v, ok := s.Vertex.Id(); ok {
		id = &v
	}
	ident, _ := s.Vertex.Ident()
	match := matchClause("n", s.Vertex.Label(), id, map[string]any{agraph.IdentKey: ident})
	return fmt.Sprintf("%s %s RETURN n", match, encodeSetAssign("n", propsMap(s.Vertex.Properties())))
}

// DeleteVertexStatement removes a vertex and detaches any edges still
// touching it.
type DeleteVertexStatement struct {
	Vertex *agraph.Vertex
}

func (s DeleteVertexStatement) String() string {
	var id *int64
	if v, ok := s.Vertex.Id(); ok {
		id = &v
	}
	ident, _ := s.Vertex.Ident()
	match := matchClause("n", s.Vertex.Label(), id, map[string]any{agraph.IdentKey: ident})
	return fmt.Sprintf("%s DETACH DELETE n", match)
}
