package cypher

import (
	"fmt"

	"github.com/veloper/agraph"
)

// AddEdgeStatement matches the start and end vertices by label and ident
// and creates a new edge between them. It uses MERGE rather than CREATE so
// that replaying the same mutation twice (e.g. after a retried transaction)
// is idempotent. StartLabel and EndLabel must both be set: an endpoint
// match with no label constraint could land on a vertex of the wrong kind
// that merely happens to share the ident.
type AddEdgeStatement struct {
	Edge       *agraph.Edge
	StartLabel string
	EndLabel   string
}

func (s AddEdgeStatement) String() string {
	return upsertEdgeClause(s.Edge, s.StartLabel, s.EndLabel)
}

// UpdateEdgeStatement matches the start and end vertices by label and ident
// and MERGEs the relationship between them. An edge's label and endpoints
// are immutable once created, so an update renders the same MATCH/MATCH/MERGE
// pattern as an addition. The MERGE pattern carries the edge's full property
// map, so it matches an existing relationship only when every listed
// property already has that value; otherwise MERGE creates a new
// relationship.
type UpdateEdgeStatement struct {
	Edge       *agraph.Edge
	StartLabel string
	EndLabel   string
}

func (s UpdateEdgeStatement) String() string {
	return upsertEdgeClause(s.Edge, s.StartLabel, s.EndLabel)
}

func upsertEdgeClause(e *agraph.Edge, startLabel, endLabel string) string {
	start, _ := e.StartIdent()
	end, _ := e.EndIdent()
	return fmt.Sprintf(
		"MATCH (a:%s {%s: %s}) MATCH (b:%s {%s: %s}) MERGE (a)-[r:%s %s]->(b) RETURN r",
		startLabel, encodeKeyword(agraph.IdentKey), encodeValue(start),
		endLabel, encodeKeyword(agraph.IdentKey), encodeValue(end),
		e.Label(), encodeDict(propsMap(e.Properties())),
	)
}

// DeleteEdgeStatement removes an edge, located by its endpoints rather than
// its own identity.
type DeleteEdgeStatement struct {
	Edge *agraph.Edge
}

func (s DeleteEdgeStatement) String() string {
	return fmt.Sprintf("%s DELETE r", edgeEndpointMatchClause(s.Edge))
}

// edgeEndpointMatchClause matches an edge by its endpoints' server-assigned
// ids when both are known, falling back to start_ident/end_ident otherwise.
func edgeEndpointMatchClause(e *agraph.Edge) string {
	label := e.Label()
	if startId, ok := e.StartId(); ok {
		if endId, ok := e.EndId(); ok {
			return fmt.Sprintf("MATCH ()-[r:%s {start_id: %d, end_id: %d}]->()", label, startId, endId)
		}
	}
	start, _ := e.StartIdent()
	end, _ := e.EndIdent()
	return fmt.Sprintf(
		"MATCH ()-[r:%s {%s: %s, %s: %s}]->()",
		label,
		encodeKeyword(agraph.StartIdentKey), encodeValue(start),
		encodeKeyword(agraph.EndIdentKey), encodeValue(end),
	)
}
