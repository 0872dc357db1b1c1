/*
Package assert provides syntax sugar for maintaining the cardinality of
relationships between vertices in a property graph according to common
patterns. The most common patterns are one-to-one, one-to-many, many-to-one,
and many-to-many associations.

Ensuring that these relationships are correctly established and maintained is
essential for keeping a graph consistent as mutations accumulate over time:
without it, repeated upserts of the same logical relationship quietly pile up
duplicate or contradictory edges.
*/
package assert

import (
	"fmt"

	"github.com/veloper/agraph"
)

// Graph wraps g to support relationship-cardinality assertions in addition
// to its ordinary vertex/edge operations.
//
// When asserting a relationship between two idents, the relation must hold
// for every source/target pair of that label consistently: every source
// ident and target ident connected by edges of that label must always be
// asserted with the same relationship kind.
//
// The assertion methods panic if they find more edges than the asserted
// cardinality allows before they can establish the new one. The graph is not
// directly observed for this; rather, the number of edges retracted hints at
// the prior state of the graph. More edges than the relationship kind
// permits means the graph already lost its integrity, most likely because a
// caller asserted conflicting relationship kinds for the same label.
func Graph(g *agraph.Graph) relationshipWriter {
	return relationshipWriter{g}
}

type relationshipWriter struct {
	g *agraph.Graph
}

// retractEdgesFrom removes every label-edge whose start ident is sourceIdent
// and returns how many were removed.
func (a relationshipWriter) retractEdgesFrom(label, sourceIdent string) int {
	matches := a.g.QueryEdges().Label(label).StartIdent(sourceIdent).All()
	for _, e := range matches {
		ident, _ := e.Ident()
		a.g.RemoveEdge(ident)
	}
	return len(matches)
}

// retractEdgesTo removes every label-edge whose end ident is targetIdent and
// returns how many were removed.
func (a relationshipWriter) retractEdgesTo(label, targetIdent string) int {
	matches := a.g.QueryEdges().Label(label).EndIdent(targetIdent).All()
	for _, e := range matches {
		ident, _ := e.Ident()
		a.g.RemoveEdge(ident)
	}
	return len(matches)
}

// OneToOne asserts that a strict one-to-one label relationship exists
// between sourceIdent and targetIdent.
//
// To maintain the one-to-one relationship, any prior connections are
// adjusted:
//
//   - Label-edges originating from sourceIdent are retracted.
//   - Label-edges arriving at targetIdent are retracted.
//
// If retracting either direction finds more than one prior edge, OneToOne
// panics: that can only happen if some earlier call asserted a looser
// relationship kind for the same label.
func (a relationshipWriter) OneToOne(label, sourceIdent, targetIdent string) {
	if from := a.retractEdgesFrom(label, sourceIdent); from > 1 {
		panic(newGraphIntegrityError("one-to-one", "from source", from))
	}
	if to := a.retractEdgesTo(label, targetIdent); to > 1 {
		panic(newGraphIntegrityError("one-to-one", "to target", to))
	}
	a.g.UpsertEdge(label, "", sourceIdent, targetIdent, nil)
}

// OneToMany asserts that a strict one-to-many label relationship exists
// between sourceIdent and targetIdent: sourceIdent may point at many
// targets, but each target has at most one source.
//
// To maintain it, every label-edge arriving at targetIdent is retracted
// before the sourceIdent→targetIdent edge is upserted; edges from
// sourceIdent to other targets are left alone.
//
// If retracting arrivals at targetIdent finds more than one prior edge,
// OneToMany panics for the same reason OneToOne does.
func (a relationshipWriter) OneToMany(label, sourceIdent, targetIdent string) {
	if to := a.retractEdgesTo(label, targetIdent); to > 1 {
		panic(newGraphIntegrityError("one-to-many", "to target", to))
	}
	a.g.UpsertEdge(label, "", sourceIdent, targetIdent, nil)
}

// ManyToOne asserts that a strict many-to-one label relationship exists
// between sourceIdent and targetIdent: sourceIdent may only point at a
// single target, but many sources may point at the same targetIdent.
//
// To maintain it, every label-edge originating from sourceIdent is retracted
// before the sourceIdent→targetIdent edge is upserted; edges arriving at
// targetIdent from other sources are left alone.
//
// If retracting departures from sourceIdent finds more than one prior edge,
// ManyToOne panics for the same reason OneToOne does.
func (a relationshipWriter) ManyToOne(label, sourceIdent, targetIdent string) {
	if from := a.retractEdgesFrom(label, sourceIdent); from > 1 {
		panic(newGraphIntegrityError("many-to-one", "from source", from))
	}
	a.g.UpsertEdge(label, "", sourceIdent, targetIdent, nil)
}

// ManyToMany asserts that a label-edge exists between sourceIdent and
// targetIdent without retracting any other edge of that label: many sources
// may point at many targets. ManyToMany never panics.
func (a relationshipWriter) ManyToMany(label, sourceIdent, targetIdent string) {
	a.g.UpsertEdge(label, "", sourceIdent, targetIdent, nil)
}

// newGraphIntegrityError reports that a graph's edges violated the
// cardinality a relationship assertion expected to find, indicating that an
// earlier caller asserted a conflicting relationship kind for the same
// label.
func newGraphIntegrityError(relationship, direction string, affectedEdges int) error {
	return fmt.Errorf("inconsistent graph detected: relationship %v was violated with %v affected edges %v", relationship, affectedEdges, direction)
}
