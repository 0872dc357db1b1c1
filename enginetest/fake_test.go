package enginetest

import (
	"context"
	"testing"

	"github.com/veloper/agraph"
)

// fakeEngine is an in-memory Engine used to exercise the suite itself
// without a running Postgres+AGE container: ApplyPatch mutates a held Graph
// directly, LoadGraph hands back a clone of it. The fake executes no Cypher
// itself; the suite's checks still render each patch through the cypher
// package, so a run catches bugs in Diff/Patch, in cypher emission and in
// the checks, but not in the ageengine package.
type fakeEngine struct {
	graph *agraph.Graph
}

func newFakeEngine(graphName string) *fakeEngine {
	return &fakeEngine{graph: agraph.NewGraph(graphName)}
}

func (f *fakeEngine) ApplyPatch(_ context.Context, patch *agraph.Patch) error {
	for _, m := range patch.Mutations {
		switch m.Kind {
		case agraph.AddVertexMutation, agraph.UpdateVertexMutation:
			f.graph.AddVertex(m.Vertex)
		case agraph.RemoveVertexMutation:
			ident, _ := m.Vertex.Ident()
			f.graph.RemoveVertex(ident)
		case agraph.AddEdgeMutation, agraph.UpdateEdgeMutation:
			f.graph.AddEdge(m.Edge)
		case agraph.RemoveEdgeMutation:
			ident, _ := m.Edge.Ident()
			f.graph.RemoveEdge(ident)
		}
	}
	return nil
}

func (f *fakeEngine) LoadGraph(_ context.Context) (*agraph.Graph, error) {
	return f.graph.Clone(), nil
}

// TestSuiteAgainstFakeEngine runs the full conformance suite against the
// in-memory fake, giving fast feedback on the diff/patch/emit pipeline
// without requiring Docker.
func TestSuiteAgainstFakeEngine(t *testing.T) {
	Run(t, newFakeEngine("enginetest_fake"), "enginetest_fake")
}
