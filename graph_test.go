package agraph_test

import (
	"testing"

	. "github.com/veloper/agraph"
)

func TestGraphUpsertVertexCreatesThenMerges(t *testing.T) {
	g := NewGraph("addams")

	v := g.UpsertVertex("Person", "gomez", Properties{"age": 55})
	if v.Label() != "Person" {
		t.Fatalf("Label() = %q, want %q", v.Label(), "Person")
	}

	g.UpsertVertex("", "gomez", Properties{"age": 56})
	if got, ok := g.Vertices().GetByIdent("gomez"); !ok {
		t.Fatal("vertex disappeared after upsert")
	} else if age, _ := got.Properties().Get("age"); age != 56 {
		t.Errorf("age = %v, want 56", age)
	}
	if g.Vertices().Len() != 1 {
		t.Errorf("Vertices().Len() = %d, want 1 (upsert must not duplicate)", g.Vertices().Len())
	}
}

func TestGraphUpsertEdgeFallsBackToEndpoints(t *testing.T) {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "wednesday", nil))
	g.AddVertex(NewVertex("Person", "pugsley", nil))
	g.AddEdge(NewEdge("SIBLING_OF", "wednesday_pugsley", "wednesday", "pugsley", nil))

	g.UpsertEdge("SIBLING_OF", "", "wednesday", "pugsley", Properties{"closeness": "rivals"})

	if g.Edges().Len() != 1 {
		t.Fatalf("Edges().Len() = %d, want 1", g.Edges().Len())
	}
	e, _ := g.Edges().GetByIdent("wednesday_pugsley")
	closeness, _ := e.Properties().Get("closeness")
	if closeness != "rivals" {
		t.Errorf("closeness = %v, want %q", closeness, "rivals")
	}
}

func TestGraphUpsertEdgeGeneratesIdentWhenNoneMatches(t *testing.T) {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "gomez", nil))
	g.AddVertex(NewVertex("Person", "fester", nil))

	e := g.UpsertEdge("SIBLING_OF", "", "gomez", "fester", nil)

	ident, ok := e.Ident()
	if !ok || ident == "" {
		t.Errorf("generated edge has no ident")
	}
	if g.Edges().Len() != 1 {
		t.Errorf("Edges().Len() = %d, want 1", g.Edges().Len())
	}
}

func TestGraphRemoveVertexCascadesToEdges(t *testing.T) {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "gomez", nil))
	g.AddVertex(NewVertex("Person", "morticia", nil))
	g.AddEdge(NewEdge("MARRIED_TO", "gomez_morticia", "gomez", "morticia", nil))

	g.RemoveVertex("gomez")

	if _, ok := g.Edges().GetByIdent("gomez_morticia"); ok {
		t.Errorf("edge touching a removed vertex was not cascaded away")
	}
}

func TestGraphValidateCatchesDanglingEdge(t *testing.T) {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "gomez", nil))
	g.AddEdge(NewEdge("MARRIED_TO", "gomez_morticia", "gomez", "morticia", nil))

	if err := g.Validate(); err == nil {
		t.Fatal("Validate() = nil, want a ReferentialError for the dangling end_ident")
	}
}

func TestGraphCloneIsIndependent(t *testing.T) {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "gomez", Properties{"age": 55}))

	clone := g.Clone()
	clone.UpsertVertex("", "gomez", Properties{"age": 99})

	v, _ := g.Vertices().GetByIdent("gomez")
	if age, _ := v.Properties().Get("age"); age != 55 {
		t.Errorf("mutating a clone affected the original graph: age = %v", age)
	}
}

func TestGraphQueryCacheInvalidatedOnMutation(t *testing.T) {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "wednesday", nil))
	g.AddVertex(NewVertex("Person", "pugsley", nil))

	before := g.QueryVertices().Label("Person").All()
	if len(before) != 2 {
		t.Fatalf("len(before) = %d, want 2", len(before))
	}

	g.RemoveVertex("pugsley")

	after := g.QueryVertices().Label("Person").All()
	if len(after) != 1 {
		t.Errorf("len(after) = %d, want 1 (stale cache entry was served)", len(after))
	}
}
