package agraph_test

import (
	"testing"

	. "github.com/veloper/agraph"
)

func addamsGraph() *Graph {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "gomez", Properties{"name": "Gomez", "age": 55}))
	g.AddVertex(NewVertex("Person", "morticia", Properties{"name": "Morticia", "age": 50}))
	g.AddVertex(NewVertex("Person", "wednesday", Properties{"name": "Wednesday", "age": 16}))
	g.AddVertex(NewVertex("Pet", "thing", Properties{"name": "Thing"}))
	return g
}

func TestQueryBuilderLabelAndProp(t *testing.T) {
	g := addamsGraph()

	people := g.QueryVertices().Label("Person").All()
	if len(people) != 3 {
		t.Fatalf("len(people) = %d, want 3", len(people))
	}

	gomez, ok := g.QueryVertices().Prop("name", "Gomez").First()
	if !ok {
		t.Fatal("Prop(name, Gomez).First() found nothing")
	}
	if ident, _ := gomez.Ident(); ident != "gomez" {
		t.Errorf("First().Ident() = %q, want %q", ident, "gomez")
	}
}

func TestQueryBuilderSortAndReverse(t *testing.T) {
	g := addamsGraph()

	byAgeAsc := g.QueryVertices().Label("Person").Sort("age", false).All()
	if len(byAgeAsc) != 3 {
		t.Fatalf("len(byAgeAsc) = %d, want 3", len(byAgeAsc))
	}
	firstAge, _ := byAgeAsc[0].Properties().Get("age")
	if firstAge != 16 {
		t.Errorf("byAgeAsc[0].age = %v, want 16 (Wednesday, youngest)", firstAge)
	}

	byAgeDesc := g.QueryVertices().Label("Person").Sort("age", true).All()
	lastAge, _ := byAgeDesc[0].Properties().Get("age")
	if lastAge != 55 {
		t.Errorf("byAgeDesc[0].age = %v, want 55 (Gomez, oldest)", lastAge)
	}
}

// TestQueryBuilderSortDescendingPreservesTieOrder checks that Sort(key,
// true) breaks ties between equal sort keys by input order, the same as
// ascending sort does — not by reversing an ascending-sorted slice, which
// would also flip the relative order of tied entities.
func TestQueryBuilderSortDescendingPreservesTieOrder(t *testing.T) {
	g := NewGraph("addams")
	g.AddVertex(NewVertex("Person", "gomez", Properties{"age": 55}))
	g.AddVertex(NewVertex("Person", "morticia", Properties{"age": 55}))
	g.AddVertex(NewVertex("Person", "fester", Properties{"age": 55}))

	got := g.QueryVertices().Label("Person").Sort("age", true).All()
	var idents []string
	for _, v := range got {
		ident, _ := v.Ident()
		idents = append(idents, ident)
	}
	want := []string{"gomez", "morticia", "fester"}
	for i, ident := range want {
		if idents[i] != ident {
			t.Errorf("Sort(age, true) tie order = %v, want %v", idents, want)
			break
		}
	}
}

func TestQueryBuilderImmutableChaining(t *testing.T) {
	g := addamsGraph()

	base := g.QueryVertices().Label("Person")
	narrowed := base.Prop("name", "Gomez")

	if len(base.All()) != 3 {
		t.Errorf("chaining off base mutated it: len(base.All()) = %d, want 3", len(base.All()))
	}
	if len(narrowed.All()) != 1 {
		t.Errorf("len(narrowed.All()) = %d, want 1", len(narrowed.All()))
	}
}

func TestQueryBuilderFilterRequiresExplicitCacheKey(t *testing.T) {
	g := addamsGraph()

	adults := g.QueryVertices().Filter("age_gte_18", func(v *Vertex) bool {
		age, ok := v.Properties().Get("age")
		return ok && age.(int) >= 18
	}).All()

	if len(adults) != 2 {
		t.Errorf("len(adults) = %d, want 2 (Gomez and Morticia)", len(adults))
	}
}

func TestQueryBuilderEdgeEndpointFilters(t *testing.T) {
	g := addamsGraph()
	g.AddEdge(NewEdge("MARRIED_TO", "gomez_morticia", "gomez", "morticia", nil))
	g.AddEdge(NewEdge("SIBLING_OF", "wednesday_pugsley", "wednesday", "pugsley", nil))

	fromGomez := g.QueryEdges().StartIdent("gomez").All()
	if len(fromGomez) != 1 {
		t.Errorf("len(fromGomez) = %d, want 1", len(fromGomez))
	}

	toMorticia := g.QueryEdges().EndIdent("morticia").All()
	if len(toMorticia) != 1 {
		t.Errorf("len(toMorticia) = %d, want 1", len(toMorticia))
	}

	// StartIdent/EndIdent on a vertex builder always yields nothing, since
	// vertices don't implement the endpointed interface.
	if got := g.QueryVertices().StartIdent("gomez").All(); len(got) != 0 {
		t.Errorf("QueryVertices().StartIdent() returned %d results, want 0", len(got))
	}
}
