package assert_test

import (
	"testing"

	"github.com/veloper/agraph"
	"github.com/veloper/agraph/assert"
)

func TestOneToOneRetractsBothDirections(t *testing.T) {
	g := agraph.NewGraph("assert")
	g.UpsertVertex("Person", "gomez", nil)
	g.UpsertVertex("Person", "morticia", nil)
	g.UpsertVertex("Person", "fester", nil)

	assert.Graph(g).OneToOne("MARRIED_TO", "gomez", "morticia")
	assert.Graph(g).OneToOne("MARRIED_TO", "gomez", "fester")

	if got := g.QueryEdges().Label("MARRIED_TO").StartIdent("gomez").All(); len(got) != 1 {
		t.Fatalf("len(edges from gomez) = %d, want 1", len(got))
	}
	edge, ok := g.QueryEdges().Label("MARRIED_TO").StartIdent("gomez").First()
	if !ok {
		t.Fatal("expected an edge from gomez")
	}
	if end, _ := edge.EndIdent(); end != "fester" {
		t.Errorf("edge from gomez ends at %q, want %q", end, "fester")
	}
}

func TestOneToManyKeepsOneSourcePerTarget(t *testing.T) {
	g := agraph.NewGraph("assert")
	g.UpsertVertex("Person", "gomez", nil)
	g.UpsertVertex("Person", "morticia", nil)
	g.UpsertVertex("Person", "wednesday", nil)

	assert.Graph(g).OneToMany("PARENT_OF", "gomez", "wednesday")
	assert.Graph(g).OneToMany("PARENT_OF", "morticia", "wednesday")

	if got := g.QueryEdges().Label("PARENT_OF").EndIdent("wednesday").All(); len(got) != 1 {
		t.Fatalf("len(edges to wednesday) = %d, want 1 (last write wins)", len(got))
	}
}

func TestManyToOneKeepsOneTargetPerSource(t *testing.T) {
	g := agraph.NewGraph("assert")
	g.UpsertVertex("Person", "wednesday", nil)
	g.UpsertVertex("Pet", "thing", nil)
	g.UpsertVertex("Pet", "cousin_itt", nil)

	assert.Graph(g).ManyToOne("OWNS", "wednesday", "thing")
	assert.Graph(g).ManyToOne("OWNS", "wednesday", "cousin_itt")

	if got := g.QueryEdges().Label("OWNS").StartIdent("wednesday").All(); len(got) != 1 {
		t.Fatalf("len(edges from wednesday) = %d, want 1 (last write wins)", len(got))
	}
}

func TestManyToManyNeverRetracts(t *testing.T) {
	g := agraph.NewGraph("assert")
	g.UpsertVertex("Person", "gomez", nil)
	g.UpsertVertex("Club", "addams_family", nil)
	g.UpsertVertex("Club", "mariachi_society", nil)

	assert.Graph(g).ManyToMany("MEMBER_OF", "gomez", "addams_family")
	assert.Graph(g).ManyToMany("MEMBER_OF", "gomez", "mariachi_society")

	if got := g.QueryEdges().Label("MEMBER_OF").StartIdent("gomez").All(); len(got) != 2 {
		t.Fatalf("len(edges from gomez) = %d, want 2", len(got))
	}
}

func TestOneToOnePanicsOnPriorManyRelationship(t *testing.T) {
	g := agraph.NewGraph("assert")
	g.UpsertVertex("Person", "gomez", nil)
	g.UpsertVertex("Club", "addams_family", nil)
	g.UpsertVertex("Club", "mariachi_society", nil)

	assert.Graph(g).ManyToMany("MEMBER_OF", "gomez", "addams_family")
	assert.Graph(g).ManyToMany("MEMBER_OF", "gomez", "mariachi_society")

	defer func() {
		if recover() == nil {
			t.Fatal("OneToOne on a prior many-to-many relationship did not panic")
		}
	}()
	assert.Graph(g).OneToOne("MEMBER_OF", "gomez", "addams_family")
}
