package agraph_test

import (
	"testing"

	. "github.com/veloper/agraph"
)

func TestNewVertexSetsIdent(t *testing.T) {
	v := NewVertex("Person", "gomez", Properties{"name": "Gomez"})
	if ident, ok := v.Ident(); !ok || ident != "gomez" {
		t.Errorf("Ident() = (%q, %v), want (%q, true)", ident, ok, "gomez")
	}
	if v.HasId() {
		t.Errorf("HasId() = true for a vertex never persisted")
	}
}

func TestVertexEqualIgnoresId(t *testing.T) {
	a := NewVertex("Person", "gomez", Properties{"name": "Gomez"})
	b := NewVertexFromRecord("Person", 42, Properties{"ident": "gomez", "name": "Gomez"})
	if !a.Equal(b) {
		t.Errorf("Equal() = false for vertices differing only by server id")
	}
}

func TestVertexUpsertPreservesIdent(t *testing.T) {
	v := NewVertex("Person", "gomez", Properties{"name": "Gomez", "age": 55})
	v.Upsert("", Properties{"age": 56})

	if ident, _ := v.Ident(); ident != "gomez" {
		t.Errorf("Upsert changed the ident to %q", ident)
	}
	if v.Label() != "Person" {
		t.Errorf("Upsert with an empty label changed Label() to %q", v.Label())
	}
	age, _ := v.Properties().Get("age")
	if age != 56 {
		t.Errorf("Properties()[age] = %v, want 56", age)
	}
	name, _ := v.Properties().Get("name")
	if name != "Gomez" {
		t.Errorf("Upsert clobbered an untouched property: name = %v", name)
	}
}

func TestVertexCloneIsIndependent(t *testing.T) {
	v := NewVertex("Person", "gomez", Properties{"name": "Gomez"})
	clone := v.Clone()
	clone.Properties().Set("name", "Morticia")

	name, _ := v.Properties().Get("name")
	if name != "Gomez" {
		t.Errorf("mutating a clone's properties affected the original")
	}
}
