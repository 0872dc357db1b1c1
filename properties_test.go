package agraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/veloper/agraph"
)

func TestPropertiesIdentAccessors(t *testing.T) {
	p := NewProperties()
	if p.HasIdent() {
		t.Errorf("HasIdent(empty) = true, want false")
	}
	p.SetIdent("gomez")
	if got, _ := p.Ident(); got != "gomez" {
		t.Errorf("Ident() = %q, want %q", got, "gomez")
	}
}

func TestPropertiesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Properties
		want bool
	}{
		{"equal maps, different order", Properties{"a": 1, "b": 2}, Properties{"b": 2, "a": 1}, true},
		{"different values", Properties{"a": 1}, Properties{"a": 2}, false},
		{"slice order matters", Properties{"a": []any{1, 2}}, Properties{"a": []any{2, 1}}, false},
		{"nested maps, different order", Properties{"a": Properties{"x": 1, "y": 2}}, Properties{"a": Properties{"y": 2, "x": 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertiesDeepMerge(t *testing.T) {
	base := Properties{
		"name": "Gomez",
		"address": Properties{
			"city":  "Westfield",
			"state": "NJ",
		},
		"pets": []any{
			Properties{"name": "Thing", "kind": "hand"},
		},
	}
	patch := Properties{
		"address": Properties{
			"city": "Cemetery Ridge",
		},
		"pets": []any{
			Properties{"kind": "severed hand"},
		},
	}

	got := base.DeepMerge(patch)

	want := Properties{
		"name": "Gomez",
		"address": Properties{
			"city":  "Cemetery Ridge",
			"state": "NJ",
		},
		"pets": []any{
			Properties{"name": "Thing", "kind": "severed hand"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeepMerge mismatch (-want +got):\n%s", diff)
	}

	// base itself must be untouched.
	city, _ := base.Get("address")
	if city.(Properties)["city"] != "Westfield" {
		t.Errorf("DeepMerge mutated the receiver")
	}
}

func TestPropertiesClone(t *testing.T) {
	base := Properties{"nested": Properties{"a": 1}}
	clone := base.Clone()
	clone["nested"].(Properties)["a"] = 2

	if base["nested"].(Properties)["a"] != 1 {
		t.Errorf("Clone shares structure with the original")
	}
}
