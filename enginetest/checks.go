package enginetest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/veloper/agraph"
	"github.com/veloper/agraph/cypher"
)

// check inspects a computed Patch before it is applied, returning a
// human-readable problem description, or "" if the patch satisfies it.
type check func(patch *agraph.Patch) string

// kindCounts asserts the patch contains exactly the given number of
// mutations of each kind, and no others.
func kindCounts(want map[agraph.MutationKind]int) check {
	return func(patch *agraph.Patch) string {
		got := map[agraph.MutationKind]int{}
		for _, m := range patch.Mutations {
			got[m.Kind]++
		}
		for kind, n := range want {
			if got[kind] != n {
				return fmt.Sprintf("mutation count for %v = %d, want %d", kind, got[kind], n)
			}
		}
		for kind, n := range got {
			if _, ok := want[kind]; !ok && n > 0 {
				return fmt.Sprintf("unexpected mutation kind %v (count %d)", kind, n)
			}
		}
		return ""
	}
}

// phaseOrder asserts that the patch's mutations appear in the canonical
// six-phase order: any remove-edge before any remove-vertex, any
// remove-vertex before any add-vertex, and so on through update-edge.
func phaseOrder() check {
	rank := map[agraph.MutationKind]int{
		agraph.RemoveEdgeMutation:   0,
		agraph.RemoveVertexMutation: 1,
		agraph.AddVertexMutation:    2,
		agraph.UpdateVertexMutation: 3,
		agraph.AddEdgeMutation:      4,
		agraph.UpdateEdgeMutation:   5,
	}
	return func(patch *agraph.Patch) string {
		last := -1
		for i, m := range patch.Mutations {
			r := rank[m.Kind]
			if r < last {
				return fmt.Sprintf("mutation %d (%v) out of phase order", i, m.Kind)
			}
			last = r
		}
		return ""
	}
}

// emitsCypherContaining asserts that emitting the patch's mutations produces
// at least one rendered statement containing substr.
func emitsCypherContaining(substr string) check {
	return func(patch *agraph.Patch) string {
		statements, err := cypher.EmitAll(patch.Mutations)
		if err != nil {
			return fmt.Sprintf("emit: %v", err)
		}
		var rendered []string
		for _, s := range statements {
			text := s.String()
			rendered = append(rendered, text)
			if strings.Contains(text, substr) {
				return ""
			}
		}
		return fmt.Sprintf("no emitted statement contains %q; got:\n%s", substr, strings.Join(rendered, "\n"))
	}
}

// isEmpty asserts the patch contains no mutations at all.
func isEmpty() check {
	return func(patch *agraph.Patch) string {
		if !patch.IsEmpty() {
			return fmt.Sprintf("expected an empty patch, got %d mutations", len(patch.Mutations))
		}
		return ""
	}
}

// graphDiff compares want against got structurally, ignoring server-assigned
// ids (got was just reloaded from an engine and carries ids that want, a
// hand-built snapshot, never does) and property-map key order.
func graphDiff(want, got *agraph.Graph) string {
	return cmp.Diff(normalizeGraph(want), normalizeGraph(got), cmpopts.EquateEmpty())
}

// comparableVertex/comparableEdge strip server ids and flatten properties
// into a form go-cmp can diff deterministically.
type comparableVertex struct {
	Label      string
	Properties map[string]any
}

type comparableEdge struct {
	Label      string
	Start, End string
	Properties map[string]any
}

type comparableGraph struct {
	Vertices []comparableVertex
	Edges    []comparableEdge
}

func normalizeGraph(g *agraph.Graph) comparableGraph {
	var out comparableGraph
	for _, v := range g.Vertices().All() {
		out.Vertices = append(out.Vertices, comparableVertex{
			Label:      v.Label(),
			Properties: map[string]any(v.Properties()),
		})
	}
	for _, e := range g.Edges().All() {
		start, _ := e.StartIdent()
		end, _ := e.EndIdent()
		out.Edges = append(out.Edges, comparableEdge{
			Label:      e.Label(),
			Start:      start,
			End:        end,
			Properties: map[string]any(e.Properties()),
		})
	}
	sort.Slice(out.Vertices, func(i, j int) bool {
		return fmt.Sprint(out.Vertices[i].Properties["ident"]) < fmt.Sprint(out.Vertices[j].Properties["ident"])
	})
	sort.Slice(out.Edges, func(i, j int) bool {
		return fmt.Sprint(out.Edges[i].Properties["ident"]) < fmt.Sprint(out.Edges[j].Properties["ident"])
	})
	return out
}
