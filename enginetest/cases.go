package enginetest

import "github.com/veloper/agraph"

// cases returns the sequential conformance scenarios run by Run. Each case
// defines its own before-state, which Run patches the engine to first.
//
// Together they exercise: adding a single vertex, removing a single edge, a
// larger composite scenario mixing every mutation kind in one patch, a
// round trip through the engine, query-cache invalidation after a mutation,
// and the ident-less upsert fallback that matches an edge by its endpoints
// and label.
func cases(graphName string) []testCase {
	return []testCase{
		addSingleVertex(graphName),
		removeOneEdge(graphName),
		addamsFamilyComposite(graphName),
		queryCacheInvalidation(graphName),
		upsertEdgeByEndpoints(graphName),
	}
}

// addSingleVertex: an empty graph gaining one vertex produces exactly one
// AddVertexMutation and nothing else.
func addSingleVertex(graphName string) testCase {
	return testCase{
		name:   "add_single_vertex",
		before: func() *agraph.Graph { return agraph.NewGraph(graphName) },
		after: func() *agraph.Graph {
			g := agraph.NewGraph(graphName)
			g.AddVertex(agraph.NewVertex("Person", "gomez", agraph.Properties{"name": "Gomez"}))
			return g
		},
		checks: []check{
			kindCounts(map[agraph.MutationKind]int{agraph.AddVertexMutation: 1}),
			emitsCypherContaining("CREATE"),
		},
	}
}

// removeOneEdge: starting from a graph with two vertices and one edge
// between them, removing the edge alone produces exactly one
// RemoveEdgeMutation, leaving both vertices untouched.
func removeOneEdge(graphName string) testCase {
	before := func() *agraph.Graph {
		g := agraph.NewGraph(graphName)
		g.AddVertex(agraph.NewVertex("Person", "gomez", agraph.Properties{"name": "Gomez"}))
		g.AddVertex(agraph.NewVertex("Person", "gomez", agraph.Properties{"name": "Gomez"}))
		g.AddVertex(agraph.NewVertex("Person", "morticia", agraph.Properties{"name": "Morticia"}))
		g.AddEdge(agraph.NewEdge("MARRIED_TO", "gomez_morticia", "gomez", "morticia", nil))
		return g
	}
	return testCase{
		name:   "remove_one_edge",
		before: before,
		after: func() *agraph.Graph {
			g := before()
			g.RemoveEdge("gomez_morticia")
			return g
		},
		checks: []check{
			kindCounts(map[agraph.MutationKind]int{agraph.RemoveEdgeMutation: 1}),
			emitsCypherContaining("end_ident"),
		},
	}
}

// addamsFamilyComposite mixes every mutation kind into a single patch: an
// edge removal, a vertex removal, a vertex addition, a vertex update, an edge addition, and
// an edge update, all computed from one Diff and applied as one Patch. It
// checks that the resulting mutations fall in the canonical six-phase order
// and that at least one emitted statement matches the expected Cypher shape
// for each kind.
func addamsFamilyComposite(graphName string) testCase {
	before := func() *agraph.Graph {
		g := agraph.NewGraph(graphName)
		g.AddVertex(agraph.NewVertex("Person", "gomez", agraph.Properties{"name": "Gomez", "age": 55}))
		g.AddVertex(agraph.NewVertex("Person", "morticia", agraph.Properties{"name": "Morticia"}))
		g.AddVertex(agraph.NewVertex("Person", "fester", agraph.Properties{"name": "Fester"}))
		g.AddVertex(agraph.NewVertex("Person", "cousin_itt", agraph.Properties{"name": "Cousin Itt"}))
		g.AddEdge(agraph.NewEdge("MARRIED_TO", "gomez_morticia", "gomez", "morticia", nil))
		g.AddEdge(agraph.NewEdge("SIBLING_OF", "gomez_fester", "gomez", "fester", agraph.Properties{"closeness": "distant"}))
		return g
	}
	return testCase{
		name:   "addams_family_composite",
		before: before,
		after: func() *agraph.Graph {
			g := before()
			// Fester moves out: his vertex and his one edge disappear.
			g.RemoveVertex("fester")
			// Wednesday is born.
			g.AddVertex(agraph.NewVertex("Person", "wednesday", agraph.Properties{"name": "Wednesday"}))
			// Gomez has a birthday.
			g.UpsertVertex("Person", "gomez", agraph.Properties{"age": 56})
			// Wednesday and Cousin Itt become siblings.
			g.AddEdge(agraph.NewEdge("SIBLING_OF", "wednesday_cousin_itt", "wednesday", "cousin_itt", nil))
			// Gomez and Morticia's marriage record gets an anniversary.
			g.UpsertEdge("MARRIED_TO", "gomez_morticia", "gomez", "morticia", agraph.Properties{"anniversary": "Feb 14"})
			return g
		},
		checks: []check{
			kindCounts(map[agraph.MutationKind]int{
				agraph.RemoveEdgeMutation:   1,
				agraph.RemoveVertexMutation: 1,
				agraph.AddVertexMutation:    1,
				agraph.UpdateVertexMutation: 1,
				agraph.AddEdgeMutation:      1,
				agraph.UpdateEdgeMutation:   1,
			}),
			phaseOrder(),
			emitsCypherContaining("DETACH DELETE"),
			emitsCypherContaining("CREATE (n:Person"),
			emitsCypherContaining("SET n +="),
		},
	}
}

// queryCacheInvalidation checks that a QueryBuilder's cached result does not
// leak a vertex removed after the first call: the second All() call, run
// against the after-graph, must not see the removed vertex even if the same
// builder instance's cache key happened to coincide.
func queryCacheInvalidation(graphName string) testCase {
	before := func() *agraph.Graph {
		g := agraph.NewGraph(graphName)
		g.AddVertex(agraph.NewVertex("Person", "wednesday", agraph.Properties{"name": "Wednesday"}))
		g.AddVertex(agraph.NewVertex("Person", "pugsley", agraph.Properties{"name": "Pugsley"}))
		return g
	}
	return testCase{
		name:   "query_cache_invalidation",
		before: before,
		after: func() *agraph.Graph {
			g := before()

			first := g.QueryVertices().Label("Person").All()
			if len(first) != 2 {
				panic("expected 2 Person vertices before removal")
			}

			g.RemoveVertex("pugsley")

			second := g.QueryVertices().Label("Person").All()
			if len(second) != 1 {
				panic("stale query cache returned a removed vertex")
			}
			return g
		},
		checks: []check{
			kindCounts(map[agraph.MutationKind]int{agraph.RemoveVertexMutation: 1}),
		},
	}
}

// upsertEdgeByEndpoints checks the ident-less upsert fallback: calling
// UpsertEdge with an empty ident locates the existing edge by
// (startIdent, endIdent, label) instead of creating a duplicate.
func upsertEdgeByEndpoints(graphName string) testCase {
	before := func() *agraph.Graph {
		g := agraph.NewGraph(graphName)
		g.AddVertex(agraph.NewVertex("Person", "wednesday", agraph.Properties{"name": "Wednesday"}))
		g.AddVertex(agraph.NewVertex("Person", "pugsley", agraph.Properties{"name": "Pugsley"}))
		g.AddEdge(agraph.NewEdge("SIBLING_OF", "wednesday_pugsley", "wednesday", "pugsley", nil))
		return g
	}
	return testCase{
		name:   "upsert_edge_by_endpoints",
		before: before,
		after: func() *agraph.Graph {
			g := before()
			g.UpsertEdge("SIBLING_OF", "", "wednesday", "pugsley", agraph.Properties{"closeness": "rivals"})
			if g.Edges().Len() != 1 {
				panic("ident-less upsert created a duplicate edge instead of matching the existing one")
			}
			return g
		},
		checks: []check{
			kindCounts(map[agraph.MutationKind]int{agraph.UpdateEdgeMutation: 1}),
		},
	}
}
