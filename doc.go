/*
Package agraph models a property graph — vertices, edges, and their
string-keyed property maps — entirely in memory, and computes the minimal
ordered set of mutations needed to turn one graph snapshot into another.

A Graph owns a Vertices and an Edges container. Each Vertex and Edge carries
a caller-assigned string identity (Ident) used to track it across snapshots,
and an optional server-assigned integer Id populated once the entity has been
persisted by a graph database.

	g := agraph.NewGraph("family")
	g.AddVertex(agraph.NewVertex("Person", "gomez", agraph.Properties{"name": "Gomez"}))
	g.AddVertex(agraph.NewVertex("Person", "morticia", agraph.Properties{"name": "Morticia"}))
	g.AddEdge(agraph.NewEdge("MARRIED_TO", "gomez_morticia", "gomez", "morticia", nil))

Diff computes the ordered Mutation sequence between two graphs:

	patch, err := agraph.Diff(before, after)

Rendering those mutations to Cypher and executing them against a database
is the job of the cypher and ageengine packages; this package never performs
I/O.
*/
package agraph
