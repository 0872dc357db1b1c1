/*
Package ageengine persists an agraph.Graph to a Postgres database carrying
the Apache AGE extension, and rehydrates one back out.

Engine wraps a *pgxpool.Pool and a target AGE graph name. EnsureGraph,
DropGraph, and TruncateGraph manage the graph's lifecycle; LoadGraph
rehydrates a full snapshot; ApplyPatch renders an agraph.Patch to Cypher via
the cypher package and executes it as a single transaction.

Every Cypher statement issued by this package is wrapped as:

	SELECT * FROM cypher('<graph>', $$ <statement> $$) AS (v agtype)

after first running `LOAD 'age'; SET search_path = ag_catalog, "$user", public;`
on the connection, matching how Apache AGE expects Cypher queries to be
issued from a plain SQL client.
*/
package ageengine
