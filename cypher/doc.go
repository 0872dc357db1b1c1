/*
Package cypher renders agraph.Mutation values into openCypher statements
suitable for execution against an Apache AGE graph via
`SELECT * FROM cypher('<graph>', $$ <statement> $$) AS (v agtype)`.

Emit is the package's single entry point: it dispatches a Mutation to the
Statement implementation for its kind and returns it; the Statement's
String method renders the openCypher text. Everything else in the package
exists to support that rendering — value encoding, clause assembly, and the
match-by-id-else-ident lookup used by the update and delete statements.

This package performs no I/O; executing the rendered statements against a
live database is the job of the ageengine package.
*/
package cypher
