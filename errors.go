package agraph

import "fmt"

// Sentinel errors identifying each category in the error taxonomy. Use
// errors.Is against these to classify a failure without string matching.
var (
	// ErrValidation marks a failure to satisfy a structural invariant on a
	// Vertex, Edge, or Properties value before it ever reaches the diff or
	// emission stage (missing ident, missing start/end ident, empty label,
	// ...). An endpoint ident that names no vertex is an ErrReferential.
	ErrValidation = fmt.Errorf("validation error")

	// ErrReferential marks an edge whose start or end ident cannot be
	// resolved against the graph it claims to belong to.
	ErrReferential = fmt.Errorf("referential error")

	// ErrEmission marks a failure while rendering a Mutation to Cypher. A
	// well-formed Mutation should never reach this state; seeing it means an
	// upstream validation step let something through it shouldn't have.
	ErrEmission = fmt.Errorf("emission error")

	// ErrDriver marks a failure returned by the persistence layer itself
	// (connection, transaction, or query execution failure).
	ErrDriver = fmt.Errorf("driver error")

	// ErrNotFound marks a lookup (by ident or id) that found nothing.
	ErrNotFound = fmt.Errorf("not found")
)

// ValidationError reports that ent (identified by ident, or "<unknown>" if it
// has none) failed a structural invariant, for the reason given.
type ValidationError struct {
	Ident  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", identOrUnknown(e.Ident), e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ReferentialError reports that an edge's start or end ident does not
// resolve to a vertex in the graph it was diffed or emitted against.
type ReferentialError struct {
	EdgeIdent string
	Endpoint  string // "start" or "end"
	Ident     string // the dangling ident
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("referential error: edge %s: %s ident %q does not resolve to a vertex",
		identOrUnknown(e.EdgeIdent), e.Endpoint, e.Ident)
}

func (e *ReferentialError) Unwrap() error { return ErrReferential }

// EmissionError reports that a Mutation could not be rendered to Cypher.
// Reaching this indicates a bug upstream: every Mutation the diff engine
// produces should already satisfy the invariants the emitter assumes.
type EmissionError struct {
	Ident  string
	Reason string
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("emission error: %s: %s", identOrUnknown(e.Ident), e.Reason)
}

func (e *EmissionError) Unwrap() error { return ErrEmission }

// DriverError wraps a failure surfaced by the persistence layer, attributing
// it to the statement being executed when known.
type DriverError struct {
	Statement string
	Err       error
}

func (e *DriverError) Error() string {
	if e.Statement == "" {
		return fmt.Sprintf("driver error: %s", e.Err)
	}
	return fmt.Sprintf("driver error: %s: %s", e.Statement, e.Err)
}

func (e *DriverError) Unwrap() []error { return []error{ErrDriver, e.Err} }

// NotFoundError reports that no entity matched the given ident or id within
// graph.
type NotFoundError struct {
	Graph string
	Ident string
	Id    int64
}

func (e *NotFoundError) Error() string {
	if e.Ident != "" {
		return fmt.Sprintf("not found: graph %q: ident %q", e.Graph, e.Ident)
	}
	return fmt.Sprintf("not found: graph %q: id %d", e.Graph, e.Id)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func identOrUnknown(ident string) string {
	if ident == "" {
		return "<unknown>"
	}
	return ident
}
