package ageengine

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/veloper/agraph"
	"github.com/veloper/agraph/cypher"
)

// ageSearchPath is run at the start of every session that issues Cypher
// queries, per Apache AGE's own setup instructions.
const ageSearchPath = `LOAD 'age'; SET search_path = ag_catalog, "$user", public;`

// Engine applies agraph mutations to, and loads agraph snapshots from, a
// single Apache AGE graph reachable through a pgx connection pool.
type Engine struct {
	pool      *pgxpool.Pool
	graphName string
}

// Connect opens a pgx connection pool against dsn and returns an Engine
// scoped to graphName. The caller owns the pool's lifetime; call Close when
// done.
func Connect(ctx context.Context, dsn, graphName string) (*Engine, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, &agraph.DriverError{Err: fmt.Errorf("open pool: %w", err)}
	}
	return NewEngine(pool, graphName), nil
}

// NewEngine returns an Engine that issues queries through the given pool.
func NewEngine(pool *pgxpool.Pool, graphName string) *Engine {
	return &Engine{pool: pool, graphName: graphName}
}

// Pool returns the underlying connection pool, for health monitoring or
// metrics collection.
func (e *Engine) Pool() *pgxpool.Pool { return e.pool }

// GraphName returns the AGE graph this Engine is scoped to.
func (e *Engine) GraphName() string { return e.graphName }

// Close releases the underlying connection pool.
func (e *Engine) Close() { e.pool.Close() }

// cypherQuery wraps statement as an AGE cypher() call against e's graph,
// returning one row per produced record.
func (e *Engine) cypherQuery(ctx context.Context, tx pgx.Tx, statement string) (pgx.Rows, error) {
	query := fmt.Sprintf(`SELECT * FROM cypher('%s', $$ %s $$) AS (v agtype)`, e.graphName, statement)
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, &agraph.DriverError{Statement: statement, Err: err}
	}
	return rows, nil
}

// ApplyPatch renders every mutation in patch to Cypher and executes the
// resulting statements, in order, inside a single transaction. If any
// statement fails, the transaction is rolled back and none of the patch's
// mutations take effect.
func (e *Engine) ApplyPatch(ctx context.Context, patch *agraph.Patch) (err error) {
	ctx, span := tracer.Start(ctx, "ApplyPatch", trace.WithAttributes(
		attribute.String("age.graph", e.graphName),
		attribute.Int("age.mutation_count", len(patch.Mutations)),
	))
	defer span.End()

	// Validate every mutation renders before opening a transaction, so a
	// malformed patch never leaves a transaction open needlessly.
	if _, err := cypher.EmitAll(patch.Mutations); err != nil {
		return err
	}

	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("begin transaction: %w", err)}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, ageSearchPath); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("set search path: %w", err)}
	}

	for _, mutation := range patch.Mutations {
		stmt, err2 := cypher.Emit(mutation)
		if err2 != nil {
			err = err2
			return err
		}
		rows, qerr := e.cypherQuery(ctx, tx, stmt.String())
		if qerr != nil {
			err = qerr
			return err
		}
		rows.Close()
		patchMutationCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("age.graph", e.graphName),
			attribute.String("age.mutation_kind", mutation.Kind.String()),
		))
	}

	if err = tx.Commit(ctx); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("commit transaction: %w", err)}
	}
	return nil
}

// LoadGraph rehydrates a full agraph.Graph snapshot from the database:
// every vertex, then every edge. The two reads share one transaction and so
// run one at a time; each result set is then batch-decoded.
func (e *Engine) LoadGraph(ctx context.Context) (*agraph.Graph, error) {
	ctx, span := tracer.Start(ctx, "LoadGraph", trace.WithAttributes(
		attribute.String("age.graph", e.graphName),
	))
	defer span.End()

	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return nil, &agraph.DriverError{Err: fmt.Errorf("begin transaction: %w", err)}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, ageSearchPath); err != nil {
		return nil, &agraph.DriverError{Err: fmt.Errorf("set search path: %w", err)}
	}

	var vertexRows, edgeRows []string
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(1)
	group.Go(func() error {
		rows, err := e.cypherQuery(gctx, tx, "MATCH (n) RETURN n")
		if err != nil {
			return err
		}
		defer rows.Close()
		vertexRows, err = scanAgtypeColumn(rows)
		return err
	})
	group.Go(func() error {
		rows, err := e.cypherQuery(gctx, tx, "MATCH ()-[r]->() RETURN r")
		if err != nil {
			return err
		}
		defer rows.Close()
		edgeRows, err = scanAgtypeColumn(rows)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	vertexRecords, err := decodeVertexRecords(vertexRows)
	if err != nil {
		return nil, err
	}
	edgeRecords, err := decodeEdgeRecords(edgeRows)
	if err != nil {
		return nil, err
	}
	return agraph.FromRecords(e.graphName, vertexRecords, edgeRecords)
}

func scanAgtypeColumn(rows pgx.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, &agraph.DriverError{Err: fmt.Errorf("scan agtype row: %w", err)}
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, &agraph.DriverError{Err: err}
	}
	return out, nil
}
