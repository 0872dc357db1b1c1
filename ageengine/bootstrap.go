package ageengine

import (
	"context"
	"fmt"

	"github.com/veloper/agraph"
)

// EnsureGraph creates e's graph if it does not already exist. It is
// idempotent: calling it against an already-created graph is a no-op.
func (e *Engine) EnsureGraph(ctx context.Context) error {
	exists, err := e.graphExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("acquire connection: %w", err)}
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `LOAD 'age'; SET search_path = ag_catalog, "$user", public;`); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("set search path: %w", err)}
	}
	if _, err := conn.Exec(ctx, `SELECT * FROM ag_catalog.create_graph($1)`, e.graphName); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("create_graph: %w", err)}
	}
	return nil
}

// DropGraph removes e's graph and every vertex/edge label table it owns.
func (e *Engine) DropGraph(ctx context.Context) error {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("acquire connection: %w", err)}
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `LOAD 'age'; SET search_path = ag_catalog, "$user", public;`); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("set search path: %w", err)}
	}
	if _, err := conn.Exec(ctx, `SELECT * FROM ag_catalog.drop_graph($1, true)`, e.graphName); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("drop_graph: %w", err)}
	}
	return nil
}

// TruncateGraph removes every vertex and edge from e's graph without
// dropping the graph itself (and therefore without needing to recreate its
// label tables).
func (e *Engine) TruncateGraph(ctx context.Context) error {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("acquire connection: %w", err)}
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `LOAD 'age'; SET search_path = ag_catalog, "$user", public;`); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("set search path: %w", err)}
	}
	query := fmt.Sprintf(`SELECT * FROM cypher('%s', $$ MATCH (n) DETACH DELETE n $$) AS (v agtype)`, e.graphName)
	if _, err := conn.Exec(ctx, query); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("truncate graph: %w", err)}
	}
	return nil
}

func (e *Engine) graphExists(ctx context.Context) (bool, error) {
	names, err := e.GraphNames(ctx)
	if err != nil {
		return false, err
	}
	for _, name := range names {
		if name == e.graphName {
			return true, nil
		}
	}
	return false, nil
}

// GraphNames lists every AGE graph known to the database e is connected to,
// read from the name column of the ag_catalog.ag_graph table.
func (e *Engine) GraphNames(ctx context.Context) ([]string, error) {
	rows, err := e.pool.Query(ctx, `SELECT name FROM ag_catalog.ag_graph`)
	if err != nil {
		return nil, &agraph.DriverError{Err: fmt.Errorf("list graphs: %w", err)}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &agraph.DriverError{Err: fmt.Errorf("scan graph name: %w", err)}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &agraph.DriverError{Err: err}
	}
	return names, nil
}
