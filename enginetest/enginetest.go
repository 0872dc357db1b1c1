/*
Package enginetest provides a suite of tests designed to assess persistence
engines for property graphs (e.g. an in-memory fake, ageengine.Engine against
a real Postgres+AGE container).

The tests operate on the specific engine via the Engine interface to check
functional correctness and compliance with the round-trip and ordering
guarantees the core promises: that applying a computed Patch against an
engine, then loading the graph back out, reproduces the target snapshot.

Call enginetest.Run in its own test to invoke the suite:

	func TestEngine(t *testing.T) {
		pool := dbtest.SetupPostgres(t)
		engine := ageengine.NewEngine(pool, "enginetest")
		...
		enginetest.Run(t, engine, "enginetest")
	}

Each case builds a before/after Graph pair, first patches the tested engine
from whatever it holds to the before-state, then computes the Patch between
before and after, applies it, loads the graph back, and checks the result
against the expected after-state. Cases run in sequence against the same
engine.
*/
package enginetest

import (
	"context"
	"testing"

	"github.com/veloper/agraph"
)

// Engine is the persistence boundary this suite exercises. ageengine.Engine
// satisfies it; so does any in-memory fake used for fast, container-free
// testing of the diff/emit pipeline alone.
type Engine interface {
	ApplyPatch(ctx context.Context, patch *agraph.Patch) error
	LoadGraph(ctx context.Context) (*agraph.Graph, error)
}

// testCase is one step of the sequential suite: the graph state going in,
// the graph state expected after diffing+applying+reloading, and the checks
// to run against the computed Patch before it is ever applied.
type testCase struct {
	name    string
	before  func() *agraph.Graph
	after   func() *agraph.Graph
	checks  []check
}

// Run executes the suite's test cases in order against engine, using
// graphName for every case's graphs. Before each case the engine's current
// graph is loaded and patched to that case's "before" state; the case's own
// Patch is then applied and the reloaded graph compared with its "after"
// state.
func Run(t *testing.T, engine Engine, graphName string) {
	t.Helper()
	ctx := context.Background()

	for _, c := range cases(graphName) {
		t.Run(c.name, func(t *testing.T) {
			before := c.before()
			after := c.after()

			current, err := engine.LoadGraph(ctx)
			if err != nil {
				t.Fatalf("LoadGraph(%v) before case failed: %v", c.name, err)
			}
			reset, err := agraph.Diff(current, before)
			if err != nil {
				t.Fatalf("Diff(%v) to before-state failed: %v", c.name, err)
			}
			if err := engine.ApplyPatch(ctx, reset); err != nil {
				t.Fatalf("ApplyPatch(%v) to before-state failed: %v", c.name, err)
			}

			patch, err := agraph.Diff(before, after)
			if err != nil {
				t.Fatalf("Diff(%v) failed: %v", c.name, err)
			}
			for _, chk := range c.checks {
				if problem := chk(patch); problem != "" {
					t.Errorf("%s: %s", c.name, problem)
				}
			}

			if err := engine.ApplyPatch(ctx, patch); err != nil {
				t.Fatalf("ApplyPatch(%v) failed: %v", c.name, err)
			}

			loaded, err := engine.LoadGraph(ctx)
			if err != nil {
				t.Fatalf("LoadGraph(%v) failed: %v", c.name, err)
			}

			if diff := graphDiff(after, loaded); diff != "" {
				t.Errorf("LoadGraph(%v) mismatch (-want +got):\n%s", c.name, diff)
			}
		})
	}
}
