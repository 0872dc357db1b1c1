package ageengine

import (
	"context"
	"testing"

	"github.com/veloper/agraph/enginetest"
	"github.com/veloper/agraph/internal/dbtest"
)

func TestEngine(t *testing.T) {
	pool := dbtest.SetupPostgres(t)

	const graphName = "enginetest"
	engine := NewEngine(pool, graphName)

	ctx := context.Background()
	if err := engine.EnsureGraph(ctx); err != nil {
		t.Fatalf("EnsureGraph: %v", err)
	}
	t.Cleanup(func() {
		if err := engine.DropGraph(context.Background()); err != nil {
			t.Errorf("DropGraph cleanup: %v", err)
		}
	})

	enginetest.Run(t, engine, graphName)
}
