package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	testcontainerspostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresImage exposes the image to use for the Postgres+AGE container.
//
// apache/age ships Postgres with the AGE extension pre-built, which is the
// variant we rely on in production; see <https://hub.docker.com/r/apache/age>.
const PostgresImage = "apache/age:PG16_latest"

const (
	dbtestDatabase = "agraph_test"
	dbtestUsername = "agraph"
	dbtestPassword = "agraph"
)

// SetupPostgres spins up a new Postgres+AGE Docker container and returns a
// pgx connection pool connected to it, with the age extension already
// created. The returned pool is closed during cleanup of the provided
// [*testing.T].
//
// The provided [*testing.T] is used to:
//   - skip the test if the '-short' flag is set,
//   - clean up the container after the test completes, and
//   - mark the test as parallel to avoid blocking other long-running tests.
//
// This is a higher-level wrapper around the functionality provided by
// testcontainers-go and its postgres module. Use this function to avoid
// duplicating the same boilerplate code in common tests that require a
// standard Postgres+AGE database.
func SetupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping container-based test in short mode...")
	}
	t.Parallel()

	ctx := context.Background()

	opts := containerOptions(t,
		testcontainerspostgres.WithDatabase(dbtestDatabase),
		testcontainerspostgres.WithUsername(dbtestUsername),
		testcontainerspostgres.WithPassword(dbtestPassword),
		testcontainerspostgres.BasicWaitStrategies(),
		testcontainerspostgres.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)

	container, err := testcontainerspostgres.Run(ctx, PostgresImage, opts...)
	if err != nil {
		t.Fatal("Failed to run postgres container:", err)
	}
	t.Cleanup(func() {
		t.Logf("Terminating postgres container %q...", container.GetContainerID())
		if err := container.Terminate(ctx); err != nil {
			t.Error("Encountered an error during cleanup; terminate container:", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal("Failed to get postgres connection string:", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatal("Failed to open pgx pool:", err)
	}
	t.Cleanup(pool.Close)

	if err := verifyConnectivityWithRetries(ctx, pool); err != nil {
		t.Fatalf("Failed to establish a connection with the remote postgres server after retries: %v", err)
	}

	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS age`); err != nil {
		t.Fatal("Failed to create age extension:", err)
	}

	t.Cleanup(func() {
		if t.Failed() && *Inspect {
			t.Logf("Container %v is still running for inspection (Ctrl+C to terminate)...", container.GetContainerID())
			t.Logf("Connection string = %s", dsn)
			waitForInspection()
		}
	})

	return pool
}

// verifyConnectivityWithRetries checks for a working connection to Postgres,
// retrying a limited number of times in case the container's process
// returns before Postgres is actually ready to accept connections.
func verifyConnectivityWithRetries(ctx context.Context, pool *pgxpool.Pool) error {
	const retryLimit = 5
	const retryPause = 100 * time.Millisecond

	err := pool.Ping(ctx)
	if err == nil {
		return nil
	}
	for r := 0; r < retryLimit; r++ {
		select {
		case <-time.After(retryPause):
		case <-ctx.Done():
			return fmt.Errorf("retry pause interrupted")
		}
		err = pool.Ping(ctx)
		if err == nil {
			return nil
		}
	}
	return err
}
