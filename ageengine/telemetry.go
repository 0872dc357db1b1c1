package ageengine

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("github.com/veloper/agraph/ageengine")
var meter = otel.Meter("github.com/veloper/agraph/ageengine")

var (
	// patchMutationCounter counts mutations applied via ApplyPatch, labeled by
	// graph name and mutation kind.
	patchMutationCounter metric.Int64Counter
	// poolHealthGauge reports how many connections are currently acquired
	// from the pgx pool.
	poolHealthGauge metric.Int64ObservableGauge
)

func init() {
	var err error
	patchMutationCounter, err = meter.Int64Counter(
		"ageengine_patch_mutations_total",
		metric.WithDescription("number of mutations applied to Apache AGE graphs, by kind"),
	)
	if err != nil {
		panic(fmt.Sprintf("ageengine: failed to init 'ageengine_patch_mutations_total' instrument: %v", err))
	}

	poolHealthGauge, err = meter.Int64ObservableGauge(
		"ageengine_pool_acquired_conns",
		metric.WithDescription("number of connections currently acquired from the pgx pool"),
	)
	if err != nil {
		panic(fmt.Sprintf("ageengine: failed to init 'ageengine_pool_acquired_conns' instrument: %v", err))
	}
}
