package ageengine

import (
	"context"
	"time"

	"github.com/danielorbach/go-component"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultHealthInterval is how often MonitorPoolHealth polls the connection
// pool when no interval is given.
const DefaultHealthInterval = 15 * time.Second

// MonitorPoolHealth returns a component.Proc that periodically logs e's pool
// statistics (acquired/idle/total connections). Run it alongside the rest of
// a process's long-lived goroutines; it exits when its component.L is told
// to stop. An interval of 0 uses DefaultHealthInterval.
func (e *Engine) MonitorPoolHealth(interval time.Duration) component.Proc {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	return func(l *component.L) {
		logger := component.Logger(l.Context())
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for l.Continue() {
			select {
			case <-ticker.C:
				stat := e.pool.Stat()
				logger.Info("age connection pool health",
					"age.graph", e.graphName,
					"pool.acquired_conns", stat.AcquiredConns(),
					"pool.idle_conns", stat.IdleConns(),
					"pool.total_conns", stat.TotalConns(),
					"pool.new_conns_count", stat.NewConnsCount(),
				)
			case <-l.GraceContext().Done():
				return
			}
		}
	}
}

// RegisterPoolHealthGauge wires e's pool statistics into the
// ageengine_pool_acquired_conns observable gauge registered in
// telemetry.go. Call it once per Engine during startup.
func (e *Engine) RegisterPoolHealthGauge() error {
	_, err := meter.RegisterCallback(
		func(_ context.Context, obs metric.Observer) error {
			obs.ObserveInt64(poolHealthGauge, int64(e.pool.Stat().AcquiredConns()),
				metric.WithAttributes(attribute.String("age.graph", e.graphName)))
			return nil
		},
		poolHealthGauge,
	)
	return err
}
