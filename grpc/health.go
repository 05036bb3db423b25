package grpc

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/starkstream/node/db"
	"github.com/starkstream/node/grpc/gen"
	"github.com/starkstream/node/utils"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const defaultHealthInterval = 5 * time.Second

// healthReporter probes storage on an interval and publishes the result
// through the standard grpc health service. The node serves once a head
// cursor has been stored, meaning ingestion produced at least one block.
//
// The reporter runs on its own context so it keeps answering health checks
// while the listener drains during shutdown.
type healthReporter struct {
	health   *health.Server
	db       db.KeyValueReader
	interval time.Duration
	log      utils.SimpleLogger
}

func (r *healthReporter) run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer r.health.Shutdown()

	for {
		if err := r.report(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *healthReporter) report() error {
	has, err := r.db.Has(db.HeadCursor.Key())
	if err != nil {
		return errors.Wrap(err, "probe storage")
	}

	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if has {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	r.health.SetServingStatus("", status)
	r.health.SetServingStatus(gen.Node_ServiceDesc.ServiceName, status)
	return nil
}
