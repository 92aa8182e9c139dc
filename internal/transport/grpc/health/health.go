// Package health serves the standard gRPC health protocol, driven by periodic
// store pings.
package health

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
)

// ServiceName is the health service name reported for the catalog.
const ServiceName = "procat.catalog"

// Reporter keeps the health server in step with the store.
type Reporter struct {
	server   *grpchealth.Server
	checker  contracts.HealthChecker
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
}

// NewReporter creates a reporter that pings checker every interval.
func NewReporter(checker contracts.HealthChecker, interval time.Duration, logger *zap.Logger) *Reporter {
	return &Reporter{
		server:   grpchealth.NewServer(),
		checker:  checker,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger,
	}
}

// Register installs the health service on s.
func (r *Reporter) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, r.server)
}

// Server exposes the underlying health server.
func (r *Reporter) Server() healthpb.HealthServer {
	return r.server
}

// Check pings the store once and publishes the result for both the overall
// server ("") and ServiceName.
func (r *Reporter) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := r.checker.Ping(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		r.logger.Warn("store ping failed", zap.Error(err))
	}

	r.server.SetServingStatus("", status)
	r.server.SetServingStatus(ServiceName, status)
	return status
}

// Run checks immediately and then on every tick until ctx is done, after
// which every service is reported NOT_SERVING.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			r.server.Shutdown()
			return
		case <-ticker.C:
			r.Check(ctx)
		}
	}
}
