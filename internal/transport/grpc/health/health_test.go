package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/light-bringer/procat-analytics/tests/testutil"
)

func servingStatus(t *testing.T, r *Reporter, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := r.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.Status
}

func TestReporter_Check(t *testing.T) {
	store := testutil.NewMemoryStore()
	r := NewReporter(store, time.Second, zap.NewNop())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, r.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, r, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, r, ServiceName))

	store.FailWith(errors.New("connection refused"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, r.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, r, ServiceName))
}

func TestReporter_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, testutil.LeakOptions()...)

	store := testutil.NewMemoryStore()
	r := NewReporter(store, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := r.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, r, ServiceName))
}
