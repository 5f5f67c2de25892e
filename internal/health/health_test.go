package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakePinger struct{ down atomic.Bool }

func (f *fakePinger) Ping(context.Context) error {
	if f.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

// status is UNKNOWN until Watch has registered the service.
func status(hs *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestChecker(t *testing.T) {
	p := &fakePinger{}
	c := NewChecker(p, time.Second)
	assert.NoError(t, c.Check(context.Background()))

	p.down.Store(true)
	assert.Error(t, c.Check(context.Background()))
}

func TestWatch_FollowsStore(t *testing.T) {
	p := &fakePinger{}
	hs := health.NewServer()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, hs, NewChecker(p, time.Second), 10*time.Millisecond, zap.NewNop())

	require.Eventually(t, func() bool {
		return status(hs) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	p.down.Store(true)
	require.Eventually(t, func() bool {
		return status(hs) == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)
}
