// Package health reports whether the backing store answers, over HTTP
// (via Checker) and over the standard gRPC health protocol.
package health

import (
	"context"
	"errors"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is registered alongside the empty (whole server) name.
const ServiceName = "stallqueue.OrderService"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Checker struct {
	db      Pinger
	timeout time.Duration
}

func NewChecker(db Pinger, timeout time.Duration) *Checker {
	return &Checker{db: db, timeout: timeout}
}

// Check runs the trivial store round-trip.
func (c *Checker) Check(ctx context.Context) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.db.Ping(ctx)
}

// Watch keeps hs in step with the store until ctx is done.
func Watch(ctx context.Context, hs *health.Server, c *Checker, interval time.Duration, log *zap.Logger) {
	last := healthpb.HealthCheckResponse_UNKNOWN
	update := func() {
		st := healthpb.HealthCheckResponse_SERVING
		if err := c.Check(ctx); err != nil {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			if last != st {
				log.Warn("store unreachable", zap.Error(err))
			}
		}
		last = st
		hs.SetServingStatus("", st)
		hs.SetServingStatus(ServiceName, st)
	}

	update()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			hs.Shutdown()
			return
		case <-t.C:
			update()
		}
	}
}

// Serve exposes grpc.health.v1.Health on addr until ctx is done.
func Serve(ctx context.Context, addr string, c *Checker, interval time.Duration, log *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	go Watch(ctx, hs, c, interval, log)
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	log.Info("grpc health listening", zap.String("addr", addr))
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
