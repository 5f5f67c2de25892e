// @title Stall Queue API
// @version 1.0
// @description Order queue, daily inventory and payment records for a food stall.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/stall-queue/internal/config"
	"github.com/MikeMC777/stall-queue/internal/customer"
	"github.com/MikeMC777/stall-queue/internal/health"
	"github.com/MikeMC777/stall-queue/internal/httpx"
	"github.com/MikeMC777/stall-queue/internal/inventory"
	"github.com/MikeMC777/stall-queue/internal/issue"
	"github.com/MikeMC777/stall-queue/internal/order"
	"github.com/MikeMC777/stall-queue/internal/payment"
	"github.com/MikeMC777/stall-queue/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := httpx.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)
	if err := httpx.RegisterValidators(); err != nil {
		logger.Fatal("register validators", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := store.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	invRepo := inventory.NewPGRepo(pool, cfg.DBQueryTimeout)
	if err := bootstrap(ctx, cfg, pool, invRepo, logger); err != nil {
		logger.Fatal("bootstrap", zap.Error(err))
	}

	checker := health.NewChecker(pool, cfg.DBQueryTimeout)
	if cfg.GRPCHealthAddr != "" {
		go func() {
			if err := health.Serve(ctx, cfg.GRPCHealthAddr, checker, cfg.HealthPollInterval, logger); err != nil {
				logger.Error("grpc health", zap.Error(err))
			}
		}()
	}

	orders := order.NewPGRepo(pool, cfg.DBQueryTimeout, cfg.QueueMaxAttempts)
	r := newRouter(services{
		health:    checker,
		orders:    orders,
		inventory: invRepo,
		payments:  payment.NewPGRepo(pool, cfg.DBQueryTimeout),
		customers: customer.NewPGRepo(pool, cfg.DBQueryTimeout),
		issues:    issue.NewPGRepo(pool, cfg.DBQueryTimeout),
		analytics: orders,
		policy:    order.Policy{Strict: cfg.StrictTransitions},
		today:     func() string { return cfg.Today(time.Now()) },
	}, logger)

	logger.Info("order-service listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.Bool("strict_transitions", cfg.StrictTransitions),
		zap.String("tz", cfg.Location.String()))
	if err := httpx.NewServer(cfg.HTTPAddr, r).Run(ctx); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
	logger.Info("order-service stopped")
}

// bootstrap creates the schema and seeds today's inventory.
func bootstrap(ctx context.Context, cfg config.Config, db store.DB, inv inventory.Repository, log *zap.Logger) error {
	if err := store.EnsureSchema(ctx, db); err != nil {
		return err
	}
	today := cfg.Today(time.Now())
	n, err := inv.Seed(ctx, today, inventory.Catalog, inventory.DefaultQuantity)
	if err != nil {
		return err
	}
	log.Info("inventory seeded", zap.String("date", today), zap.Int("inserted", n))
	return nil
}
