// Command dbcheck reports whether the stall database is reachable and
// initialised. It exits non-zero on any failure.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/MikeMC777/stall-queue/internal/config"
	"github.com/MikeMC777/stall-queue/internal/dbcheck"
	"github.com/MikeMC777/stall-queue/internal/httpx"
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
	os.Exit(run(cfg, logger))
}

func run(cfg config.Config, logger *zap.Logger) int {
	defer func() { _ = logger.Sync() }()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		logger.Error("open", zap.Error(err))
		return 1
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*cfg.DBQueryTimeout)
	defer cancel()

	rep, err := dbcheck.Run(ctx, db, cfg.Today(time.Now()))
	rep.Write(os.Stdout)
	if err != nil {
		logger.Error("dbcheck failed", zap.Error(err), zap.Strings("missing", rep.Missing()))
		return 1
	}
	logger.Info("dbcheck ok", zap.String("today", rep.Today), zap.Int64("inventory_today", rep.InventoryToday))
	return 0
}
