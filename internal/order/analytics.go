package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/stall-queue/internal/store"
)

// DashboardDays is how many queue days, ending today, DailySales covers.
const DashboardDays = 7

// Dashboard is the owner's summary of the queue. Sales and wait time count
// completed orders only.
type Dashboard struct {
	TotalSales   string         `json:"total_sales"`
	DailySales   []DaySales     `json:"daily_sales"`
	ActiveOrders int            `json:"active_orders"`
	AvgWaitTime  float64        `json:"avg_wait_time"` // minutes, from estimated_time
	StatusCounts map[string]int `json:"status_counts"`
}

type DaySales struct {
	Date   string `json:"date"`
	Sales  string `json:"sales"`
	Orders int    `json:"orders"`
}

type Analytics interface {
	Dashboard(ctx context.Context, today string) (*Dashboard, error)
}

// Dashboard aggregates in the database, reading one snapshot so the totals
// agree with each other.
func (r *PGRepo) Dashboard(ctx context.Context, today string) (*Dashboard, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	d := &Dashboard{StatusCounts: map[string]int{}}
	for _, st := range []string{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled} {
		d.StatusCounts[st] = 0
	}

	var total string
	if err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount::numeric) FILTER (WHERE status = $1), 0)::text,
		       COUNT(*) FILTER (WHERE status = ANY($2)),
		       COALESCE(AVG(estimated_time) FILTER (WHERE status = $1), 0)::float8
		FROM orders`, StatusCompleted, ActiveStatuses).Scan(&total, &d.ActiveOrders, &d.AvgWaitTime); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if d.TotalSales, err = money(total); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	for rows.Next() {
		var (
			st string
			n  int
		)
		if err := rows.Scan(&st, &n); err != nil {
			rows.Close()
			return nil, err
		}
		d.StatusCounts[st] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.Query(ctx, `
		SELECT (($1::date - $3::integer) + g.n)::text,
		       COALESCE(SUM(o.total_amount::numeric), 0)::text,
		       COUNT(o.id)
		FROM generate_series(1, $3::integer) AS g(n)
		LEFT JOIN orders o ON o.queue_date = ($1::date - $3::integer) + g.n AND o.status = $2
		GROUP BY g.n
		ORDER BY g.n`, today, StatusCompleted, DashboardDays)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	d.DailySales = make([]DaySales, 0, DashboardDays)
	for rows.Next() {
		var ds DaySales
		if err := rows.Scan(&ds.Date, &ds.Sales, &ds.Orders); err != nil {
			return nil, err
		}
		if ds.Sales, err = money(ds.Sales); err != nil {
			return nil, err
		}
		d.DailySales = append(d.DailySales, ds)
	}
	return d, rows.Err()
}

func money(s string) (string, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v.StringFixed(2), nil
}
