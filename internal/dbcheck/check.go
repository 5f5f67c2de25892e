// Package dbcheck inspects a running stall database: connectivity, the
// tables the service owns and how many rows each holds.
package dbcheck

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
)

// Tables lists what EnsureSchema creates, in creation order.
var Tables = []string{"customers", "orders", "menu_inventory", "payments", "customer_issues"}

type TableStat struct {
	Name   string
	Exists bool
	Rows   int64
}

type Report struct {
	Tables         []TableStat
	InventoryToday int64
	Today          string
}

// Missing returns the tables that were not found.
func (r Report) Missing() []string {
	var out []string
	for _, t := range r.Tables {
		if !t.Exists {
			out = append(out, t.Name)
		}
	}
	return out
}

func (r Report) Write(w io.Writer) {
	for _, t := range r.Tables {
		if !t.Exists {
			fmt.Fprintf(w, "%-16s missing\n", t.Name)
			continue
		}
		fmt.Fprintf(w, "%-16s %d rows\n", t.Name, t.Rows)
	}
	fmt.Fprintf(w, "inventory for %s: %d items\n", r.Today, r.InventoryToday)
}

// Run pings db, then reports each table and today's inventory size. It
// returns an error when the store is unreachable or any table is missing.
func Run(ctx context.Context, db *sql.DB, today string) (Report, error) {
	rep := Report{Today: today}
	if _, err := db.ExecContext(ctx, "SELECT 1"); err != nil {
		return rep, fmt.Errorf("connectivity: %w", err)
	}

	for _, name := range Tables {
		st := TableStat{Name: name}
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)`,
			name).Scan(&st.Exists); err != nil {
			return rep, fmt.Errorf("lookup %s: %w", name, err)
		}
		if st.Exists {
			// name comes from Tables, never from input
			if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+name).Scan(&st.Rows); err != nil {
				return rep, fmt.Errorf("count %s: %w", name, err)
			}
		}
		rep.Tables = append(rep.Tables, st)
	}
	if missing := rep.Missing(); len(missing) > 0 {
		return rep, fmt.Errorf("missing tables: %s", strings.Join(missing, ", "))
	}

	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM menu_inventory WHERE date = $1::date`, today).Scan(&rep.InventoryToday); err != nil {
		return rep, fmt.Errorf("count inventory: %w", err)
	}
	return rep, nil
}
