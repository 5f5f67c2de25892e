// Package inventory provides the per-day menu stock repository.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/stall-queue/internal/store"
)

var (
	ErrNotFound = errors.New("inventory item not found")
	ErrOversold = errors.New("sold quantity exceeds available quantity")
)

type Repository interface {
	ForDate(ctx context.Context, date string) ([]Record, error)
	Seed(ctx context.Context, date string, items []string, quantity int) (int, error)
	Update(ctx context.Context, id string, upd Update) (*Record, error)
}

const columns = `id::text, menu_item_id, date::text, available_quantity, sold_quantity, created_at, updated_at`

type PGRepo struct {
	db      store.DB
	timeout time.Duration
}

func NewPGRepo(db store.DB, timeout time.Duration) *PGRepo { return &PGRepo{db: db, timeout: timeout} }

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	if err := row.Scan(&rec.ID, &rec.MenuItemID, &rec.Date, &rec.AvailableQuantity, &rec.SoldQuantity,
		&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PGRepo) ForDate(ctx context.Context, date string) ([]Record, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+columns+`
		FROM menu_inventory
		WHERE date = $1::date
		ORDER BY menu_item_id
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Seed inserts a row per item for date unless one already exists and
// reports how many rows were new.
func (r *PGRepo) Seed(ctx context.Context, date string, items []string, quantity int) (int, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted := 0
	for _, item := range items {
		tag, err := tx.Exec(ctx, `
			INSERT INTO menu_inventory (menu_item_id, date, available_quantity, sold_quantity)
			VALUES ($1, $2::date, $3, 0)
			ON CONFLICT (menu_item_id, date) DO NOTHING
		`, item, date, quantity)
		if err != nil {
			return 0, fmt.Errorf("seed %s: %w", item, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, tx.Commit(ctx)
}

// Update applies the supplied quantities; the write is rolled back when it
// would leave sold_quantity above available_quantity.
func (r *PGRepo) Update(ctx context.Context, id string, upd Update) (*Record, error) {
	if upd.Empty() {
		return nil, errors.New("no fields to update")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	var (
		sets []string
		args []any
	)
	if upd.AvailableQuantity != nil {
		args = append(args, *upd.AvailableQuantity)
		sets = append(sets, fmt.Sprintf("available_quantity = $%d", len(args)))
	}
	if upd.SoldQuantity != nil {
		args = append(args, *upd.SoldQuantity)
		sets = append(sets, fmt.Sprintf("sold_quantity = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rec, err := scanRecord(tx.QueryRow(ctx, fmt.Sprintf(
		"UPDATE menu_inventory SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), columns), args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if rec.SoldQuantity > rec.AvailableQuantity {
		return nil, fmt.Errorf("%w: sold %d, available %d", ErrOversold, rec.SoldQuantity, rec.AvailableQuantity)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rec, nil
}
