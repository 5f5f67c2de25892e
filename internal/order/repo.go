package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/stall-queue/internal/customer"
	"github.com/MikeMC777/stall-queue/internal/store"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrQueueContention = errors.New("could not assign a queue number")
	ErrStatusChanged   = errors.New("order status changed concurrently")
)

type Repository interface {
	Create(ctx context.Context, n NewOrder) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListActive(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, id string, upd Update) (*Order, error)
	CheckIn(ctx context.Context, id string) (*Order, error)
}

// columns tolerates orders tables created before queue_date existed, where
// items, total_amount and several text columns have looser types.
const columns = `id::text, customer_id::text, items::text, customer_name, COALESCE(customer_phone, ''),
	total_amount::text, status, queue_number, COALESCE(estimated_time, 0),
	COALESCE(payment_status, 'pending'), COALESCE(payment_method, ''), check_in_time,
	created_at, updated_at`

type PGRepo struct {
	db          store.DB
	timeout     time.Duration
	maxAttempts int
}

func NewPGRepo(db store.DB, timeout time.Duration, maxAttempts int) *PGRepo {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &PGRepo{db: db, timeout: timeout, maxAttempts: maxAttempts}
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.Items, &o.CustomerName, &o.CustomerPhone, &o.TotalAmount,
		&o.Status, &o.QueueNumber, &o.EstimatedTime, &o.PaymentStatus, &o.PaymentMethod, &o.CheckInTime,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create registers the customer by phone and inserts the order with the
// next queue number of n.QueueDate, both in one transaction. Two creators
// racing for the same number collide on the (queue_date, queue_number)
// constraint; the loser rolls back, recomputes and tries again.
func (r *PGRepo) Create(ctx context.Context, n NewOrder) (*Order, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	for attempt := 1; ; attempt++ {
		o, err := r.create(ctx, n)
		if err == nil {
			return o, nil
		}
		if !store.IsUniqueViolation(err, store.QueueDayConstraint) {
			return nil, err
		}
		if attempt >= r.maxAttempts {
			return nil, fmt.Errorf("%w after %d attempts", ErrQueueContention, attempt)
		}
	}
}

func (r *PGRepo) create(ctx context.Context, n NewOrder) (*Order, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := customer.Ensure(ctx, tx, n.CustomerPhone, n.CustomerName); err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	o, err := scanOrder(tx.QueryRow(ctx, `
		INSERT INTO orders (id, customer_id, items, customer_name, customer_phone, total_amount,
		                    payment_method, estimated_time, queue_date, queue_number)
		SELECT $1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8::integer, $9::date, COALESCE(MAX(queue_number), 0) + 1
		FROM orders WHERE queue_date = $9::date
		RETURNING `+columns,
		n.ID, store.Nullable(n.CustomerID), n.Items, n.CustomerName, n.CustomerPhone, n.TotalAmount,
		n.PaymentMethod, n.EstimatedTime, n.QueueDate))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+columns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	return r.query(ctx, `SELECT `+columns+` FROM orders ORDER BY created_at DESC`)
}

func (r *PGRepo) ListActive(ctx context.Context) ([]Order, error) {
	return r.query(ctx, `
		SELECT `+columns+` FROM orders
		WHERE status = ANY($1)
		ORDER BY queue_date, queue_number`, ActiveStatuses)
}

func (r *PGRepo) query(ctx context.Context, sql string, args ...any) ([]Order, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Update applies only the supplied fields and always refreshes updated_at.
func (r *PGRepo) Update(ctx context.Context, id string, upd Update) (*Order, error) {
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
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.PaymentStatus != nil {
		set("payment_status", *upd.PaymentStatus)
	}
	if upd.CheckInTime != nil {
		set("check_in_time", *upd.CheckInTime)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if upd.IfStatus != nil {
		args = append(args, *upd.IfStatus)
		sql += fmt.Sprintf(" AND status = $%d", len(args))
	}
	sql += " RETURNING " + columns

	o, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if !errors.Is(err, pgx.ErrNoRows) {
		return o, err
	}
	if upd.IfStatus == nil {
		return nil, ErrNotFound
	}
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrStatusChanged
	}
	return nil, ErrNotFound
}

func (r *PGRepo) CheckIn(ctx context.Context, id string) (*Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders SET check_in_time = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}
