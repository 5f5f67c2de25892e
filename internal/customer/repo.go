package customer

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/stall-queue/internal/store"
)

var ErrNotFound = errors.New("customer not found")

type Customer struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
}

const columns = `id::text, phone, full_name, created_at, updated_at`

type PGRepo struct {
	db      store.DB
	timeout time.Duration
}

func NewPGRepo(db store.DB, timeout time.Duration) *PGRepo { return &PGRepo{db: db, timeout: timeout} }

// Querier is satisfied by store.DB and by pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	if err := row.Scan(&c.ID, &c.Phone, &c.FullName, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Ensure returns the customer registered under phone, creating it first if
// needed. An existing customer's name is left unchanged. It runs on q so the
// caller can make it part of a larger transaction.
func Ensure(ctx context.Context, q Querier, phone, fullName string) (*Customer, error) {
	return scanCustomer(q.QueryRow(ctx, `
		INSERT INTO customers (phone, full_name)
		VALUES ($1, $2)
		ON CONFLICT (phone) DO UPDATE SET phone = EXCLUDED.phone
		RETURNING `+columns, phone, store.Nullable(fullName)))
}

func (r *PGRepo) GetByPhone(ctx context.Context, phone string) (*Customer, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	c, err := scanCustomer(r.db.QueryRow(ctx, `SELECT `+columns+` FROM customers WHERE phone = $1`, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}
