package payment

import (
	"context"
	"time"

	"github.com/MikeMC777/stall-queue/internal/store"
)

const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

type Payment struct {
	ID            string    `json:"id"`
	OrderID       *string   `json:"order_id"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePaymentRequest payload; id is the payment processor's reference.
// swagger:model CreatePaymentRequest
type CreatePaymentRequest struct {
	ID            string `json:"id"            binding:"required,max=100"                   example:"sq_pay_7Hk2"`
	OrderID       string `json:"orderId"       example:"0b6c3c8e-7f0e-4a8e-9d7a-3c1f2e9b5a10"`
	Amount        string `json:"amount"        binding:"required,decimal,max=20"            example:"4.00"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=card cash other"     example:"card"`
	Status        string `json:"status"        binding:"omitempty,oneof=pending succeeded failed" example:"pending"`
}

type Repository interface {
	Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error)
}

type PGRepo struct {
	db      store.DB
	timeout time.Duration
}

func NewPGRepo(db store.DB, timeout time.Duration) *PGRepo { return &PGRepo{db: db, timeout: timeout} }

func (r *PGRepo) Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	var p Payment
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (id, order_id, amount, payment_method, status)
		VALUES ($1, $2::uuid, $3, $4, $5)
		RETURNING id, order_id::text, amount, payment_method, status, created_at, updated_at
	`, req.ID, store.Nullable(req.OrderID), req.Amount, req.PaymentMethod, status).
		Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentMethod, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
