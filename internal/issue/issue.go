// Package issue records customer complaints about an order and tracks them
// to resolution.
package issue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/stall-queue/internal/store"
)

const (
	StatusOpen          = "open"
	StatusInvestigating = "investigating"
	StatusResolved      = "resolved"
	StatusClosed        = "closed"

	PriorityMedium = "medium"
)

var ErrNotFound = errors.New("customer issue not found")

type Issue struct {
	ID          string    `json:"id"`
	CustomerID  *string   `json:"customer_id"`
	OrderID     *string   `json:"order_id"`
	IssueType   string    `json:"issue_type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateIssueRequest payload; priority defaults to medium.
// swagger:model CreateIssueRequest
type CreateIssueRequest struct {
	CustomerID  string `json:"customerId"  binding:"omitempty,uuid" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	OrderID     string `json:"orderId"     binding:"omitempty,uuid" example:"0b6c3c8e-7f0e-4a8e-9d7a-3c1f2e9b5a10"`
	IssueType   string `json:"issueType"   binding:"required,oneof=wrong_order quality_issue missing_items late_delivery other" example:"missing_items"`
	Description string `json:"description" binding:"required,max=1000" example:"No chutney in the bag"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high urgent" example:"high"`
}

// swagger:model UpdateIssueStatusRequest
type UpdateIssueStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open investigating resolved closed" example:"resolved"`
}

type Repository interface {
	List(ctx context.Context) ([]Issue, error)
	Create(ctx context.Context, req CreateIssueRequest) (*Issue, error)
	UpdateStatus(ctx context.Context, id, status string) (*Issue, error)
}

const columns = `id::text, customer_id::text, order_id::text, issue_type, description, status, priority,
	created_at, updated_at`

type PGRepo struct {
	db      store.DB
	timeout time.Duration
}

func NewPGRepo(db store.DB, timeout time.Duration) *PGRepo { return &PGRepo{db: db, timeout: timeout} }

func scanIssue(row pgx.Row) (*Issue, error) {
	var i Issue
	if err := row.Scan(&i.ID, &i.CustomerID, &i.OrderID, &i.IssueType, &i.Description, &i.Status, &i.Priority,
		&i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// List returns every issue, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Issue, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+columns+` FROM customer_issues ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Issue{}
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *i)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, req CreateIssueRequest) (*Issue, error) {
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return scanIssue(r.db.QueryRow(ctx, `
		INSERT INTO customer_issues (customer_id, order_id, issue_type, description, status, priority)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
		RETURNING `+columns,
		store.Nullable(req.CustomerID), store.Nullable(req.OrderID), req.IssueType, req.Description,
		StatusOpen, priority))
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string) (*Issue, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	ctx, cancel := store.WithTimeout(ctx, r.timeout)
	defer cancel()

	i, err := scanIssue(r.db.QueryRow(ctx, `
		UPDATE customer_issues SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+columns, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return i, err
}
