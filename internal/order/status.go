package order

import (
	"errors"
	"fmt"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// ActiveStatuses are the statuses still in the stall's queue.
var ActiveStatuses = []string{StatusPending, StatusPreparing, StatusReady}

var ErrInvalidTransition = errors.New("invalid status transition")

var next = map[string]string{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCompleted,
}

var paymentStatuses = map[string]bool{
	PaymentPending: true,
	PaymentPaid:    true,
	PaymentFailed:  true,
}

// Policy decides which status changes an update may make. The zero value is
// permissive: status and payment_status are free-form strings.
type Policy struct {
	Strict bool
}

// Check validates upd against the order's current state.
func (p Policy) Check(current Order, upd Update) error {
	if !p.Strict {
		return nil
	}
	if upd.Status != nil {
		if err := checkTransition(current.Status, *upd.Status); err != nil {
			return err
		}
	}
	if upd.PaymentStatus != nil && !paymentStatuses[*upd.PaymentStatus] {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidTransition, *upd.PaymentStatus)
	}
	return nil
}

func checkTransition(from, to string) error {
	if from == to {
		return nil
	}
	switch from {
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}
	if to == StatusCancelled || next[from] == to {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
