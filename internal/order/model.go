package order

import "time"

// Order is the persisted row; JSON keys follow the column names.
type Order struct {
	ID            string     `json:"id"`
	CustomerID    *string    `json:"customer_id"`
	Items         string     `json:"items"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	TotalAmount   string     `json:"total_amount"` // kept as submitted
	Status        string     `json:"status"`
	QueueNumber   int        `json:"queue_number"`
	EstimatedTime int        `json:"estimated_time"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod string     `json:"payment_method"`
	CheckInTime   *time.Time `json:"check_in_time"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewOrder carries what the caller supplies plus the queue day it belongs to.
type NewOrder struct {
	ID            string
	CustomerID    string // empty => NULL
	Items         string
	CustomerName  string
	CustomerPhone string
	TotalAmount   string
	PaymentMethod string
	EstimatedTime int
	QueueDate     string // YYYY-MM-DD
}

// Update holds the optional fields of a partial update. IfStatus, when set,
// makes the write conditional on the row still carrying that status.
type Update struct {
	Status        *string
	PaymentStatus *string
	CheckInTime   *time.Time
	IfStatus      *string
}

func (u Update) Empty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.CheckInTime == nil
}
