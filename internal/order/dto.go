package order

import "time"

// CreateOrderRequest is the order creation payload.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerID    string `json:"customerId"    example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Items         string `json:"items"         binding:"required"                     example:"2x tea"`
	CustomerName  string `json:"customerName"  binding:"required,max=100"             example:"Alice"`
	CustomerPhone string `json:"customerPhone" binding:"required,max=20"              example:"555-0100"`
	TotalAmount   string `json:"totalAmount"   binding:"required,decimal,max=20"      example:"4.00"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=card cash other" example:"cash"`
	EstimatedTime int    `json:"estimatedTime" binding:"min=0"                        example:"10"`
}

// UpdateOrderRequest partial update; at least one field must be present.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	Status        *string    `json:"status"        binding:"omitempty,max=20" example:"preparing"`
	PaymentStatus *string    `json:"paymentStatus" binding:"omitempty,max=20" example:"paid"`
	CheckInTime   *time.Time `json:"checkInTime"`
}

// ToUpdate maps the wire payload onto the repository update.
func (r UpdateOrderRequest) ToUpdate() Update {
	return Update{Status: r.Status, PaymentStatus: r.PaymentStatus, CheckInTime: r.CheckInTime}
}
