package inventory

import "time"

// Record is one menu item's stock for one day.
type Record struct {
	ID                string    `json:"id"`
	MenuItemID        string    `json:"menu_item_id"`
	Date              string    `json:"date"` // YYYY-MM-DD
	AvailableQuantity int       `json:"available_quantity"`
	SoldQuantity      int       `json:"sold_quantity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Update holds the optional quantities of a partial update.
type Update struct {
	AvailableQuantity *int
	SoldQuantity      *int
}

func (u Update) Empty() bool { return u.AvailableQuantity == nil && u.SoldQuantity == nil }

// UpdateInventoryRequest payload of partial update.
// swagger:model UpdateInventoryRequest
type UpdateInventoryRequest struct {
	AvailableQuantity *int `json:"availableQuantity" binding:"omitempty,min=0" example:"80"`
	SoldQuantity      *int `json:"soldQuantity"      binding:"omitempty,min=0" example:"20"`
}

func (r UpdateInventoryRequest) ToUpdate() Update {
	return Update{AvailableQuantity: r.AvailableQuantity, SoldQuantity: r.SoldQuantity}
}

// Catalog is the fixed set of items seeded every day.
var Catalog = []string{"fuchka", "jhalmuri", "chotpoti", "fruit-chaat", "mango-lassi", "tea"}

// DefaultQuantity is the available_quantity each seeded row starts with.
const DefaultQuantity = 100
