package domain

import "time"

// PurchaseStatus is the recorded state of a purchase. No payment gateway is
// involved; checkout records the purchase as completed directly.
type PurchaseStatus string

const (
	PurchaseCompleted PurchaseStatus = "completed"
	PurchasePending   PurchaseStatus = "pending"
)

// PurchaseItem is a line item snapshotting the tour at checkout time, so
// later edits to the tour do not rewrite purchase history.
type PurchaseItem struct {
	TourID string  `json:"tour_id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
}

// Purchase records a checkout of the caller's cart.
type Purchase struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Items     []PurchaseItem `json:"items"`
	Total     float64        `json:"total"`
	Status    PurchaseStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
