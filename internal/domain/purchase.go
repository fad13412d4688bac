package domain

import "time"

// Purchase records a stock-in expense: goods bought from a supplier. The
// recording user is snapshotted by id and name so the history survives
// account changes.
type Purchase struct {
	ID          string    `json:"id"`
	ItemName    string    `json:"itemName"`
	Supplier    string    `json:"supplier,omitempty"`
	Quantity    int       `json:"quantity"`
	PriceCents  int64     `json:"priceCents"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	CreatedAt   time.Time `json:"createdAt"`
}
