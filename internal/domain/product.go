package domain

import "time"

// Product is a catalog item sold as a cart base item. Stock is decremented
// only through the sale commit path; all other fields are owned by the
// catalog screens.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"categoryId"`
	Stock       int       `json:"stock"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
