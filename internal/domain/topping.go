package domain

import "time"

// Topping is an add-on item. It can be attached to a product cart line or
// sold standalone as its own base item; either way it is priced and stocked
// independently.
type Topping struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Stock       int       `json:"stock"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
