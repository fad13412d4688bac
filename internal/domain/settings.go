package domain

import "time"

// StoreSettings is the singleton store profile shown on receipts plus the
// profit percentage used by the profit report.
type StoreSettings struct {
	StoreName        string    `json:"storeName"`
	Address          string    `json:"address,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Owner            string    `json:"owner,omitempty"`
	LogoURL          string    `json:"logoUrl,omitempty"`
	ProfitPercentage float64   `json:"profitPercentage"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
