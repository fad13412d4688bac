package domain

import "time"

// PaymentMethod is the fixed set of ways a sale can be paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentQRIS         PaymentMethod = "qris"
	PaymentEWallet      PaymentMethod = "e_wallet"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCourier      PaymentMethod = "courier"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentEWallet, PaymentBankTransfer, PaymentCourier:
		return true
	default:
		return false
	}
}

// SaleItemKind distinguishes a product base item from a topping sold
// standalone.
type SaleItemKind string

const (
	SaleItemProduct SaleItemKind = "product"
	SaleItemTopping SaleItemKind = "topping"
)

// SaleAddOn is the price/name snapshot of a topping attached to a sale item.
type SaleAddOn struct {
	ToppingID   string `json:"toppingId"`
	ToppingName string `json:"toppingName"`
	PriceCents  int64  `json:"priceCents"`
}

// SaleItem is one line of a committed sale. Names and prices are snapshots
// taken at commit time; later catalog edits never change them.
type SaleItem struct {
	ID             string       `json:"id"`
	Kind           SaleItemKind `json:"kind"`
	ItemID         string       `json:"itemId"`
	ItemName       string       `json:"itemName"`
	Quantity       int          `json:"quantity"`
	UnitPriceCents int64        `json:"unitPriceCents"`
	AddOns         []SaleAddOn  `json:"addOns,omitempty"`
	Note           string       `json:"note,omitempty"`
}

// LineTotalCents is the item's contribution to the sale total.
func (i SaleItem) LineTotalCents() int64 {
	total := i.UnitPriceCents
	for _, a := range i.AddOns {
		total += a.PriceCents
	}
	return total * int64(i.Quantity)
}

// Sale is the immutable record of one completed checkout. It is created only
// by the sale commit engine and never updated.
type Sale struct {
	ID              string        `json:"id"`
	CashierID       string        `json:"cashierId"`
	CashierName     string        `json:"cashierName"`
	Items           []SaleItem    `json:"items"`
	TotalCents      int64         `json:"totalCents"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	CashAmountCents *int64        `json:"cashAmountCents,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// ChangeDueCents is derived, never stored: cash tendered minus total for
// cash sales, zero otherwise.
func (s Sale) ChangeDueCents() int64 {
	if s.PaymentMethod != PaymentCash || s.CashAmountCents == nil {
		return 0
	}
	if d := *s.CashAmountCents - s.TotalCents; d > 0 {
		return d
	}
	return 0
}
