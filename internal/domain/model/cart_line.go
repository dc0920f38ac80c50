package model

import "github.com/shopspring/decimal"

// CartLine is one article in an open cart.
// UnitPrice is the product price when the article was first added.
type CartLine struct {
	Article   string          `json:"article"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is quantity * unit price rounded to cents.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)).Round(2)
}
