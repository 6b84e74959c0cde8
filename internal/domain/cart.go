package domain

import "github.com/shopspring/decimal"

// CartLine is a quantity-tagged snapshot of a Product taken when it was
// first added to a cart. It serializes as the flattened product plus
// "quantity".
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
