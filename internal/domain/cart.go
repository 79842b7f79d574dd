package domain

import (
	"github.com/shopspring/decimal"
)

// ItemKey identifies a purchasable variant. Two line items with the same key
// represent the same variant and must never coexist in a cart.
// Compared by value, so delimiter characters inside Size or Color cannot
// make distinct variants collide.
type ItemKey struct {
	ProductID string
	Size      string
	Color     string // empty when the variant has no colour
}

type LineItem struct {
	ProductID string
	Name      string
	UnitPrice Money // discount-adjusted, in the store currency
	Image     string
	Size      string
	Color     string
	Quantity  int64 // always >= 1 while the item exists
}

func (li LineItem) Key() ItemKey {
	return ItemKey{ProductID: li.ProductID, Size: li.Size, Color: li.Color}
}

func (li LineItem) LineTotal() Money {
	return li.UnitPrice.MulInt(li.Quantity)
}

type Cart struct {
	OwnerID string
	Items   []LineItem
}

// Totals is a pure aggregate over the current line items.
type Totals struct {
	Lines    int             // distinct line items
	Units    int64           // sum of quantities
	Subtotal decimal.Decimal // sum of unit price * quantity
}
