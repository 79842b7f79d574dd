package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type OrderLine struct {
	ProductID string
	Title     string
	UnitPrice Money
	Quantity  int64
	Size      string
	Color     string
}

// OrderRequest is the payload handed to the order submission collaborator.
// The engine only produces these fields; it does not perform the submission.
type OrderRequest struct {
	Reference     string
	Lines         []OrderLine
	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	Total         decimal.Decimal
	Currency      currency.Unit
	DeliveryMode  DeliveryMode
	PaymentMethod PaymentMethod
}
