// Package checkout assembles the payload handed to the order submission
// collaborator from the current cart and a computed pricing breakdown.
package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikolayk812/cart-engine/internal/domain"
	"github.com/nikolayk812/cart-engine/internal/pricing"
)

var ErrEmptyCart = errors.New("cart is empty")

// BuildOrder produces the order request for the given cart snapshot and
// pricing. The pricing must have been quoted from the same snapshot; a
// diverging subtotal means a stale quote and is rejected.
func BuildOrder(items []domain.LineItem, p domain.Pricing) (domain.OrderRequest, error) {
	if len(items) == 0 {
		return domain.OrderRequest{}, ErrEmptyCart
	}

	if subtotal := pricing.Subtotal(items); !subtotal.Equal(p.Subtotal) {
		return domain.OrderRequest{}, fmt.Errorf("pricing subtotal[%s] does not match cart subtotal[%s]",
			p.Subtotal, subtotal)
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.OrderLine{
			ProductID: item.ProductID,
			Title:     item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	return domain.OrderRequest{
		Reference:     uuid.NewString(),
		Lines:         lines,
		Subtotal:      p.Subtotal,
		ShippingCost:  p.ShippingCost,
		Total:         p.Total,
		Currency:      p.Currency,
		DeliveryMode:  p.DeliveryMode,
		PaymentMethod: p.PaymentMethod,
	}, nil
}
