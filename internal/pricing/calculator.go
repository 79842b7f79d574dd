// Package pricing turns a cart snapshot plus a delivery and payment selection
// into the amounts shown to the customer and submitted with the order.
package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/cart-engine/internal/domain"
)

// DefaultConfig is the fallback used while real site configuration has not
// arrived yet: provisional totals still carry a shipping cost so a checkout
// screen never understates the amount, and no surcharge is assumed.
func DefaultConfig() domain.PricingConfig {
	return domain.PricingConfig{
		Currency:              currency.MustParseISO("COP"),
		FreeShippingThreshold: decimal.NewFromInt(50_000),
		BaseShippingCost:      decimal.NewFromInt(5_000),
		CashSurcharge:         decimal.Zero,
	}
}

// Subtotal sums unit price times quantity over the line items.
// The cart store's own Totals computes the same sum; the two must agree.
func Subtotal(items []domain.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal().Amount)
	}

	return sum
}

// Quote derives the full pricing breakdown. It is a pure function of its
// inputs and never mutates the cart; callers requote whenever the cart,
// selection, or configuration changes.
//
// A nil cfg means configuration is not available yet: the quote is computed
// from DefaultConfig and flagged so the caller knows to requote later.
func Quote(items []domain.LineItem, mode domain.DeliveryMode, method domain.PaymentMethod, cfg *domain.PricingConfig) domain.Pricing {
	usedDefault := cfg == nil

	var c domain.PricingConfig
	if usedDefault {
		c = DefaultConfig()
	} else {
		c = *cfg
	}

	subtotal := Subtotal(items)

	// Meeting point pickup is always free. Home delivery is free from the
	// threshold up, boundary inclusive: subtotal == threshold qualifies.
	shipping := decimal.Zero
	if mode == domain.DeliveryHome && subtotal.LessThan(c.FreeShippingThreshold) {
		shipping = c.BaseShippingCost
	}

	// Independent of delivery mode and subtotal, so it applies even when
	// shipping is free.
	surcharge := decimal.Zero
	if method == domain.PaymentCash {
		surcharge = c.CashSurcharge
	}

	return domain.Pricing{
		Subtotal:         subtotal,
		ShippingCost:     shipping,
		PaymentSurcharge: surcharge,
		Total:            subtotal.Add(shipping).Add(surcharge),
		Currency:         c.Currency,
		DeliveryMode:     mode,
		PaymentMethod:    method,
		DefaultConfig:    usedDefault,
	}
}
