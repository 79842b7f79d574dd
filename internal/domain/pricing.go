package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type DeliveryMode string

const (
	DeliveryMeetingPoint DeliveryMode = "meeting_point" // pickup, always free
	DeliveryHome         DeliveryMode = "home_delivery"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// PricingConfig holds the shipping and payment parameters sourced from site
// configuration. All amounts are in the store currency and non-negative.
type PricingConfig struct {
	Currency              currency.Unit
	FreeShippingThreshold decimal.Decimal
	BaseShippingCost      decimal.Decimal
	CashSurcharge         decimal.Decimal
}

// Pricing is the full amount breakdown for one checkout attempt.
// It is always derived fresh from the current cart and configuration,
// never persisted or patched incrementally.
type Pricing struct {
	Subtotal         decimal.Decimal
	ShippingCost     decimal.Decimal
	PaymentSurcharge decimal.Decimal
	Total            decimal.Decimal

	Currency      currency.Unit
	DeliveryMode  DeliveryMode
	PaymentMethod PaymentMethod

	// DefaultConfig reports that the amounts were computed from fallback
	// configuration; the caller should requote once real configuration arrives.
	DefaultConfig bool
}
