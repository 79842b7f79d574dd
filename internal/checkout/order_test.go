package checkout_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/cart-engine/internal/checkout"
	"github.com/nikolayk812/cart-engine/internal/domain"
	"github.com/nikolayk812/cart-engine/internal/pricing"
)

func cop(amount int64) domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: currency.MustParseISO("COP"),
	}
}

func TestBuildOrder(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: "A", Name: "hoodie", UnitPrice: cop(10_000), Size: "M", Quantity: 1},
		{ProductID: "B", Name: "tee", UnitPrice: cop(7_500), Size: "L", Color: "black", Quantity: 2},
	}
	cfg := &domain.PricingConfig{
		Currency:              currency.MustParseISO("COP"),
		FreeShippingThreshold: decimal.NewFromInt(30_000),
		BaseShippingCost:      decimal.NewFromInt(2_500),
		CashSurcharge:         decimal.NewFromInt(500),
	}

	p := pricing.Quote(items, domain.DeliveryHome, domain.PaymentCash, cfg)

	order, err := checkout.BuildOrder(items, p)
	require.NoError(t, err)

	_, err = uuid.Parse(order.Reference)
	require.NoError(t, err)

	require.Len(t, order.Lines, 2)
	assert.Equal(t, "A", order.Lines[0].ProductID)
	assert.Equal(t, "hoodie", order.Lines[0].Title)
	assert.EqualValues(t, 1, order.Lines[0].Quantity)
	assert.Equal(t, "black", order.Lines[1].Color)

	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(25_000)))
	assert.True(t, order.ShippingCost.Equal(decimal.NewFromInt(2_500)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(28_000)))
	assert.Equal(t, domain.PaymentCash, order.PaymentMethod)
	assert.Equal(t, domain.DeliveryHome, order.DeliveryMode)
}

func TestBuildOrder_EmptyCart(t *testing.T) {
	p := pricing.Quote(nil, domain.DeliveryMeetingPoint, domain.PaymentBankTransfer, nil)

	_, err := checkout.BuildOrder(nil, p)
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestBuildOrder_StaleQuote(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: "A", Name: "hoodie", UnitPrice: cop(10_000), Size: "M", Quantity: 1},
	}

	p := pricing.Quote(items, domain.DeliveryHome, domain.PaymentCash, nil)

	// Cart changed after the quote was computed.
	items[0].Quantity = 2

	_, err := checkout.BuildOrder(items, p)
	require.ErrorContains(t, err, "does not match")
}
