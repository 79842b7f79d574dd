// Package catalog projects raw catalog prices into the prices shown to the
// customer and handed to the cart on add.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is the already-parsed catalog record this engine consumes.
type Product struct {
	ID              string
	Title           string
	RawPrice        decimal.Decimal
	DiscountPercent decimal.Decimal // 0..100, 0 when absent
	Thumbnails      []string
	AvailableSizes  []string
}

// Projection is the discount-adjusted price for display and cart use.
// OriginalPrice is set only when a discount actually applies, so the UI can
// test its presence to decide whether to render a struck-through price.
type Projection struct {
	DisplayPrice    decimal.Decimal
	OriginalPrice   *decimal.Decimal
	discountPercent decimal.Decimal
}

// Badge returns the discount label, e.g. "20% OFF", or "" when no discount
// applies. It agrees with OriginalPrice presence by construction.
func (p Projection) Badge() string {
	if p.OriginalPrice == nil {
		return ""
	}
	return fmt.Sprintf("%s%% OFF", p.discountPercent.String())
}

var oneHundred = decimal.NewFromInt(100)

// Project computes the display price for a raw price and discount percent.
// Full precision is preserved, no rounding is applied here; presentation
// formatting is the caller's concern.
//
// A negative raw price or a percent outside [0,100] is a caller contract
// violation: catalog data is validated upstream.
func Project(rawPrice, discountPercent decimal.Decimal) (Projection, error) {
	if rawPrice.IsNegative() {
		return Projection{}, fmt.Errorf("rawPrice[%s] is negative", rawPrice)
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return Projection{}, fmt.Errorf("discountPercent[%s] is out of range", discountPercent)
	}

	if discountPercent.IsZero() {
		return Projection{DisplayPrice: rawPrice}, nil
	}

	// Shift(-2) divides by 100 exactly, no division precision loss.
	display := rawPrice.Mul(oneHundred.Sub(discountPercent)).Shift(-2)
	original := rawPrice

	return Projection{
		DisplayPrice:    display,
		OriginalPrice:   &original,
		discountPercent: discountPercent,
	}, nil
}

// ProjectProduct is a convenience over Project for a full catalog record.
func ProjectProduct(p Product) (Projection, error) {
	proj, err := Project(p.RawPrice, p.DiscountPercent)
	if err != nil {
		return Projection{}, fmt.Errorf("product[%s]: %w", p.ID, err)
	}

	return proj, nil
}
