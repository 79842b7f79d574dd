package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// MulInt scales the amount by a quantity, keeping the currency.
func (m Money) MulInt(n int64) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(n)),
		Currency: m.Currency,
	}
}
