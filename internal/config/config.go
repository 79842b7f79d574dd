// Package config loads the shipping and payment parameters from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/nikolayk812/cart-engine/internal/domain"
)

const (
	envCurrency              = "PRICING_CURRENCY"
	envFreeShippingThreshold = "PRICING_FREE_SHIPPING_THRESHOLD"
	envBaseShippingCost      = "PRICING_BASE_SHIPPING_COST"
	envCashSurcharge         = "PRICING_CASH_SURCHARGE"
)

// fileConfig is the YAML shape. Amounts are decimal strings so they survive
// parsing without float loss.
type fileConfig struct {
	Currency              string `yaml:"currency"`
	FreeShippingThreshold string `yaml:"free_shipping_threshold"`
	BaseShippingCost      string `yaml:"base_shipping_cost"`
	CashSurcharge         string `yaml:"cash_surcharge"`
}

// Load reads path, applies env overrides, and validates. On error callers are
// expected to pass a nil config to the pricing calculator, which then quotes
// from its documented defaults until real configuration arrives.
func Load(path string) (*domain.PricingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	applyEnv(&fc)

	return toDomain(fc)
}

// FromEnv builds configuration from environment variables alone.
func FromEnv() (*domain.PricingConfig, error) {
	var fc fileConfig
	applyEnv(&fc)

	if fc.Currency == "" || fc.FreeShippingThreshold == "" ||
		fc.BaseShippingCost == "" || fc.CashSurcharge == "" {
		return nil, fmt.Errorf("pricing configuration is incomplete")
	}

	return toDomain(fc)
}

func applyEnv(fc *fileConfig) {
	if v := os.Getenv(envCurrency); v != "" {
		fc.Currency = v
	}
	if v := os.Getenv(envFreeShippingThreshold); v != "" {
		fc.FreeShippingThreshold = v
	}
	if v := os.Getenv(envBaseShippingCost); v != "" {
		fc.BaseShippingCost = v
	}
	if v := os.Getenv(envCashSurcharge); v != "" {
		fc.CashSurcharge = v
	}
}

func toDomain(fc fileConfig) (*domain.PricingConfig, error) {
	unit, err := currency.ParseISO(fc.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", fc.Currency, err)
	}

	threshold, err := parseAmount("free_shipping_threshold", fc.FreeShippingThreshold)
	if err != nil {
		return nil, err
	}
	baseCost, err := parseAmount("base_shipping_cost", fc.BaseShippingCost)
	if err != nil {
		return nil, err
	}
	surcharge, err := parseAmount("cash_surcharge", fc.CashSurcharge)
	if err != nil {
		return nil, err
	}

	return &domain.PricingConfig{
		Currency:              unit,
		FreeShippingThreshold: threshold,
		BaseShippingCost:      baseCost,
		CashSurcharge:         surcharge,
	}, nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s[%s] is not a valid amount: %w", name, value, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s[%s] is negative", name, value)
	}

	return d, nil
}
