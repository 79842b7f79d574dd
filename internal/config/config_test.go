package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/cart-engine/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
currency: COP
free_shipping_threshold: "50000"
base_shipping_cost: "2500"
cash_surcharge: "500"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "COP", cfg.Currency.String())
	assert.True(t, cfg.FreeShippingThreshold.Equal(decimal.NewFromInt(50_000)))
	assert.True(t, cfg.BaseShippingCost.Equal(decimal.NewFromInt(2_500)))
	assert.True(t, cfg.CashSurcharge.Equal(decimal.NewFromInt(500)))
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
currency: COP
free_shipping_threshold: "50000"
base_shipping_cost: "2500"
cash_surcharge: "500"
`)

	t.Setenv("PRICING_BASE_SHIPPING_COST", "3000")
	t.Setenv("PRICING_CASH_SURCHARGE", "0")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.BaseShippingCost.Equal(decimal.NewFromInt(3_000)))
	assert.True(t, cfg.CashSurcharge.IsZero())
	// Untouched values come from the file.
	assert.True(t, cfg.FreeShippingThreshold.Equal(decimal.NewFromInt(50_000)))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown currency",
			content: `
currency: NOPE
free_shipping_threshold: "1"
base_shipping_cost: "1"
cash_surcharge: "0"
`,
		},
		{
			name: "negative amount",
			content: `
currency: COP
free_shipping_threshold: "-1"
base_shipping_cost: "1"
cash_surcharge: "0"
`,
		},
		{
			name: "amount not a number",
			content: `
currency: COP
free_shipping_threshold: "lots"
base_shipping_cost: "1"
cash_surcharge: "0"
`,
		},
		{
			name:    "not yaml",
			content: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PRICING_CURRENCY", "EUR")
	t.Setenv("PRICING_FREE_SHIPPING_THRESHOLD", "100")
	t.Setenv("PRICING_BASE_SHIPPING_COST", "7.90")
	t.Setenv("PRICING_CASH_SURCHARGE", "1.50")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency.String())
	assert.True(t, cfg.BaseShippingCost.Equal(decimal.RequireFromString("7.90")))
}

func TestFromEnv_Incomplete(t *testing.T) {
	t.Setenv("PRICING_CURRENCY", "EUR")

	_, err := config.FromEnv()
	require.Error(t, err)
}
