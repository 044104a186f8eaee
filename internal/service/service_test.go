package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	services := New()

	assert.NotNil(t, services.PricingService)
	assert.NotNil(t, services.LedgerService)
}

func TestLedgerResolvesThroughPricing(t *testing.T) {
	services := New()
	services.PricingService.RecordProduct("latte", map[string]float64{"medium": 4.0})

	require.NoError(t, services.LedgerService.RecordOrder("a", "latte", "medium"))

	assert.Equal(t, int64(400), services.LedgerService.Outstanding("a"))
}
