package finance_test

import (
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/finance"
	"github.com/stretchr/testify/assert"
)

func TestShippingCost(t *testing.T) {
	testCases := []struct {
		name   string
		weight float64
		rate   float64
		want   float64
	}{
		{name: "fast", weight: 2.5, rate: 450, want: 1125},
		{name: "normal", weight: 1.2, rate: 280, want: 336},
		{name: "fraction rounded", weight: 0.333, rate: 280, want: 93.24},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, finance.ShippingCost(tc.weight, tc.rate))
		})
	}
}

func TestCommission(t *testing.T) {
	assert.Equal(t, 20.0, finance.Commission(200, entities.CommissionPercentage, 10, 0))
	assert.Equal(t, 12.5, finance.Commission(125, entities.CommissionPercentage, 10, 0))
	assert.Equal(t, 50.0, finance.Commission(200, entities.CommissionFlat, 10, 50))
}

func TestApportion(t *testing.T) {
	assert.Equal(t, 33.0, finance.Apportion(100, 1, 3))
	assert.Equal(t, 67.0, finance.Apportion(100, 2, 3))
	assert.Equal(t, 0.0, finance.Apportion(100, 1, 0))
}

func TestSummarize(t *testing.T) {
	orders := []entities.Order{
		{Status: entities.StatusStored, PriceInMRU: 300, Commission: 30, ShippingCost: 1125, AmountPaid: 1000},
		{Status: entities.StatusNew, PriceInMRU: 100, Commission: 10},
		{Status: entities.StatusCancelled, PriceInMRU: 999, Commission: 99},
		{Status: entities.StatusCompleted, PriceInMRU: 50, AmountPaid: 80},
	}

	got := finance.Summarize("c1", orders)

	assert.Equal(t, "c1", got.ClientID)
	assert.Equal(t, 3, got.Orders)
	assert.Equal(t, 450.0, got.Goods)
	assert.Equal(t, 40.0, got.Commission)
	assert.Equal(t, 1125.0, got.Shipping)
	assert.Equal(t, 1615.0, got.Total)
	assert.Equal(t, 1080.0, got.Paid)
	// переплата по последнему заказу не уменьшает долг по остальным
	assert.Equal(t, 565.0, got.Due)
}
