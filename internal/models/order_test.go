package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, PriceAtPurchase: decimal.RequireFromString("9.99")},
		{Quantity: 3, PriceAtPurchase: decimal.RequireFromString("1.50")},
	}

	assert.True(t, Total(items).Equal(decimal.RequireFromString("24.48")))
}

func TestTotalVide(t *testing.T) {
	assert.True(t, Total(nil).Equal(decimal.Zero))
}
