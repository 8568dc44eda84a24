package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shop_back_end/internal/models"
)

func TestOrderConfirmationHTML(t *testing.T) {
	order := models.Order{
		ID:        42,
		Status:    models.StatusPending,
		OrderDate: time.Now(),
	}
	items := []models.OrderItem{
		{ProductID: 10, Quantity: 2, PriceAtPurchase: decimal.RequireFromString("9.99")},
		{ProductID: 12, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("4.50")},
	}

	html := OrderConfirmationHTML(order, items)

	assert.Contains(t, html, "n°42")
	assert.Contains(t, html, "pending")
	assert.Contains(t, html, "9.99€")
	assert.Contains(t, html, "19.98€") // 2 × 9.99
	assert.Contains(t, html, "24.48€") // total
}
