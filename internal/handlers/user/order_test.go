package user

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_back_end/internal/models"
)

func produit(id int64, prix string) models.Product {
	return models.Product{ID: id, Price: decimal.RequireFromString(prix), IsActive: true}
}

func TestMissingProductIDs(t *testing.T) {
	items := []models.CartItem{
		{ID: 1, CartID: 1, ProductID: 10, Quantity: 2},
		{ID: 2, CartID: 1, ProductID: 11, Quantity: 1},
		{ID: 3, CartID: 1, ProductID: 12, Quantity: 3},
	}
	actifs := map[int64]models.Product{
		10: produit(10, "9.99"),
		12: produit(12, "4.50"),
	}

	assert.Equal(t, []int64{11}, missingProductIDs(items, actifs))
}

func TestMissingProductIDsTousActifs(t *testing.T) {
	items := []models.CartItem{{ProductID: 10, Quantity: 1}}
	actifs := map[int64]models.Product{10: produit(10, "1.00")}

	assert.Empty(t, missingProductIDs(items, actifs))
}

func TestMissingProductIDsSansDoublon(t *testing.T) {
	// même produit désactivé référencé deux fois : signalé une seule fois
	items := []models.CartItem{
		{ID: 1, CartID: 1, ProductID: 11, Quantity: 1},
		{ID: 2, CartID: 2, ProductID: 11, Quantity: 2},
	}

	assert.Equal(t, []int64{11}, missingProductIDs(items, map[int64]models.Product{}))
}

func TestBuildOrderItemsFigeLesPrix(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 10, Quantity: 2},
		{ProductID: 12, Quantity: 1},
	}
	actifs := map[int64]models.Product{
		10: produit(10, "9.99"),
		12: produit(12, "4.50"),
	}

	orderItems := buildOrderItems(42, items, actifs)

	require.Len(t, orderItems, 2)
	assert.Equal(t, int64(42), orderItems[0].OrderID)
	assert.Equal(t, int64(10), orderItems[0].ProductID)
	assert.Equal(t, 2, orderItems[0].Quantity)
	assert.True(t, orderItems[0].PriceAtPurchase.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, orderItems[1].PriceAtPurchase.Equal(decimal.RequireFromString("4.50")))
}

func TestBuildOrderItemsIgnoreProduitsInconnus(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 10, Quantity: 1},
		{ProductID: 99, Quantity: 1},
	}
	actifs := map[int64]models.Product{10: produit(10, "2.00")}

	orderItems := buildOrderItems(1, items, actifs)

	require.Len(t, orderItems, 1)
	assert.Equal(t, int64(10), orderItems[0].ProductID)
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(models.StatusPending))
	assert.True(t, CanCancel(models.StatusConfirmed))
	assert.True(t, CanCancel(models.StatusPaymentPending))
	assert.True(t, CanCancel(models.StatusPaymentReceived))
	assert.False(t, CanCancel(models.StatusDelivered))
	assert.False(t, CanCancel(models.StatusCanceled))
	assert.False(t, CanCancel("Delivered")) // insensible à la casse
}
