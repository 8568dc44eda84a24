package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts valides d'une commande
const (
	StatusPending         = "pending"
	StatusConfirmed       = "confirmed"
	StatusPaymentPending  = "payment_pending"
	StatusPaymentReceived = "payment_received"
	StatusDelivered       = "delivered"
	StatusCanceled        = "canceled"
)

// Order correspond à la table `orders`. Créée uniquement via le checkout ;
// la seule mutation possible ensuite est le changement de statut.
type Order struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	OrderDate time.Time `json:"order_date"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem correspond à la table `order_items`.
// PriceAtPurchase fige le prix du produit au moment de l'achat : les
// modifications de prix ultérieures ne touchent jamais les commandes passées.
type OrderItem struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"order_id"`
	ProductID       int64           `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

// OrderWithItems est la forme renvoyée par l'API côté client
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// AdminOrder est la vue admin d'une commande, avec le montant total calculé
type AdminOrder struct {
	Order
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Total calcule le montant d'une liste d'items (quantité × prix figé)
func Total(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.PriceAtPurchase.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
