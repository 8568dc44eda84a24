package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product correspond à la table `products` dans Supabase.
// Un produit n'est jamais supprimé physiquement : is_active passe à false
// (soft-delete) pour préserver l'historique des commandes.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
