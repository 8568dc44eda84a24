package models

import "time"

// Cart correspond à la table `carts` : au plus un panier par utilisateur,
// créé paresseusement au premier accès, jamais supprimé.
type Cart struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem correspond à la table `cart_items`.
// Contrainte : une seule ligne par couple (cart_id, product_id) — re-ajouter
// un produit incrémente la quantité au lieu de dupliquer la ligne.
type CartItem struct {
	ID        int64 `json:"id"`
	CartID    int64 `json:"cart_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
