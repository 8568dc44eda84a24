package models

import "time"

// UserRole correspond à la table `user_roles`. Lecture seule côté backend :
// le rôle est consulté à chaque requête admin, jamais mis en cache.
type UserRole struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
