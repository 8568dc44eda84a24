package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shop_back_end/internal/database"
	"shop_back_end/internal/models"
)

// RequireAdmin vérifie que l'utilisateur a le rôle "admin" dans user_roles.
// Le rôle est relu à chaque requête (pas de cache) et toute erreur de lecture
// vaut refus : on échoue fermé.
func RequireAdmin(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		c.Abort()
		return
	}

	if !IsAdmin(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}

	c.Next()
}

// IsAdmin interroge user_roles pour un utilisateur donné.
// Absence de ligne, rôle différent de "admin" ou erreur réseau ⇒ false.
func IsAdmin(userID string) bool {
	var roles []models.UserRole
	_, err := database.Supabase.From("user_roles").
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteTo(&roles)
	if err != nil {
		log.Printf("❌ Erreur lecture user_roles pour %s: %v", userID, err)
		return false
	}
	if len(roles) == 0 {
		return false
	}
	return strings.EqualFold(roles[0].Role, "admin")
}
