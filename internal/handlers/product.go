package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_back_end/internal/database"
	"shop_back_end/internal/models"
)

// GetProducts renvoie le catalogue public : uniquement les produits actifs
func GetProducts(c *gin.Context) {
	products := []models.Product{}
	_, err := database.Supabase.From("products").
		Select("*", "", false).
		Eq("is_active", "true").
		ExecuteTo(&products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID renvoie un produit actif par son id
func GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var products []models.Product
	_, err = database.Supabase.From("products").
		Select("*", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("is_active", "true").
		ExecuteTo(&products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, products[0])
}

// GetProductByIDAny renvoie un produit par son id, actif ou non.
// Réservé aux utilisateurs authentifiés : sert à afficher dans le panier et
// les commandes des produits que le catalogue a désactivés depuis.
func GetProductByIDAny(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var products []models.Product
	_, err = database.Supabase.From("products").
		Select("*", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteTo(&products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, products[0])
}
