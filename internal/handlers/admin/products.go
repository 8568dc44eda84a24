package admin

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shop_back_end/internal/database"
	"shop_back_end/internal/models"
)

// ProductInput est le corps attendu pour la création et la mise à jour
type ProductInput struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
}

// ValidateProductInput vérifie les invariants d'un produit : nom non vide,
// prix positif ou nul. Renvoie le message d'erreur à retourner au client.
func ValidateProductInput(input ProductInput) string {
	if strings.TrimSpace(input.Name) == "" {
		return "Le nom du produit est obligatoire"
	}
	if input.Price.IsNegative() {
		return "Le prix doit être supérieur ou égal à 0"
	}
	return ""
}

// findProduct charge un produit par id, actif ou non
func findProduct(c *gin.Context, id int64) (models.Product, bool) {
	var products []models.Product
	_, err := database.Supabase.From("products").
		Select("*", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteTo(&products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return models.Product{}, false
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return models.Product{}, false
	}
	return products[0], true
}

//
// 📋 GET /api/admin/product — tous les produits, actifs ou non
//
func GetAllProducts(c *gin.Context) {
	products := []models.Product{}
	_, err := database.Supabase.From("products").
		Select("*", "", false).
		ExecuteTo(&products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

//
// 🟢 POST /api/admin/product
//
func CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if msg := ValidateProductInput(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now().UTC()
	var created []models.Product
	_, err := database.Supabase.From("products").
		Insert(map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"price":       input.Price,
			"image_url":   input.ImageURL,
			"is_active":   true,
			"created_at":  now,
			"updated_at":  now,
		}, false, "", "representation", "").
		ExecuteTo(&created)
	if err != nil || len(created) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	c.JSON(http.StatusCreated, created[0])
}

//
// ✏️ PUT /api/admin/product/:id
//
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if msg := ValidateProductInput(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, ok := findProduct(c, id); !ok {
		return
	}

	// is_active n'est pas touché ici : la mise à jour préserve le cycle de vie
	var updated []models.Product
	_, err = database.Supabase.From("products").
		Update(map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"price":       input.Price,
			"image_url":   input.ImageURL,
			"updated_at":  time.Now().UTC(),
		}, "representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteTo(&updated)
	if err != nil || len(updated) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	c.JSON(http.StatusOK, updated[0])
}

//
// 🗑️ DELETE /api/admin/product/:id — soft-delete (is_active = false)
//
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if _, ok := findProduct(c, id); !ok {
		return
	}

	_, _, err = database.Supabase.From("products").
		Update(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}, "", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur désactivation produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit désactivé", "product_id": id})
}

//
// ♻️ PATCH /api/admin/product/:id/activate
//
func ActivateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	product, ok := findProduct(c, id)
	if !ok {
		return
	}

	if product.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le produit est déjà actif"})
		return
	}

	_, _, err = database.Supabase.From("products").
		Update(map[string]interface{}{
			"is_active":  true,
			"updated_at": time.Now().UTC(),
		}, "", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur réactivation produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit réactivé avec succès", "product_id": id})
}
