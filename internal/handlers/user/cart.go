package user

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shop_back_end/internal/database"
	"shop_back_end/internal/models"
	"shop_back_end/internal/utils"
)

// getOrCreateCart récupère le panier de l'utilisateur, ou le crée au premier
// accès. À appeler sous utils.LockUser pour éviter les paniers en double.
func getOrCreateCart(userID string) (models.Cart, error) {
	var carts []models.Cart
	_, err := database.Supabase.From("carts").
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteTo(&carts)
	if err != nil {
		return models.Cart{}, err
	}
	if len(carts) > 0 {
		return carts[0], nil
	}

	now := time.Now().UTC()
	var created []models.Cart
	_, err = database.Supabase.From("carts").
		Insert(map[string]interface{}{
			"user_id":    userID,
			"created_at": now,
			"updated_at": now,
		}, false, "", "representation", "").
		ExecuteTo(&created)
	if err != nil {
		return models.Cart{}, err
	}
	if len(created) == 0 {
		return models.Cart{}, errors.New("panier non renvoyé par l'insertion")
	}
	return created[0], nil
}

// findCart récupère le panier sans le créer (liste d'items vide sinon)
func findCart(userID string) (*models.Cart, error) {
	var carts []models.Cart
	_, err := database.Supabase.From("carts").
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteTo(&carts)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, nil
	}
	return &carts[0], nil
}

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	unlock := utils.LockUser(userID)
	defer unlock()

	cart, err := getOrCreateCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération panier: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart)
}

//
// 🛒 GET /api/cart/items
//
func GetCartItems(c *gin.Context) {
	userID := c.GetString("user_id")

	cart, err := findCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération panier: " + err.Error()})
		return
	}
	if cart == nil {
		c.JSON(http.StatusOK, []models.CartItem{}) // pas encore de panier
		return
	}

	items := []models.CartItem{}
	_, err = database.Supabase.From("cart_items").
		Select("*", "", false).
		Eq("cart_id", strconv.FormatInt(cart.ID, 10)).
		ExecuteTo(&items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

//
// 🟢 POST /api/cart/items
//
func AddCartItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID int64 `json:"product_id"`
		Quantity  *int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Seule une quantité omise vaut 1 : un zéro explicite est conservé tel quel
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	unlock := utils.LockUser(userID)
	defer unlock()

	cart, err := getOrCreateCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération panier: " + err.Error()})
		return
	}

	// Le produit doit exister et être actif
	var products []models.Product
	_, err = database.Supabase.From("products").
		Select("*", "", false).
		Eq("id", strconv.FormatInt(input.ProductID, 10)).
		Eq("is_active", "true").
		ExecuteTo(&products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit indisponible ou désactivé"})
		return
	}

	// Si le couple (panier, produit) existe déjà, on cumule la quantité
	var existing []models.CartItem
	_, err = database.Supabase.From("cart_items").
		Select("*", "", false).
		Eq("cart_id", strconv.FormatInt(cart.ID, 10)).
		Eq("product_id", strconv.FormatInt(input.ProductID, 10)).
		ExecuteTo(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier: " + err.Error()})
		return
	}

	var item models.CartItem
	if len(existing) > 0 {
		var updated []models.CartItem
		_, err = database.Supabase.From("cart_items").
			Update(map[string]interface{}{
				"quantity": existing[0].Quantity + quantity,
			}, "representation", "").
			Eq("id", strconv.FormatInt(existing[0].ID, 10)).
			ExecuteTo(&updated)
		if err != nil || len(updated) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour panier"})
			return
		}
		item = updated[0]
	} else {
		var inserted []models.CartItem
		_, err = database.Supabase.From("cart_items").
			Insert(map[string]interface{}{
				"cart_id":    cart.ID,
				"product_id": input.ProductID,
				"quantity":   quantity,
			}, false, "", "representation", "").
			ExecuteTo(&inserted)
		if err != nil || len(inserted) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
			return
		}
		item = inserted[0]
	}

	c.JSON(http.StatusCreated, item)
}

// findOwnedCartItem vérifie que l'item existe (404) puis que son panier
// appartient bien à l'appelant (403). Deux lectures séparées, comme le
// contrat l'exige : un item existant mais étranger renvoie 403, pas 404.
func findOwnedCartItem(c *gin.Context, userID string, itemID int64) (models.CartItem, bool) {
	var items []models.CartItem
	_, err := database.Supabase.From("cart_items").
		Select("*", "", false).
		Eq("id", strconv.FormatInt(itemID, 10)).
		ExecuteTo(&items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier: " + err.Error()})
		return models.CartItem{}, false
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return models.CartItem{}, false
	}

	var carts []models.Cart
	_, err = database.Supabase.From("carts").
		Select("*", "", false).
		Eq("id", strconv.FormatInt(items[0].CartID, 10)).
		Eq("user_id", userID).
		ExecuteTo(&carts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier: " + err.Error()})
		return models.CartItem{}, false
	}
	if len(carts) == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cet article ne vous appartient pas"})
		return models.CartItem{}, false
	}

	return items[0], true
}

//
// ✏️ PUT /api/cart/items/:id
//
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	unlock := utils.LockUser(userID)
	defer unlock()

	item, ok := findOwnedCartItem(c, userID, itemID)
	if !ok {
		return
	}

	var updated []models.CartItem
	_, err = database.Supabase.From("cart_items").
		Update(map[string]interface{}{
			"quantity": input.Quantity,
		}, "representation", "").
		Eq("id", strconv.FormatInt(item.ID, 10)).
		ExecuteTo(&updated)
	if err != nil || len(updated) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour panier"})
		return
	}

	c.JSON(http.StatusOK, updated[0])
}

//
// ❌ DELETE /api/cart/items/:id
//
func DeleteCartItem(c *gin.Context) {
	userID := c.GetString("user_id")

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}

	unlock := utils.LockUser(userID)
	defer unlock()

	item, ok := findOwnedCartItem(c, userID, itemID)
	if !ok {
		return
	}

	_, _, err = database.Supabase.From("cart_items").
		Delete("", "").
		Eq("id", strconv.FormatInt(item.ID, 10)).
		Execute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression article"})
		return
	}

	c.Status(http.StatusNoContent)
}
