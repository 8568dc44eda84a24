package user

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/postgrest-go"

	"shop_back_end/internal/database"
	"shop_back_end/internal/models"
	"shop_back_end/internal/utils"
)

// missingProductIDs renvoie les produits du panier absents de l'ensemble
// actif : le checkout est tout-ou-rien, un seul produit désactivé suffit
// à le refuser.
func missingProductIDs(items []models.CartItem, products map[int64]models.Product) []int64 {
	missing := []int64{}
	seen := map[int64]bool{}
	for _, item := range items {
		if _, ok := products[item.ProductID]; !ok && !seen[item.ProductID] {
			missing = append(missing, item.ProductID)
			seen[item.ProductID] = true
		}
	}
	return missing
}

// buildOrderItems construit les lignes de commande en figeant le prix
// courant de chaque produit (price_at_purchase)
func buildOrderItems(orderID int64, items []models.CartItem, products map[int64]models.Product) []models.OrderItem {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		orderItems = append(orderItems, models.OrderItem{
			OrderID:         orderID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
		})
	}
	return orderItems
}

// loadActiveProducts charge les produits actifs référencés par le panier
func loadActiveProducts(items []models.CartItem) (map[int64]models.Product, error) {
	idSet := map[int64]bool{}
	ids := []string{}
	for _, item := range items {
		if !idSet[item.ProductID] {
			idSet[item.ProductID] = true
			ids = append(ids, strconv.FormatInt(item.ProductID, 10))
		}
	}

	var products []models.Product
	_, err := database.Supabase.From("products").
		Select("*", "", false).
		In("id", ids).
		Eq("is_active", "true").
		ExecuteTo(&products)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

// loadOrderItems charge les lignes d'une commande
func loadOrderItems(orderID int64) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	_, err := database.Supabase.From("order_items").
		Select("*", "", false).
		Eq("order_id", strconv.FormatInt(orderID, 10)).
		ExecuteTo(&items)
	return items, err
}

//
// 📦 POST /api/order/checkout
//
// Transforme le panier en commande. Ordre des étapes voulu : toutes les
// validations d'abord, puis commande, puis lignes de commande, et le panier
// n'est vidé qu'une fois les lignes confirmées. En cas d'échec d'insertion
// des lignes, la commande est compensée (supprimée) et le panier reste intact.
func CheckoutCart(c *gin.Context) {
	userID := c.GetString("user_id")

	unlock := utils.LockUser(userID)
	defer unlock()

	// 1. Panier de l'utilisateur
	cart, err := findCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération panier: " + err.Error()})
		return
	}
	if cart == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun panier pour cet utilisateur"})
		return
	}

	// 2. Articles du panier
	var cartItems []models.CartItem
	_, err = database.Supabase.From("cart_items").
		Select("*", "", false).
		Eq("cart_id", strconv.FormatInt(cart.ID, 10)).
		ExecuteTo(&cartItems)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier: " + err.Error()})
		return
	}
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	// 3. Produits actifs référencés par le panier
	products, err := loadActiveProducts(cartItems)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	if missing := missingProductIDs(cartItems, products); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":                "Certains produits de votre panier ne sont plus disponibles",
			"inactive_product_ids": missing,
		})
		return
	}

	// 4. Création de la commande (statut pending)
	now := time.Now().UTC()
	var orders []models.Order
	_, err = database.Supabase.From("orders").
		Insert(map[string]interface{}{
			"user_id":    userID,
			"order_date": now,
			"status":     models.StatusPending,
			"updated_at": now,
		}, false, "", "representation", "").
		ExecuteTo(&orders)
	if err != nil || len(orders) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}
	order := orders[0]

	// 5-6. Lignes de commande avec prix figés
	orderItems := buildOrderItems(order.ID, cartItems, products)

	payload := make([]map[string]interface{}, 0, len(orderItems))
	for _, oi := range orderItems {
		payload = append(payload, map[string]interface{}{
			"order_id":          oi.OrderID,
			"product_id":        oi.ProductID,
			"quantity":          oi.Quantity,
			"price_at_purchase": oi.PriceAtPurchase,
		})
	}

	var insertedItems []models.OrderItem
	_, err = database.Supabase.From("order_items").
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&insertedItems)
	if err != nil {
		// Compensation : on supprime la commande orpheline, le panier reste intact
		if _, _, delErr := database.Supabase.From("orders").
			Delete("", "").
			Eq("id", strconv.FormatInt(order.ID, 10)).
			Execute(); delErr != nil {
			log.Printf("⚠️ Commande %d orpheline, à réconcilier: %v", order.ID, delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création lignes de commande: " + err.Error()})
		return
	}

	// 7. Vider le panier — une seule suppression filtrée sur cart_id, pas de
	// fenêtre de suppression partielle. La commande reste valide si ça échoue.
	if _, _, err := database.Supabase.From("cart_items").
		Delete("", "").
		Eq("cart_id", strconv.FormatInt(cart.ID, 10)).
		Execute(); err != nil {
		log.Printf("⚠️ Panier %d non vidé après la commande %d: %v", cart.ID, order.ID, err)
	}

	// 📧 Confirmation par mail, sans bloquer la réponse
	if email := c.GetString("email"); email != "" {
		go utils.SendOrderConfirmation(email, order, insertedItems)
	}

	c.JSON(http.StatusCreated, models.OrderWithItems{Order: order, Items: insertedItems})
}

//
// 📦 GET /api/order
//
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	var orders []models.Order
	_, err := database.Supabase.From("orders").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("order_date", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes: " + err.Error()})
		return
	}

	result := []models.OrderWithItems{}
	for _, order := range orders {
		items, err := loadOrderItems(order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commandes: " + err.Error()})
			return
		}
		result = append(result, models.OrderWithItems{Order: order, Items: items})
	}

	c.JSON(http.StatusOK, result)
}

//
// 📦 GET /api/order/:id
//
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, ok := findUserOrder(c, userID, orderID)
	if !ok {
		return
	}

	items, err := loadOrderItems(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.OrderWithItems{Order: order, Items: items})
}

// findUserOrder filtre par id ET user_id : un id inconnu ou une commande
// d'un autre utilisateur renvoient le même 404 (pas de fuite d'existence)
func findUserOrder(c *gin.Context, userID string, orderID int64) (models.Order, bool) {
	var orders []models.Order
	_, err := database.Supabase.From("orders").
		Select("*", "", false).
		Eq("id", strconv.FormatInt(orderID, 10)).
		Eq("user_id", userID).
		ExecuteTo(&orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande: " + err.Error()})
		return models.Order{}, false
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return models.Order{}, false
	}
	return orders[0], true
}

// CanCancel indique si une commande peut encore être annulée
func CanCancel(status string) bool {
	switch strings.ToLower(status) {
	case models.StatusDelivered, models.StatusCanceled:
		return false
	}
	return true
}

//
// 🚫 PATCH /api/order/:id/cancel
//
func CancelOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, ok := findUserOrder(c, userID, orderID)
	if !ok {
		return
	}

	if !CanCancel(order.Status) {
		msg := "Impossible d'annuler une commande livrée"
		if strings.EqualFold(order.Status, models.StatusCanceled) {
			msg = "Commande déjà annulée"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var updated []models.Order
	_, err = database.Supabase.From("orders").
		Update(map[string]interface{}{
			"status":     models.StatusCanceled,
			"updated_at": time.Now().UTC(),
		}, "representation", "").
		Eq("id", strconv.FormatInt(order.ID, 10)).
		ExecuteTo(&updated)
	if err != nil || len(updated) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur annulation commande"})
		return
	}

	items, err := loadOrderItems(updated[0].ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.OrderWithItems{Order: updated[0], Items: items})
}
