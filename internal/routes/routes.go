package routes

import (
	"github.com/gin-gonic/gin"

	"shop_back_end/internal/handlers"
	"shop_back_end/internal/handlers/admin"
	"shop_back_end/internal/handlers/user"
	"shop_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	// 🖥️ Frontend statique
	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/app.js", "./web/app.js")
	r.StaticFile("/styles.css", "./web/styles.css")

	api := r.Group("/api", middleware.APIRateLimit())

	// 🛍️ Catalogue public (produits actifs uniquement)
	api.GET("/product", handlers.GetProducts)
	api.GET("/product/:id", handlers.GetProductByID)

	// 🔐 Endpoints authentifiés
	auth := api.Group("", middleware.AuthRequired())

	auth.GET("/product/:id/any", handlers.GetProductByIDAny)

	cart := auth.Group("/cart")
	cart.GET("", user.GetCart)
	cart.GET("/items", user.GetCartItems)
	cart.POST("/items", middleware.CartRateLimit(), user.AddCartItem)
	cart.PUT("/items/:id", user.UpdateCartItem)
	cart.DELETE("/items/:id", user.DeleteCartItem)

	order := auth.Group("/order")
	order.POST("/checkout", user.CheckoutCart)
	order.GET("", user.GetMyOrders)
	order.GET("/:id", user.GetOrderByID)
	order.PATCH("/:id/cancel", user.CancelOrder)

	// 👑 Endpoints admin (rôle vérifié à chaque requête)
	adm := auth.Group("/admin", middleware.RequireAdmin)

	adm.GET("/product", admin.GetAllProducts)
	adm.POST("/product", admin.CreateProduct)
	adm.PUT("/product/:id", admin.UpdateProduct)
	adm.DELETE("/product/:id", admin.DeleteProduct)
	adm.PATCH("/product/:id/activate", admin.ActivateProduct)
	adm.POST("/product/:id/image", admin.UploadProductImage)

	adm.GET("/order", admin.GetAllOrders)
	adm.GET("/order/:id", admin.GetOrderByID)
	adm.PATCH("/order/:id/status", admin.UpdateOrderStatus)
}
