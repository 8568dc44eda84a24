package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shop_back_end/internal/config"
	"shop_back_end/internal/database"
	"shop_back_end/internal/routes"
	"shop_back_end/internal/services"
)

func main() {
	config.Load()

	if os.Getenv("SUPABASE_JWT_SECRET") == "" {
		log.Fatal("❌ SUPABASE_JWT_SECRET manquant dans .env")
	}

	database.ConnectDatabases()
	services.ConnectMinio()

	r := gin.Default()

	// CORS pour le frontend en dev (servi à part)
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = []string{origins}
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:4200", "http://localhost:8080"}
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur boutique lancé sur le port", port)
	r.Run(":" + port)
}
