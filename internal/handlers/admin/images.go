package admin

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shop_back_end/internal/database"
	"shop_back_end/internal/services"
)

//
// 🖼️ POST /api/admin/product/:id/image
//
// Upload l'image d'un produit vers MinIO et enregistre l'URL dans image_url
func UploadProductImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if _, ok := findProduct(c, id); !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier 'image' manquant"})
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "products"
	}

	url, err := services.UploadFile(bucket, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image: " + err.Error()})
		return
	}

	_, _, err = database.Supabase.From("products").
		Update(map[string]interface{}{
			"image_url":  url,
			"updated_at": time.Now().UTC(),
		}, "", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image enregistrée", "image_url": url})
}
