package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// MustGet récupère une variable d'environnement obligatoire
func MustGet(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("❌ Variable d'environnement manquante : %s", key)
	}
	return value
}
