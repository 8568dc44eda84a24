package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/postgrest-go"
)

// --- Variables Globales ---
// Le client Supabase est construit une seule fois au démarrage et partagé
// par tous les handlers (un seul client longue durée, jamais recréé par requête).
var (
	Supabase *postgrest.Client
	Redis    *redis.Client
)

// ConnectDatabases initialise toutes les connexions externes
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Initialiser le client Supabase (PostgREST)
	connectSupabase()

	// 2. Initialiser Redis (rate limiting uniquement — jamais de cache de données)
	connectRedis(ctx)

	log.Println("✅ Connexions externes initialisées")
}

// =============================================
// SUPABASE (PostgREST)
// =============================================

func connectSupabase() {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_KEY")

	if url == "" || key == "" {
		log.Fatal("❌ SUPABASE_URL et SUPABASE_KEY sont obligatoires dans .env")
	}

	// L'API REST de Supabase est exposée sous /rest/v1
	restURL := strings.TrimRight(url, "/") + "/rest/v1"

	Supabase = postgrest.NewClient(restURL, "public", map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	})
	if Supabase.ClientError != nil {
		log.Fatal("❌ Erreur création client Supabase:", Supabase.ClientError)
	}

	log.Println("✅ Client Supabase initialisé :", restURL)
}

// =============================================
// REDIS
// =============================================

func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️ REDIS_HOST non configuré — rate limiting désactivé")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// CloseRedis ferme la connexion Redis
func CloseRedis() error {
	if Redis != nil {
		return Redis.Close()
	}
	return nil
}
