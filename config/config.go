package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	JWT_SECRET          string
	ADMIN_PASSWORD_HASH string

	BLOB_BUCKET          string
	BLOB_KEY             string
	BLOB_PUBLIC_BASE_URL string
	BLOB_REGION          string
	BLOB_ACCESS_KEY      string
	BLOB_SECRET_KEY      string
	BLOB_ENDPOINT        string

	UPLOAD_PREFIX string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	JWT_SECRET = mustEnv("JWT_SECRET")
	ADMIN_PASSWORD_HASH = mustEnv("ADMIN_PASSWORD_HASH")

	BLOB_BUCKET = mustEnv("BLOB_BUCKET")
	BLOB_KEY = getEnv("BLOB_KEY", "data/artworks.json")
	BLOB_PUBLIC_BASE_URL = mustEnv("BLOB_PUBLIC_BASE_URL")
	BLOB_REGION = getEnv("BLOB_REGION", "auto")
	BLOB_ACCESS_KEY = mustEnv("BLOB_ACCESS_KEY")
	BLOB_SECRET_KEY = mustEnv("BLOB_SECRET_KEY")
	BLOB_ENDPOINT = getEnv("BLOB_ENDPOINT", "")

	UPLOAD_PREFIX = getEnv("UPLOAD_PREFIX", "art-portfolio")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
