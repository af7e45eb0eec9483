package main

import (
	"context"
	"log"
	"time"

	"art-portfolio-app/blob"
	"art-portfolio-app/config"
	routes "art-portfolio-app/internal/app/http"
	"art-portfolio-app/internal/collection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	blobs, err := blob.New(context.Background(), blob.Config{
		Bucket:        config.BLOB_BUCKET,
		Key:           config.BLOB_KEY,
		PublicBaseURL: config.BLOB_PUBLIC_BASE_URL,
		Region:        config.BLOB_REGION,
		AccessKey:     config.BLOB_ACCESS_KEY,
		SecretKey:     config.BLOB_SECRET_KEY,
		Endpoint:      config.BLOB_ENDPOINT,
		UploadPrefix:  config.UPLOAD_PREFIX,
	})
	if err != nil {
		log.Fatal("❌ Failed to init blob store:", err)
	}

	store := collection.New(blobs)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, store, blobs)

	r.Run(":" + config.PORT)
}
