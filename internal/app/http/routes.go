package routes

import (
	"art-portfolio-app/blob"
	artworksapi "art-portfolio-app/internal/api/artworks"
	authapi "art-portfolio-app/internal/api/auth"
	siteapi "art-portfolio-app/internal/api/site"
	"art-portfolio-app/internal/app/http/middleware"
	"art-portfolio-app/internal/collection"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *collection.Store, blobs *blob.Store) {
	artworksapi.Configure(store)
	artworksapi.ConfigureUploads(blobs)
	siteapi.Configure(store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public reads: cached path, degrade to empty on store trouble
	r.GET("/artworks", siteapi.GetArtworks)
	r.GET("/artworks/featured", siteapi.GetFeatured)

	// Session
	r.POST("/auth/login", middleware.LoginRateLimit(), authapi.Login)
	r.POST("/auth/logout", authapi.Logout)
	r.GET("/auth/check", authapi.Check)

	// Admin mutations: session gate + input sanitation, fresh reads inside
	admin := r.Group("/")
	admin.Use(middleware.SessionRequired(), middleware.SanitizeJSONStrings())
	admin.POST("/artworks", artworksapi.CreateArtwork)
	admin.PUT("/artworks/:id", artworksapi.UpdateArtwork)
	admin.DELETE("/artworks/:id", artworksapi.DeleteArtwork)
	admin.POST("/artworks/reorder", artworksapi.ReorderArtworks)
	admin.POST("/upload", artworksapi.UploadImage)
}
