package artworks

import (
	"net/http"

	"art-portfolio-app/blob"

	"github.com/gin-gonic/gin"
)

var blobs *blob.Store

// ConfigureUploads wires the blob store behind the image upload endpoint.
func ConfigureUploads(b *blob.Store) {
	blobs = b
}

// ------------------------------
// POST /upload  (multipart image -> public URL)
// ------------------------------
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := blobs.UploadImage(c.Request.Context(), file.Filename, contentType, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
