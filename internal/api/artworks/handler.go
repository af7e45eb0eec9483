package artworks

import (
	"errors"
	"net/http"
	"strings"

	"art-portfolio-app/internal/collection"

	"github.com/gin-gonic/gin"
)

var store *collection.Store

// Configure wires the collection store the handlers mutate through.
func Configure(s *collection.Store) {
	store = s
}

// ------------------------------
// POST /artworks
// ------------------------------
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.ImageURL == "" {
		missing = append(missing, "imageUrl")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + strings.Join(missing, ", ")})
		return
	}

	list, err := store.Append(c.Request.Context(), collection.NewArtwork{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Medium:      req.Medium,
		Date:        req.Date,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	// full updated list, new record first
	c.JSON(http.StatusCreated, list)
}

// ------------------------------
// PUT /artworks/:id
// ------------------------------
func UpdateArtwork(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := store.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		case errors.Is(err, collection.ErrFeaturedLimit):
			c.JSON(http.StatusConflict, gin.H{"error": "Featured limit reached (max 5)"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}

// ------------------------------
// DELETE /artworks/:id
// ------------------------------
func DeleteArtwork(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	// deleting an absent id is a success, not an error
	if _, err := store.Remove(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ------------------------------
// POST /artworks/reorder
// ------------------------------
func ReorderArtworks(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderedIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderedIds must be an array"})
		return
	}

	list, err := store.Reorder(c.Request.Context(), *req.OrderedIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "artworks": list})
}
