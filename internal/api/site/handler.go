package site

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"art-portfolio-app/internal/collection"
	"art-portfolio-app/internal/domain/artworks"
	"art-portfolio-app/internal/gallery"

	"github.com/gin-gonic/gin"
)

// The carousel tolerates brief staleness; a short revalidate window keeps
// repeat landing-page hits off the network.
const featuredRevalidate = 30 * time.Second

var store *collection.Store

func Configure(s *collection.Store) {
	store = s
}

// ------------------------------
// GET /artworks?search=&medium=&year=&sort=
// ------------------------------
func GetArtworks(c *gin.Context) {
	list, err := store.ArtworksCached(c.Request.Context(), revalidateFor(c))
	if err != nil {
		// graceful degradation: the public gallery renders empty rather
		// than erroring; mutations never take this path
		log.Println("site: failed to load artworks:", err)
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, []artworks.Artwork{})
		return
	}

	opts := gallery.Options{
		Search: c.Query("search"),
		Medium: c.Query("medium"),
		Year:   c.Query("year"),
		Sort:   gallery.ParseMode(c.Query("sort")),
	}

	out := make([]artworks.Artwork, 0, len(list))
	for a := range gallery.View(list, opts) {
		out = append(out, a)
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /artworks/featured  (landing-page carousel)
// ------------------------------
func GetFeatured(c *gin.Context) {
	list, err := store.ArtworksCached(c.Request.Context(), featuredRevalidate)
	if err != nil {
		log.Println("site: failed to load featured artworks:", err)
		c.JSON(http.StatusOK, []artworks.Artwork{})
		return
	}

	c.JSON(http.StatusOK, gallery.Featured(list))
}

// revalidateFor reads an optional ?revalidate=<seconds> hint. Unset or zero
// means always refetch; the caller is saying how stale a response it accepts.
func revalidateFor(c *gin.Context) time.Duration {
	secs, err := strconv.Atoi(c.Query("revalidate"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
