package artworks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"art-portfolio-app/blob"
	"art-portfolio-app/internal/collection"
	domain "art-portfolio-app/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocs struct {
	doc []byte
	err error
}

func (f *fakeDocs) FetchFresh(ctx context.Context) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.doc == nil {
		return nil, blob.ErrNotFound
	}
	return f.doc, nil
}

func (f *fakeDocs) FetchCached(ctx context.Context, _ time.Duration) ([]byte, error) {
	return f.FetchFresh(ctx)
}

func (f *fakeDocs) Save(ctx context.Context, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.doc = data
	return nil
}

func newRouter(docs *fakeDocs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	Configure(collection.New(docs))

	r := gin.New()
	r.POST("/artworks", CreateArtwork)
	r.PUT("/artworks/:id", UpdateArtwork)
	r.DELETE("/artworks/:id", DeleteArtwork)
	r.POST("/artworks/reorder", ReorderArtworks)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seed(t *testing.T, docs *fakeDocs, list []domain.Artwork) {
	t.Helper()
	data, err := json.Marshal(list)
	require.NoError(t, err)
	docs.doc = data
}

func TestCreateArtworkMissingFields(t *testing.T) {
	r := newRouter(&fakeDocs{})

	w := do(r, http.MethodPost, "/artworks", `{"description":"no title or image"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
	assert.Contains(t, w.Body.String(), "imageUrl")

	w = do(r, http.MethodPost, "/artworks", `{"title":"T"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "imageUrl")
	assert.NotContains(t, w.Body.String(), "title,")
}

func TestCreateArtworkReturnsFullList(t *testing.T) {
	docs := &fakeDocs{}
	seed(t, docs, []domain.Artwork{{ID: "old", Title: "Old"}})
	r := newRouter(docs)

	w := do(r, http.MethodPost, "/artworks", `{"title":"New","imageUrl":"https://img/new.jpg"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var list []domain.Artwork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "New", list[0].Title)
	assert.Equal(t, "old", list[1].ID)
}

func TestCreateArtworkStoreFailure(t *testing.T) {
	r := newRouter(&fakeDocs{err: assert.AnError})
	w := do(r, http.MethodPost, "/artworks", `{"title":"T","imageUrl":"u"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateArtworkNotFound(t *testing.T) {
	docs := &fakeDocs{}
	seed(t, docs, []domain.Artwork{{ID: "a"}})
	r := newRouter(docs)

	w := do(r, http.MethodPut, "/artworks/nope", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestUpdateArtworkPartialFields(t *testing.T) {
	docs := &fakeDocs{}
	seed(t, docs, []domain.Artwork{{ID: "a", Title: "Keep", Description: "old", CreatedAt: 7}})
	r := newRouter(docs)

	w := do(r, http.MethodPut, "/artworks/a", `{"description":"new"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var list []domain.Artwork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Keep", list[0].Title)
	assert.Equal(t, "new", list[0].Description)
	assert.Equal(t, int64(7), list[0].CreatedAt)
}

func TestUpdateArtworkFeaturedCapConflict(t *testing.T) {
	docs := &fakeDocs{}
	list := make([]domain.Artwork, 6)
	for i := range list {
		list[i] = domain.Artwork{ID: string(rune('a' + i)), Featured: i < 5}
	}
	seed(t, docs, list)
	r := newRouter(docs)

	w := do(r, http.MethodPut, "/artworks/f", `{"featured":true}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Featured limit")
}

func TestDeleteArtworkIdempotent(t *testing.T) {
	docs := &fakeDocs{}
	seed(t, docs, []domain.Artwork{{ID: "a"}, {ID: "b"}})
	r := newRouter(docs)

	w := do(r, http.MethodDelete, "/artworks/a", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	// absent id still succeeds
	w = do(r, http.MethodDelete, "/artworks/a", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReorderRejectsNonArray(t *testing.T) {
	docs := &fakeDocs{}
	seed(t, docs, []domain.Artwork{{ID: "a"}})
	r := newRouter(docs)

	for _, body := range []string{`{}`, `{"orderedIds":"a"}`, `{"orderedIds":123}`, `not json`} {
		w := do(r, http.MethodPost, "/artworks/reorder", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestReorderReturnsReorderedList(t *testing.T) {
	docs := &fakeDocs{}
	seed(t, docs, []domain.Artwork{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	r := newRouter(docs)

	w := do(r, http.MethodPost, "/artworks/reorder", `{"orderedIds":["c","a"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool             `json:"success"`
		Artworks []domain.Artwork `json:"artworks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Artworks, 3)
	assert.Equal(t, "c", resp.Artworks[0].ID)
	assert.Equal(t, "a", resp.Artworks[1].ID)
	assert.Equal(t, "b", resp.Artworks[2].ID)
}
