package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"favorites-tracker/favorites"
	"favorites-tracker/models"
	"favorites-tracker/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoritesAPI(t *testing.T) (*gin.Engine, *favorites.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := favorites.NewManager(storage.NewCSVStore(filepath.Join(t.TempDir(), "favorites.csv")))
	h := NewFavorites(manager)

	router := gin.New()
	router.GET("/api/favorites", h.List)
	router.GET("/api/favorites/:symbol", h.Get)
	router.POST("/api/favorites", h.Add)
	router.DELETE("/api/favorites/:symbol", h.Remove)
	return router, manager
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFavoritesAPI_AddAndList(t *testing.T) {
	router, _ := newFavoritesAPI(t)

	w := doJSON(router, "POST", "/api/favorites", `{"symbol":"AAPL","name":"Apple","note":"long term"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, "GET", "/api/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list models.FavoritesList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "AAPL", list[0].Symbol)
	assert.Equal(t, "Apple", list[0].Name)
	assert.Equal(t, "long term", list[0].Note)
	assert.False(t, list[0].AddedAt.IsZero())
}

func TestFavoritesAPI_AddDuplicateConflict(t *testing.T) {
	router, _ := newFavoritesAPI(t)

	w := doJSON(router, "POST", "/api/favorites", `{"symbol":"AAPL"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/api/favorites", `{"symbol":"AAPL"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already in favorites")
}

func TestFavoritesAPI_AddMissingSymbol(t *testing.T) {
	router, _ := newFavoritesAPI(t)

	w := doJSON(router, "POST", "/api/favorites", `{"name":"no symbol"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesAPI_GetNotFound(t *testing.T) {
	router, _ := newFavoritesAPI(t)

	w := doJSON(router, "GET", "/api/favorites/AAPL", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoritesAPI_Get(t *testing.T) {
	router, manager := newFavoritesAPI(t)
	require.NoError(t, manager.Add(models.StockEntry{Symbol: "AAPL", Name: "Apple"}))

	w := doJSON(router, "GET", "/api/favorites/AAPL", "")
	require.Equal(t, http.StatusOK, w.Code)

	var entry models.StockEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "AAPL", entry.Symbol)
	assert.Equal(t, "Apple", entry.Name)
}

func TestFavoritesAPI_Remove(t *testing.T) {
	router, manager := newFavoritesAPI(t)
	require.NoError(t, manager.Add(models.StockEntry{Symbol: "AAPL"}))

	w := doJSON(router, "DELETE", "/api/favorites/AAPL", "")
	require.Equal(t, http.StatusOK, w.Code)

	list, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	w = doJSON(router, "DELETE", "/api/favorites/AAPL", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
