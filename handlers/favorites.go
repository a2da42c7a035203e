package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"favorites-tracker/favorites"
	"favorites-tracker/models"
	"favorites-tracker/storage"

	"github.com/gin-gonic/gin"
)

type FavoriteInput struct {
	Symbol string `json:"symbol" form:"symbol" binding:"required"`
	Name   string `json:"name" form:"name"`
	Note   string `json:"note" form:"note"`
}

// Favorites serves the favorites list, both as JSON API and as the
// server-rendered favorites page.
type Favorites struct {
	Manager *favorites.Manager
}

func NewFavorites(m *favorites.Manager) *Favorites {
	return &Favorites{Manager: m}
}

func (h *Favorites) List(c *gin.Context) {
	list, err := h.Manager.List()
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Favorites) Get(c *gin.Context) {
	entry, err := h.Manager.Get(c.Param("symbol"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Favorites) Add(c *gin.Context) {
	var input FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.StockEntry{Symbol: input.Symbol, Name: input.Name, Note: input.Note}
	if err := h.Manager.Add(entry); err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stock added successfully", "symbol": entry.Symbol})
}

func (h *Favorites) Remove(c *gin.Context) {
	symbol := c.Param("symbol")
	if err := h.Manager.Remove(symbol); err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock removed successfully", "symbol": symbol})
}

// Page renders the favorites page with the add form, the current table
// and the same counters the app has always shown.
func (h *Favorites) Page(c *gin.Context) {
	list, err := h.Manager.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	addedToday, withNotes := 0, 0
	for _, e := range list {
		if !e.AddedAt.IsZero() && e.AddedAt.Format("2006-01-02") == today {
			addedToday++
		}
		if e.Note != "" {
			withNotes++
		}
	}

	c.HTML(http.StatusOK, "favorites.html", gin.H{
		"Favorites":  list,
		"Total":      len(list),
		"AddedToday": addedToday,
		"WithNotes":  withNotes,
		"Error":      c.Query("error"),
		"Message":    c.Query("message"),
	})
}

// AddForm handles the favorites page add form and redirects back.
func (h *Favorites) AddForm(c *gin.Context) {
	var input FavoriteInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithError(c, "/", "Please enter a stock symbol")
		return
	}

	entry := models.StockEntry{Symbol: input.Symbol, Name: input.Name, Note: input.Note}
	if err := h.Manager.Add(entry); err != nil {
		redirectWithError(c, "/", storeErrorMessage(err))
		return
	}
	redirectWithMessage(c, "/", "Added "+entry.Symbol)
}

// RemoveForm handles the delete multi-select on the favorites page.
func (h *Favorites) RemoveForm(c *gin.Context) {
	selected := c.PostFormArray("symbols")
	if len(selected) == 0 {
		redirectWithError(c, "/", "Please select stocks to delete")
		return
	}
	for _, symbol := range selected {
		if err := h.Manager.Remove(symbol); err != nil {
			redirectWithError(c, "/", storeErrorMessage(err))
			return
		}
	}
	redirectWithMessage(c, "/", "Deleted selected stocks")
}

func abortWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrDuplicateSymbol):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrInvalidEntry):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func storeErrorMessage(err error) string {
	switch {
	case errors.Is(err, storage.ErrDuplicateSymbol):
		return "Stock is already in favorites"
	case errors.Is(err, storage.ErrNotFound):
		return "Stock is not in favorites"
	case errors.Is(err, storage.ErrInvalidEntry):
		return "Please enter a stock symbol"
	default:
		return err.Error()
	}
}

func redirectWithError(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(msg))
}

func redirectWithMessage(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?message="+url.QueryEscape(msg))
}
