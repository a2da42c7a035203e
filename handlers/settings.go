package handlers

import (
	"net/http"

	"favorites-tracker/settings"

	"github.com/gin-gonic/gin"
)

type SettingsInput struct {
	DataSource string `json:"data_source" form:"data_source" binding:"required"`
}

// Settings serves the global settings page and its API.
type Settings struct {
	Store *settings.Store
}

func NewSettings(store *settings.Store) *Settings {
	return &Settings{Store: store}
}

func (h *Settings) Get(c *gin.Context) {
	cfg, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Settings) Update(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Save(settings.Settings{DataSource: input.DataSource}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}

// Page renders the settings page.
func (h *Settings) Page(c *gin.Context) {
	cfg, err := h.Store.Load()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "settings.html", gin.H{
		"DataSource": cfg.DataSource,
		"Error":      c.Query("error"),
		"Message":    c.Query("message"),
	})
}

// UpdateForm handles the settings page form and redirects back.
func (h *Settings) UpdateForm(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithError(c, "/settings", "Please select a data source")
		return
	}
	if err := h.Store.Save(settings.Settings{DataSource: input.DataSource}); err != nil {
		redirectWithError(c, "/settings", err.Error())
		return
	}
	redirectWithMessage(c, "/settings", "Data source saved")
}
