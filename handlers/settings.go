package handlers

import (
	"net/http"

	settingsRepo "agendly/database/repository/settings"
	"agendly/models"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes business-settings management to administrators.
type SettingsHandler struct {
	Repo settingsRepo.SettingsRepository
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(repo settingsRepo.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Repo: repo}
}

// Get returns the current settings, seeding defaults on first access.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.Repo.Read(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// Update merges the provided fields into the settings document and returns
// the post-write state.
func (h *SettingsHandler) Update(c *gin.Context) {
	var upd models.BusinessSettingsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	settings, err := h.Repo.Write(c.Request.Context(), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
