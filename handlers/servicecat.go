package handlers

import (
	"net/http"

	servicecatRepo "agendly/database/repository/servicecat"
	"agendly/models"

	"github.com/gin-gonic/gin"
)

// ServiceCatalogueHandler exposes the service catalogue. Listing is public;
// mutations sit behind the admin gate.
type ServiceCatalogueHandler struct {
	Repo servicecatRepo.ServiceRepository
}

// NewServiceCatalogueHandler constructs a ServiceCatalogueHandler.
func NewServiceCatalogueHandler(repo servicecatRepo.ServiceRepository) *ServiceCatalogueHandler {
	return &ServiceCatalogueHandler{Repo: repo}
}

// List returns the full catalogue ordered by name.
func (h *ServiceCatalogueHandler) List(c *gin.Context) {
	services, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// Create adds a catalogue entry.
func (h *ServiceCatalogueHandler) Create(c *gin.Context) {
	var input struct {
		Name            string  `json:"name" binding:"required"`
		Price           float64 `json:"price"`
		DurationMinutes int     `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc := &models.Service{
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
	}
	if _, err := h.Repo.Create(c.Request.Context(), svc); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// Update edits a catalogue entry.
func (h *ServiceCatalogueHandler) Update(c *gin.Context) {
	svc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input struct {
		Name            string   `json:"name"`
		Price           *float64 `json:"price"`
		DurationMinutes *int     `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if input.Name != "" {
		svc.Name = input.Name
	}
	if input.Price != nil {
		svc.Price = *input.Price
	}
	if input.DurationMinutes != nil {
		svc.DurationMinutes = *input.DurationMinutes
	}

	if err := h.Repo.Update(c.Request.Context(), svc); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// Delete removes a catalogue entry.
func (h *ServiceCatalogueHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
