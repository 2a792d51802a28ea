package handlers

import (
	"net/http"

	professionalRepo "agendly/database/repository/professional"
	"agendly/models"

	"github.com/gin-gonic/gin"
)

// ProfessionalHandler exposes professional management. Listing is public
// (the booking flow needs it); mutations sit behind the admin gate.
type ProfessionalHandler struct {
	Repo professionalRepo.ProfessionalRepository
}

// NewProfessionalHandler constructs a ProfessionalHandler.
func NewProfessionalHandler(repo professionalRepo.ProfessionalRepository) *ProfessionalHandler {
	return &ProfessionalHandler{Repo: repo}
}

// List returns all professionals ordered by name.
func (h *ProfessionalHandler) List(c *gin.Context) {
	professionals, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionals": professionals})
}

// Create registers a new professional.
func (h *ProfessionalHandler) Create(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Specialty string `json:"specialty"`
		Available *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	prof := &models.Professional{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Specialty: input.Specialty,
		Available: true,
	}
	if input.Available != nil {
		prof.Available = *input.Available
	}

	if _, err := h.Repo.Create(c.Request.Context(), prof); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"professional": prof})
}

// Update edits an existing professional.
func (h *ProfessionalHandler) Update(c *gin.Context) {
	prof, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Specialty string `json:"specialty"`
		Available *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if input.Name != "" {
		prof.Name = input.Name
	}
	if input.Email != "" {
		prof.Email = input.Email
	}
	if input.Phone != "" {
		prof.Phone = input.Phone
	}
	if input.Specialty != "" {
		prof.Specialty = input.Specialty
	}
	if input.Available != nil {
		prof.Available = *input.Available
	}

	if err := h.Repo.Update(c.Request.Context(), prof); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professional": prof})
}

// Delete removes a professional. Their historical appointments are kept.
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
