package handlers

import (
	"net/http"

	"agendly/models"
	"agendly/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes administrative appointment management.
type AppointmentHandler struct {
	Svc appointment.AppointmentService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// List returns appointments, optionally filtered by professional, date or
// status, newest first.
func (h *AppointmentHandler) List(c *gin.Context) {
	filter := models.AppointmentFilter{
		ProfessionalID: c.Query("professionalId"),
		Date:           c.Query("date"),
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseAppointmentStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter", "details": raw})
			return
		}
		filter.Status = status
	}

	appointments, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// Get returns a single appointment.
func (h *AppointmentHandler) Get(c *gin.Context) {
	apt, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": apt})
}

// UpdateStatus applies a lifecycle transition (approve / cancel).
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	apt, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), models.AppointmentStatus(input.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": apt})
}

// Update applies an administrative edit (no edit-window restriction).
func (h *AppointmentHandler) Update(c *gin.Context) {
	var upd appointment.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	apt, err := h.Svc.AdminUpdate(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": apt})
}

// Delete removes an appointment record.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
