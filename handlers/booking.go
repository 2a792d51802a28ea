package handlers

import (
	"net/http"

	"agendly/models"
	"agendly/services/appointment"
	"agendly/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the public booking flow.
type BookingHandler struct {
	Sessions       booking.BookingSessionService
	AppointmentSvc appointment.AppointmentService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(sessions booking.BookingSessionService, aptSvc appointment.AppointmentService) *BookingHandler {
	return &BookingHandler{Sessions: sessions, AppointmentSvc: aptSvc}
}

// StartSession creates a new booking session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	resp, err := h.Sessions.InitiateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSession advances the booking session by one step.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var upd models.BookingSessionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Sessions.UpdateSession(c.Request.Context(), sessionID, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmSession submits the completed session as an appointment.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	apt, err := h.Sessions.ConfirmSession(c.Request.Context(), input.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": apt})
}

// AbandonSession discards the session with no side effects.
func (h *BookingHandler) AbandonSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "abandoned"})
}

// GetAvailability returns slot statuses for a professional and date.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	professionalID := c.Query("professionalId")
	date := c.Query("date")

	slots, err := h.AppointmentSvc.GetAvailability(c.Request.Context(), professionalID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "professionalId": professionalID, "slots": slots})
}

// RescheduleAppointment applies a customer edit, subject to the same-day
// edit window.
func (h *BookingHandler) RescheduleAppointment(c *gin.Context) {
	var upd appointment.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	apt, err := h.AppointmentSvc.CustomerReschedule(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": apt})
}
