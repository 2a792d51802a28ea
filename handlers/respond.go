package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "agendly/database/repository/appointment"
	professionalRepo "agendly/database/repository/professional"
	servicecatRepo "agendly/database/repository/servicecat"
	"agendly/services/booking"
	"agendly/services/scheduling"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// respondError translates service-layer errors into HTTP responses.
// Recoverable scheduling outcomes keep their code in the payload so clients
// can branch on them; store failures become 503s.
func respondError(c *gin.Context, err error) {
	var schedErr *scheduling.Error
	if errors.As(err, &schedErr) {
		status := http.StatusBadRequest
		switch schedErr.Code {
		case scheduling.CodeSlotConflict:
			status = http.StatusConflict
		case scheduling.CodeClosedDay, scheduling.CodeEditWindowExpired:
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": schedErr.Message, "code": string(schedErr.Code)})
		return
	}

	switch {
	case errors.Is(err, appointmentRepo.ErrNotFound),
		errors.Is(err, professionalRepo.ErrNotFound),
		errors.Is(err, servicecatRepo.ErrNotFound),
		errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case scheduling.IsStoreError(err):
		utils.JSONError(c, http.StatusServiceUnavailable, "service temporarily unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
