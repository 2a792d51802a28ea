package routes

import (
	"net/http"
	"time"

	"agendly/handlers"
	"agendly/middleware"
	"agendly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the route handlers for registration.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Appointment  *handlers.AppointmentHandler
	Professional *handlers.ProfessionalHandler
	Services     *handlers.ServiceCatalogueHandler
	Settings     *handlers.SettingsHandler
}

// RegisterCORS applies the CORS policy for browser clients.
func RegisterCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterBookingRoutes registers the public booking-flow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", hb.Booking.StartSession)
		booking.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		booking.POST("/confirm", hb.Booking.ConfirmSession)
		booking.DELETE("/session/:sessionID", hb.Booking.AbandonSession)
		booking.GET("/availability", hb.Booking.GetAvailability)
		booking.PUT("/appointments/:id", hb.Booking.RescheduleAppointment)
	}
}

// RegisterCatalogueRoutes registers the public catalogue reads the booking
// flow depends on.
func RegisterCatalogueRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/api/services", hb.Services.List)
	r.GET("/api/professionals", hb.Professional.List)
}

// RegisterAdminRoutes registers the administrative endpoints behind the
// identity gate.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("/appointments", hb.Appointment.List)
		admin.GET("/appointments/:id", hb.Appointment.Get)
		admin.PATCH("/appointments/:id/status", hb.Appointment.UpdateStatus)
		admin.PUT("/appointments/:id", hb.Appointment.Update)
		admin.DELETE("/appointments/:id", hb.Appointment.Delete)

		admin.POST("/professionals", hb.Professional.Create)
		admin.PUT("/professionals/:id", hb.Professional.Update)
		admin.DELETE("/professionals/:id", hb.Professional.Delete)

		admin.POST("/services", hb.Services.Create)
		admin.PUT("/services/:id", hb.Services.Update)
		admin.DELETE("/services/:id", hb.Services.Delete)

		admin.GET("/settings", hb.Settings.Get)
		admin.PUT("/settings", hb.Settings.Update)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}
