package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all scheduling endpoints onto the router.
func RegisterRoutes(r *gin.Engine, sh *handlers.SchedulingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/scheduling")
	api.Use(middleware.AuthMiddleware())
	{
		// Slot discovery and booking.
		api.GET("/barbers/:id/slots", sh.ListSlots)
		api.POST("/appointments", sh.BookAppointment)
		api.GET("/appointments", sh.MyAppointments)

		// Lifecycle transitions.
		api.PUT("/appointments/:id/confirm", sh.ConfirmAppointment)
		api.PUT("/appointments/:id/complete", sh.CompleteAppointment)
		api.PUT("/appointments/:id/cancel", sh.CancelAppointment)

		// Barber-facing views and schedule management.
		api.GET("/barbers/:id/appointments", sh.BarberDay)
		api.GET("/barbers/:id/schedule", sh.GetSchedule)
		api.PUT("/barbers/:id/schedule", sh.SetSchedule)
	}
}
