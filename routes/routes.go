package routes

import (
	"net/http"
	"time"

	"bookify/config"
	"bookify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking intake flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api")
	{
		api.GET("/services", bh.GetServices)
		api.GET("/slots", bh.GetSlots)
		api.GET("/bookings", bh.ListBookings)
		api.POST("/bookings", bh.CreateBooking)
		api.GET("/admin/bookings", bh.ListAllBookings)
		api.GET("/test-email", bh.TestEmail)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	origin := config.AppConfig.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bh)
	RegisterHealthRoute(r)
}
