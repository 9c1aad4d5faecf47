package routes

import (
	"time"

	"drivio/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries every endpoint handler the router needs.
type HandlerBundle struct {
	// Car discovery endpoints.
	SearchCars       gin.HandlerFunc
	GetCarByID       gin.HandlerFunc
	FeatureChecklist gin.HandlerFunc

	// Booking endpoints.
	CreateBooking       gin.HandlerFunc
	ListBookings        gin.HandlerFunc
	CancelBooking       gin.HandlerFunc
	UpdateBookingStatus gin.HandlerFunc
}

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}

// RegisterCarRoutes registers the car discovery endpoints.
func RegisterCarRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/cars")
	{
		api.GET("", hb.SearchCars)
		api.GET("/features", hb.FeatureChecklist)
		api.GET("/id/:id", hb.GetCarByID)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
		api.PUT("/:id/cancel", hb.CancelBooking)
		api.PATCH("/:id/status", hb.UpdateBookingStatus)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}
