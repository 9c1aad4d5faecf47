package handlers

import (
	"errors"
	"net/http"

	"drivio/models"
	"drivio/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation, listing and status updates. The
// booking service never fails for remote unavailability, so these endpoints
// only 4xx on malformed input.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var intent models.BookingIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid booking intent", "message": err.Error()})
		return
	}

	record, err := h.Service.CreateBooking(c.Request.Context(), intent)
	if err != nil {
		// Only reachable for identity errors; remote failures resolve to a
		// local fallback record.
		h.Logger.Warn("CreateBooking: rejected intent", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid booking intent", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": record})
}

// ListBookings handles GET /api/bookings?user_id=...
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing user_id"})
		return
	}

	records := h.Service.FetchUserBookings(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records, "count": len(records)})
}

// CancelBooking handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.updateStatus(c, models.BookingCancelled)
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status with a JSON body
// carrying the target status. Statuses other than "cancelled" are local-only
// transitions.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var body struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body", "message": err.Error()})
		return
	}
	h.updateStatus(c, body.Status)
}

func (h *BookingHandler) updateStatus(c *gin.Context, status models.BookingStatus) {
	id := c.Param("id")
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing user_id"})
		return
	}

	record, err := h.Service.UpdateBookingStatus(c.Request.Context(), userID, id, status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "booking not found"})
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unsupported status", "message": err.Error()})
		default:
			h.Logger.Error("UpdateBookingStatus: unexpected failure", zap.String("booking_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "status update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": record})
}
