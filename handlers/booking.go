package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bookify/models"
	"bookify/services/booking"
	"bookify/services/notification"
	"bookify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking intake flow and the record store
// passthroughs over HTTP.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Notifier   notification.NotificationService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, notifier notification.NotificationService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		BookingSvc: svc,
		Notifier:   notifier,
		Logger:     logger,
	}
}

// GetServices handles GET /api/services. The store's reply (status and
// body) passes through untouched.
func (h *BookingHandler) GetServices(c *gin.Context) {
	res := h.BookingSvc.GetServices(c.Request.Context())
	c.JSON(res.HTTPStatus, res.Body)
}

// GetSlots handles GET /api/slots.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing_params", nil)
		return
	}

	duration := 30
	if raw := c.Query("duration"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			duration = n
		}
	}

	res := h.BookingSvc.GetSlots(c.Request.Context(), serviceID, date, duration)
	c.JSON(res.HTTPStatus, res.Body)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("CreateBooking: invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "missing_fields", err.Error())
		return
	}

	record, emailStatus, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var flowErr *booking.FlowError
		if errors.As(err, &flowErr) {
			utils.JSONError(c, flowErr.Status, flowErr.Code, flowErr.Detail)
			return
		}
		h.Logger.Error("CreateBooking: unexpected failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{
		OK:          true,
		Booking:     *record,
		EmailStatus: string(emailStatus),
	})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	res := h.BookingSvc.ListBookings(c.Request.Context())
	c.JSON(res.HTTPStatus, res.Body)
}

// ListAllBookings handles GET /api/admin/bookings.
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	res := h.BookingSvc.ListAllBookings(c.Request.Context())
	c.JSON(res.HTTPStatus, res.Body)
}

// TestEmail handles GET /api/test-email, probing the mail channel.
func (h *BookingHandler) TestEmail(c *gin.Context) {
	if err := h.Notifier.SendTestEmail(c.Request.Context()); err != nil {
		h.Logger.Error("TestEmail: probe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Test email sent successfully"})
}
