package handlers

import (
	"context"
	"net/http"

	"barberbook/models"
	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes checkout and booking management endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CheckoutHandler turns a cart into pending bookings.
func (h *BookingHandler) CheckoutHandler(c *gin.Context) {
	logger := getLogger(c)

	var req booking.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	bookings, err := h.Svc.Checkout(c, currentUserID(c), req)
	if err != nil {
		logger.Warn("Checkout failed", zap.String("barberId", req.BarberID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bookings": bookings})
}

// ListMyBookingsHandler lists the caller's bookings as a customer.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	bookings, err := h.Svc.ListCustomerBookings(currentUserID(c), c.Query("filter"))
	if err != nil {
		logger.Error("Failed to list bookings", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListIncomingBookingsHandler lists bookings addressed to the caller's shop.
func (h *BookingHandler) ListIncomingBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	bookings, err := h.Svc.ListBarberBookings(currentUserID(c), c.Query("status"))
	if err != nil {
		logger.Error("Failed to list incoming bookings", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler returns one booking visible to the caller.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	b, err := h.Svc.GetBooking(currentUserID(c), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to fetch booking", zap.String("bookingId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AcceptBookingHandler confirms a pending booking.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	h.transition(c, h.Svc.AcceptBooking)
}

// DeclineBookingHandler cancels a pending booking on the barber's behalf.
func (h *BookingHandler) DeclineBookingHandler(c *gin.Context) {
	h.transition(c, h.Svc.DeclineBooking)
}

// CompleteBookingHandler marks a confirmed booking as done.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	h.transition(c, h.Svc.CompleteBooking)
}

// CancelBookingHandler lets a customer withdraw a pending booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	h.transition(c, h.Svc.CancelBooking)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, actorID, bookingID string) (*models.Booking, error)) {
	logger := getLogger(c)

	b, err := op(c, currentUserID(c), c.Param("id"))
	if err != nil {
		logger.Warn("Booking transition failed", zap.String("bookingId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBookingHandler removes a terminal booking from history.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Svc.DeleteBooking(currentUserID(c), c.Param("id")); err != nil {
		logger.Warn("Failed to delete booking", zap.String("bookingId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// RevenueHandler summarizes the caller's completed bookings.
func (h *BookingHandler) RevenueHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Svc.Revenue(currentUserID(c), c.Query("period"))
	if err != nil {
		logger.Error("Failed to compute revenue", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
