package handlers

import (
	"net/http"

	"barberbook/middleware"
	"barberbook/services/booking"
	"barberbook/services/catalog"
	"barberbook/services/directory"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler exposes the customer-facing browse endpoints.
type DirectoryHandler struct {
	Directory directory.DirectoryService
	Catalog   catalog.CatalogService
	Booking   booking.BookingService
}

// NewDirectoryHandler creates a new DirectoryHandler instance.
func NewDirectoryHandler(
	directorySvc directory.DirectoryService,
	catalogSvc catalog.CatalogService,
	bookingSvc booking.BookingService,
) *DirectoryHandler {
	return &DirectoryHandler{
		Directory: directorySvc,
		Catalog:   catalogSvc,
		Booking:   bookingSvc,
	}
}

// ListBarbersHandler lists active barbers ranked by distance when the
// client position is known.
func (h *DirectoryHandler) ListBarbersHandler(c *gin.Context) {
	logger := getLogger(c)

	var filter directory.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	coords := middleware.CoordinatesFromContext(c)
	barbers, err := h.Directory.ListBarbers(coords, filter)
	if err != nil {
		logger.Error("Failed to list barbers", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"barbers":          barbers,
		"locationResolved": coords != nil,
	})
}

// GetBarberHandler returns one shop profile with its distance resolved.
func (h *DirectoryHandler) GetBarberHandler(c *gin.Context) {
	logger := getLogger(c)

	coords := middleware.CoordinatesFromContext(c)
	barber, err := h.Directory.GetBarber(c.Param("id"), coords)
	if err != nil {
		logger.Warn("Failed to fetch barber", zap.String("barberId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, barber)
}

// ListBarberServicesHandler lists a barber's active services, optionally
// filtered by search.
func (h *DirectoryHandler) ListBarberServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	services, err := h.Catalog.ListForCustomer(c.Param("id"), c.Query("search"))
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetBarberSlotsHandler returns the bookable dates and bucketed time slots
// for a barber.
func (h *DirectoryHandler) GetBarberSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	dates, buckets, err := h.Booking.AvailableSlots(c.Param("id"))
	if err != nil {
		logger.Warn("Failed to generate slots", zap.String("barberId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates, "slots": buckets})
}
