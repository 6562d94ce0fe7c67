package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"barberbook/services/catalog"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the barber-side service catalogue endpoints.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// bindServiceForm reads the service payload from a multipart form. The
// payload travels in a "service" JSON field alongside an optional image.
func bindServiceForm(c *gin.Context) (catalog.ServiceRequest, string, bool) {
	var req catalog.ServiceRequest

	payload := c.PostForm("service")
	if payload == "" {
		// Plain JSON body without an image.
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return req, "", false
		}
		return req, "", true
	}

	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return req, "", false
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return req, "", true
	}
	tempFilePath, ok := saveUploadedImage(c, fileHeader)
	if !ok {
		return req, "", false
	}
	return req, tempFilePath, true
}

// ListOwnServicesHandler lists the caller's services including inactive ones.
func (h *CatalogHandler) ListOwnServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	services, err := h.Svc.ListForBarber(currentUserID(c))
	if err != nil {
		logger.Error("Failed to list own services", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateServiceHandler adds a catalogue entry.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	req, imagePath, ok := bindServiceForm(c)
	if !ok {
		return
	}
	if imagePath != "" {
		defer os.Remove(imagePath)
	}

	svc, err := h.Svc.CreateService(c, currentUserID(c), req, imagePath)
	if err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler patches a catalogue entry the caller owns.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	req, imagePath, ok := bindServiceForm(c)
	if !ok {
		return
	}
	if imagePath != "" {
		defer os.Remove(imagePath)
	}

	svc, err := h.Svc.UpdateService(c, currentUserID(c), c.Param("id"), req, imagePath)
	if err != nil {
		logger.Error("Failed to update service", zap.String("serviceId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler removes a catalogue entry the caller owns.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Svc.DeleteService(c, currentUserID(c), c.Param("id")); err != nil {
		logger.Error("Failed to delete service", zap.String("serviceId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
