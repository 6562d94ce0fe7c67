package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"barberbook/services/barber"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BarberHandler exposes the shop profile and gallery endpoints.
type BarberHandler struct {
	Svc barber.BarberService
}

// NewBarberHandler creates a new BarberHandler instance.
func NewBarberHandler(svc barber.BarberService) *BarberHandler {
	return &BarberHandler{Svc: svc}
}

// saveUploadedImage validates an uploaded image and writes it to a temp
// file. The caller removes the file when done.
func saveUploadedImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, bool) {
	if fileHeader.Size > barber.MaxGalleryImageSize {
		utils.JSONError(c, http.StatusBadRequest, "Image exceeds the 5MB size limit", "")
		return "", false
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.JSONError(c, http.StatusBadRequest, "Only image uploads are accepted", "")
		return "", false
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save uploaded file", err.Error())
		return "", false
	}
	return tempFilePath, true
}

// SetupProfileHandler creates or updates the caller's shop profile.
func (h *BarberHandler) SetupProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req barber.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	profile, err := h.Svc.SetupProfile(currentUserID(c), req)
	if err != nil {
		logger.Error("Failed to set up profile", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetOwnProfileHandler returns the caller's shop profile.
func (h *BarberHandler) GetOwnProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	profile, err := h.Svc.GetProfile(currentUserID(c))
	if err != nil {
		logger.Warn("Failed to fetch own profile", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadGalleryImageHandler adds a shop photo to the gallery.
func (h *BarberHandler) UploadGalleryImageHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Image file not provided", err.Error())
		return
	}

	tempFilePath, ok := saveUploadedImage(c, fileHeader)
	if !ok {
		return
	}
	defer os.Remove(tempFilePath)

	profile, err := h.Svc.UploadGalleryImage(c, currentUserID(c), tempFilePath)
	if err != nil {
		logger.Error("Failed to upload gallery image", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteGalleryImageHandler removes a shop photo.
func (h *BarberHandler) DeleteGalleryImageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ImageURL string `json:"imageUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	profile, err := h.Svc.DeleteGalleryImage(c, currentUserID(c), req.ImageURL)
	if err != nil {
		logger.Error("Failed to delete gallery image", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
