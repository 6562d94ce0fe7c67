package handlers

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/user"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account profile endpoints.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// GetMeHandler returns the caller's account record.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, err := h.Svc.GetUserByID(currentUserID(c))
	if err != nil {
		logger.Error("Failed to fetch account", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// UpdateMeHandler patches the caller's profile fields.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	req.ID = currentUserID(c)

	userRec, err := h.Svc.UpdateUser(req)
	if err != nil {
		logger.Error("Failed to update account", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// DeleteMeHandler removes the caller's account.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Svc.DeleteUser(currentUserID(c)); err != nil {
		logger.Error("Failed to delete account", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
