package handlers

import (
	"net/http"

	"barberbook/services/favorite"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FavoriteHandler exposes the saved-barbers endpoints.
type FavoriteHandler struct {
	Svc favorite.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler instance.
func NewFavoriteHandler(svc favorite.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc}
}

// AddFavoriteHandler saves a barber to the caller's favorites.
func (h *FavoriteHandler) AddFavoriteHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Svc.AddFavorite(currentUserID(c), c.Param("barberId")); err != nil {
		logger.Warn("Failed to add favorite", zap.String("barberId", c.Param("barberId")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "favorite saved"})
}

// RemoveFavoriteHandler drops a saved barber.
func (h *FavoriteHandler) RemoveFavoriteHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Svc.RemoveFavorite(currentUserID(c), c.Param("barberId")); err != nil {
		logger.Warn("Failed to remove favorite", zap.String("barberId", c.Param("barberId")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

// ListFavoritesHandler lists the caller's saved barbers.
func (h *FavoriteHandler) ListFavoritesHandler(c *gin.Context) {
	logger := getLogger(c)

	barbers, err := h.Svc.ListFavorites(currentUserID(c))
	if err != nil {
		logger.Error("Failed to list favorites", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}
