package handlers

import (
	userRepoPkg "barberbook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler             gin.HandlerFunc
	LoginHandler                gin.HandlerFunc
	LogoutHandler               gin.HandlerFunc
	RequestPasswordResetHandler gin.HandlerFunc
	ConfirmPasswordResetHandler gin.HandlerFunc

	// Account endpoints
	GetMeHandler    gin.HandlerFunc
	UpdateMeHandler gin.HandlerFunc
	DeleteMeHandler gin.HandlerFunc

	// Directory endpoints
	ListBarbersHandler        gin.HandlerFunc
	GetBarberHandler          gin.HandlerFunc
	ListBarberServicesHandler gin.HandlerFunc
	GetBarberSlotsHandler     gin.HandlerFunc

	// Shop profile endpoints
	SetupProfileHandler       gin.HandlerFunc
	GetOwnProfileHandler      gin.HandlerFunc
	UploadGalleryImageHandler gin.HandlerFunc
	DeleteGalleryImageHandler gin.HandlerFunc

	// Catalogue management endpoints
	ListOwnServicesHandler gin.HandlerFunc
	CreateServiceHandler   gin.HandlerFunc
	UpdateServiceHandler   gin.HandlerFunc
	DeleteServiceHandler   gin.HandlerFunc

	// Booking endpoints
	CheckoutHandler             gin.HandlerFunc
	ListMyBookingsHandler       gin.HandlerFunc
	ListIncomingBookingsHandler gin.HandlerFunc
	GetBookingHandler           gin.HandlerFunc
	AcceptBookingHandler        gin.HandlerFunc
	DeclineBookingHandler       gin.HandlerFunc
	CompleteBookingHandler      gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
	DeleteBookingHandler        gin.HandlerFunc
	RevenueHandler              gin.HandlerFunc

	// Favorite endpoints
	AddFavoriteHandler    gin.HandlerFunc
	RemoveFavoriteHandler gin.HandlerFunc
	ListFavoritesHandler  gin.HandlerFunc
}
