package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/password-reset/request", hb.RequestPasswordResetHandler)
		api.POST("/password-reset/confirm", hb.ConfirmPasswordResetHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterAccountRoutes registers the caller's own account endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/me")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.GetMeHandler)
		api.PATCH("", hb.UpdateMeHandler)
		api.DELETE("", hb.DeleteMeHandler)
	}
}

// RegisterDirectoryRoutes registers the customer-facing browse endpoints.
// Listing and detail resolve the client position for distance ranking.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/barbers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", middleware.ClientCoordinatesMiddleware(), hb.ListBarbersHandler)
		api.GET("/:id", middleware.ClientCoordinatesMiddleware(), hb.GetBarberHandler)
		api.GET("/:id/services", hb.ListBarberServicesHandler)
		api.GET("/:id/slots", hb.GetBarberSlotsHandler)
	}
}

// RegisterShopRoutes registers the barber-side profile, gallery, catalogue,
// and revenue endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shop")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleBarber))

		api.GET("/profile", hb.GetOwnProfileHandler)
		api.PUT("/profile", hb.SetupProfileHandler)
		api.POST("/gallery", hb.UploadGalleryImageHandler)
		api.DELETE("/gallery", hb.DeleteGalleryImageHandler)

		api.GET("/services", hb.ListOwnServicesHandler)
		api.POST("/services", hb.CreateServiceHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)

		api.GET("/bookings", hb.ListIncomingBookingsHandler)
		api.PUT("/bookings/:id/accept", hb.AcceptBookingHandler)
		api.PUT("/bookings/:id/decline", hb.DeclineBookingHandler)
		api.PUT("/bookings/:id/complete", hb.CompleteBookingHandler)

		api.GET("/revenue", hb.RevenueHandler)
	}
}

// RegisterBookingRoutes registers the customer checkout and booking
// management endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/checkout", middleware.RequireRole(models.RoleCustomer), hb.CheckoutHandler)
		api.GET("", middleware.RequireRole(models.RoleCustomer), hb.ListMyBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PUT("/:id/cancel", middleware.RequireRole(models.RoleCustomer), hb.CancelBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterFavoriteRoutes registers the saved-barbers endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleCustomer))
		api.GET("", hb.ListFavoritesHandler)
		api.POST("/:barberId", hb.AddFavoriteHandler)
		api.DELETE("/:barberId", hb.RemoveFavoriteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BarberBook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Client-Latitude", "X-Client-Longitude"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
	RegisterHealthRoute(r)
}
