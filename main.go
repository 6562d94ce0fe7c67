package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	barberRepoPkg "barberbook/database/repository/barber"
	bookingRepoPkg "barberbook/database/repository/booking"
	catalogRepoPkg "barberbook/database/repository/catalog"
	favoriteRepoPkg "barberbook/database/repository/favorite"
	userRepoPkg "barberbook/database/repository/user"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	barberSvc "barberbook/services/barber"
	bookingSvc "barberbook/services/booking"
	"barberbook/services/catalog"
	"barberbook/services/directory"
	"barberbook/services/favorite"
	"barberbook/services/notification"
	"barberbook/services/tasks"
	"barberbook/services/user"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitResetCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	barberRepo := barberRepoPkg.NewMongoBarberRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	favoriteRepo := favoriteRepoPkg.NewMongoFavoriteRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	directoryService := &directory.DefaultDirectoryService{Repo: barberRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo, StorageSvc: storageService}
	barberService := &barberSvc.DefaultBarberService{Repo: barberRepo, StorageSvc: storageService}
	favoriteService := &favorite.DefaultFavoriteService{Repo: favoriteRepo, Barbers: barberRepo}
	bookingService := &bookingSvc.DefaultBookingService{
		Bookings:   bookingRepo,
		Barbers:    barberRepo,
		Catalog:    catalogRepo,
		Notifier:   notificationService,
		Reminders:  tasks.NewAsynqReminderScheduler(asynqClient),
		WindowDays: config.AppConfig.BookingWindowDays,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService, catalogService, bookingService)
	barberHandler := handlers.NewBarberHandler(barberService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler:             authHandler.RegisterHandler,
		LoginHandler:                authHandler.LoginHandler,
		LogoutHandler:               authHandler.LogoutHandler,
		RequestPasswordResetHandler: authHandler.RequestPasswordResetHandler,
		ConfirmPasswordResetHandler: authHandler.ConfirmPasswordResetHandler,

		GetMeHandler:    userHandler.GetMeHandler,
		UpdateMeHandler: userHandler.UpdateMeHandler,
		DeleteMeHandler: userHandler.DeleteMeHandler,

		ListBarbersHandler:        directoryHandler.ListBarbersHandler,
		GetBarberHandler:          directoryHandler.GetBarberHandler,
		ListBarberServicesHandler: directoryHandler.ListBarberServicesHandler,
		GetBarberSlotsHandler:     directoryHandler.GetBarberSlotsHandler,

		SetupProfileHandler:       barberHandler.SetupProfileHandler,
		GetOwnProfileHandler:      barberHandler.GetOwnProfileHandler,
		UploadGalleryImageHandler: barberHandler.UploadGalleryImageHandler,
		DeleteGalleryImageHandler: barberHandler.DeleteGalleryImageHandler,

		ListOwnServicesHandler: catalogHandler.ListOwnServicesHandler,
		CreateServiceHandler:   catalogHandler.CreateServiceHandler,
		UpdateServiceHandler:   catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler:   catalogHandler.DeleteServiceHandler,

		CheckoutHandler:             bookingHandler.CheckoutHandler,
		ListMyBookingsHandler:       bookingHandler.ListMyBookingsHandler,
		ListIncomingBookingsHandler: bookingHandler.ListIncomingBookingsHandler,
		GetBookingHandler:           bookingHandler.GetBookingHandler,
		AcceptBookingHandler:        bookingHandler.AcceptBookingHandler,
		DeclineBookingHandler:       bookingHandler.DeclineBookingHandler,
		CompleteBookingHandler:      bookingHandler.CompleteBookingHandler,
		CancelBookingHandler:        bookingHandler.CancelBookingHandler,
		DeleteBookingHandler:        bookingHandler.DeleteBookingHandler,
		RevenueHandler:              bookingHandler.RevenueHandler,

		AddFavoriteHandler:    favoriteHandler.AddFavoriteHandler,
		RemoveFavoriteHandler: favoriteHandler.RemoveFavoriteHandler,
		ListFavoritesHandler:  favoriteHandler.ListFavoritesHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
