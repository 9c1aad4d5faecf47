package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drivio/config"
	"drivio/cron"
	"drivio/database"
	"drivio/database/repository/bookingcache"
	"drivio/handlers"
	"drivio/middleware"
	"drivio/routes"
	"drivio/services/booking"
	"drivio/services/catalog"
	"drivio/services/fleet"
	"drivio/services/tasks"
	"drivio/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitBookingSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream fleet API client.
	fleetClient := fleet.NewRESTClient(
		config.AppConfig.FleetAPIBaseURL,
		time.Duration(config.AppConfig.FleetAPITimeout)*time.Second,
		logger,
	)

	// Booking caches.
	sessionCache := bookingcache.NewRedisSessionCache(
		utils.GetBookingSessionCacheClient(),
		time.Duration(config.AppConfig.BookingSessionTTL)*time.Minute,
	)
	durableCache := bookingcache.NewMongoDurableCache(database.MongoClient.Database(database.DBName))

	// Reconciliation queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	enqueuer := tasks.NewEnqueuer(asynqClient, time.Minute)

	// Services.
	discoveryService := &catalog.DefaultDiscoveryService{
		Fleet:  fleetClient,
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Fleet:    fleetClient,
		Session:  sessionCache,
		Durable:  durableCache,
		Enqueuer: enqueuer,
		Logger:   logger,
	}

	carHandler := handlers.NewCarHandler(discoveryService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		SearchCars:       carHandler.SearchCars,
		GetCarByID:       carHandler.GetCarByID,
		FeatureChecklist: carHandler.FeatureChecklist,

		CreateBooking:       bookingHandler.CreateBooking,
		ListBookings:        bookingHandler.ListBookings,
		CancelBooking:       bookingHandler.CancelBooking,
		UpdateBookingStatus: bookingHandler.UpdateBookingStatus,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reconciliation worker and health monitor.
	cron.InitReconcileWorker(fleetClient, durableCache)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetBookingSessionCacheClient()},
		database.MongoClient,
	)

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
