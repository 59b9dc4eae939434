package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feastly/config"
	"feastly/cron"
	"feastly/database"
	draftRepoPkg "feastly/database/repository/draft"
	invoiceRepoPkg "feastly/database/repository/invoice"
	"feastly/handlers"
	"feastly/middleware"
	"feastly/routes"
	"feastly/services/booking"
	"feastly/services/geo"
	"feastly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitDraftCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	draftRepo := draftRepoPkg.NewRedisDraftRepo()

	// async snapshot queue.
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queue.Close()
	cron.InitSnapshotWorker(invoiceRepo)

	// services.
	bookingService := &booking.DefaultBookingService{
		InvoiceRepo: invoiceRepo,
		DraftRepo:   draftRepo,
		Geocoder:    geo.NewGoogleGeocoder(utils.GetCacheClient()),
		Queue:       queue,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		QuoteHandler:       bookingHandler.Quote,
		SaveDraftHandler:   bookingHandler.SaveDraft,
		GetDraftHandler:    bookingHandler.GetDraft,
		DeleteDraftHandler: bookingHandler.DeleteDraft,
		SubmitHandler:      bookingHandler.Submit,
		GetInvoiceHandler:  bookingHandler.GetInvoice,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetDraftCacheClient()},
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
