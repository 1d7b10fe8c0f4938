// File: bookify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookify/config"
	"bookify/handlers"
	"bookify/middleware"
	"bookify/routes"
	"bookify/services/booking"
	"bookify/services/notification"
	"bookify/services/sheet"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.SheetAPIURL == "" {
		logger.Sugar().Fatal("main: SHEET_API_URL is required")
	}
	if config.AppConfig.AdminEmail == "" {
		logger.Sugar().Fatal("main: ADMIN_EMAIL is required")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// External collaborators.
	sheetClient := sheet.NewHTTPClient(config.AppConfig.SheetAPIURL, logger)
	mailer := notification.NewSMTPMailer(config.AppConfig.SMTPHost, config.AppConfig.SMTPPort)

	// Services.
	notificationService, err := notification.NewDefaultNotificationService(
		mailer,
		config.AppConfig.EmailFrom,
		config.AppConfig.AdminEmail,
		logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	bookingService := &booking.DefaultBookingService{
		Sheet:    sheetClient,
		Notifier: notificationService,
		Logger:   logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, notificationService, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler)

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
