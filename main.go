package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tablebook/config"
	"tablebook/database"
	reservationRepo "tablebook/database/repository/reservation"
	"tablebook/handlers"
	"tablebook/metrics"
	"tablebook/middleware"
	"tablebook/models"
	"tablebook/routes"
	"tablebook/services/reservation"
	"tablebook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	metrics.Register()

	// Repositories.
	resRepo := reservationRepo.NewMongoReservationRepo()
	if err := resRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
	}

	// Services.
	resService := &reservation.DefaultService{
		Repo: resRepo,
		Hours: models.BusinessHours{
			OpenHour:        config.AppConfig.BusinessOpenHour,
			CloseHour:       config.AppConfig.BusinessCloseHour,
			IntervalMinutes: config.AppConfig.SlotIntervalMinutes,
		},
		Cache: utils.GetCacheClient(),
	}
	resHandler := handlers.NewReservationHandler(resService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	routes.RegisterRoutes(router, resHandler)

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
