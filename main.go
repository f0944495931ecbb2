package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"budgetwise/config"
	httpLayer "budgetwise/http"
	"budgetwise/repository"
	"budgetwise/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	cfg := config.NewConfig()

	store := repository.NewFileStore(cfg.DataFile)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	budgetService, err := service.NewBudgetService(store, logger)
	if err != nil {
		logger.Fatalf("Failed to load budget state: %v", err)
	}
	advisorService := service.NewAdvisorService(cfg.OllamaURL, cache, logger)

	budgetHandler := httpLayer.NewBudgetHandler(budgetService)
	advisorHandler := httpLayer.NewAdvisorHandler(advisorService, budgetService)
	toolsHandler := httpLayer.NewToolsHandler()

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.BackupSchedule, func() {
		path, err := store.Backup(cfg.BackupDir)
		if err != nil {
			logger.Warnf("Scheduled backup failed: %v", err)
			return
		}
		logger.Infof("Wrote backup to %s", path)
	}); err != nil {
		logger.Fatalf("Invalid backup schedule %q: %v", cfg.BackupSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := httpLayer.NewRouter(budgetHandler, advisorHandler, toolsHandler, rateLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // advisory calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("API listening on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Error starting server: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
