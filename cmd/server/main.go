package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/config"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/database"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/repository"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	tradeRepo := repository.NewTradeRepository(db)
	securityRepo := repository.NewSecurityRepository(db)
	settingsRepo, err := repository.NewSettingsRepository(db, cfg.Sync.TokenKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings repository: %v", err)
	}

	// Create services
	systemService := service.NewSystemService(db)
	ingestService := service.NewIngestService(tradeRepo, securityRepo)
	transactionService := service.NewTransactionService(tradeRepo)
	aggregationService := service.NewAggregationService(transactionService)
	masterService := service.NewMasterService(securityRepo)
	syncService := service.NewSyncService(settingsRepo, tradeRepo, securityRepo, upstream.NewAPIClient())

	// Start background jobs
	scheduler := service.NewScheduler(ingestService, syncService, cfg)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, ingestService, transactionService, aggregationService, masterService, syncService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
