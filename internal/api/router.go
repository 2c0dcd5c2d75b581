package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/handlers"
	custommiddleware "github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/middleware"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/config"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	ingestService *service.IngestService,
	transactionService *service.TransactionService,
	aggregationService *service.AggregationService,
	masterService *service.MasterService,
	syncService *service.SyncService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		uploadHandler := handlers.NewUploadHandler(ingestService, cfg.Ingest.MaxUploadBytes)
		r.Post("/upload", uploadHandler.Upload)

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			aggregationHandler := handlers.NewAggregationHandler(aggregationService)
			r.Get("/", transactionHandler.Transactions)
			r.Get("/summary", aggregationHandler.Summary)
		})

		securityHandler := handlers.NewSecurityHandler(masterService)
		r.Get("/security", securityHandler.Securities)

		r.Route("/sync", func(r chi.Router) {
			syncHandler := handlers.NewSyncHandler(syncService)
			r.Get("/config", syncHandler.Config)
			r.Post("/config", syncHandler.Configure)
			r.Post("/run", syncHandler.Run)
		})
	})

	return r
}
