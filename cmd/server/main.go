package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightdesk-service/internal/infrastructure/config"
	"flightdesk-service/internal/infrastructure/oauth"
	"flightdesk-service/internal/infrastructure/persistence"
	"flightdesk-service/internal/interface/httpapi"
	mongoRepo "flightdesk-service/internal/interface/repository"
	sheetsMirror "flightdesk-service/internal/interface/sheets"
	"flightdesk-service/internal/usecase"
	"flightdesk-service/pkg/duffel"
	"flightdesk-service/pkg/logger"
	"flightdesk-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flightdesk Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Metrics
	m := metrics.NewMetrics("flightdesk")

	// Duffel client and offer searcher
	duffelClient := duffel.NewClient(cfg.DuffelBaseURL, cfg.DuffelAPIKey, log)
	offerSearcher := mongoRepo.NewDuffelOfferRepository(duffelClient, m)

	// Lead repository
	leadRepo := mongoRepo.NewMongoLeadRepository(db)

	// Google Sheets mirror
	sheetsAuth := oauth.NewSheetsAuth(cfg.GoogleServiceAccountEmail, cfg.GooglePrivateKey, log)
	sheetsService, err := sheetsMirror.NewSheetsService(ctx, sheetsAuth.GetTokenSource(ctx), cfg.GoogleSheetsID, log)
	if err != nil {
		log.Fatal("Failed to create Sheets service", "error", err)
	}

	// Background mirror queue
	mirrorQueue := usecase.NewMirrorQueue(sheetsService, 64, log, m)
	go mirrorQueue.Start(ctx)

	// Usecases
	flightSearch := usecase.NewFlightSearch(offerSearcher, cfg.SearchSupplierTimeout, log, m)
	trendingRoutes := usecase.NewTrendingRoutes(offerSearcher, cfg.TrendingTimeout, log, m)
	leadService := usecase.NewLeadService(leadRepo, mirrorQueue, log, m)

	// HTTP surface
	responder := httpapi.NewResponder(log, !cfg.IsProduction())
	limiter := httpapi.NewRateLimiter(httpapi.RateLimitConfig{
		Requests: cfg.RateLimitRequests,
		Window:   cfg.RateLimitWindow,
	})
	flightHandler := httpapi.NewFlightHandler(flightSearch, trendingRoutes, responder)
	leadHandler := httpapi.NewLeadHandler(leadService, responder)

	router := httpapi.NewRouter(log, responder, limiter, flightHandler, leadHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the mirror queue

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flightdesk Service stopped")
}
