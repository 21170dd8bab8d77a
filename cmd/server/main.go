package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kelaskata/internal/broker"
	"kelaskata/internal/config"
	"kelaskata/internal/database"
	"kelaskata/internal/handlers"
	"kelaskata/internal/repository"
	"kelaskata/internal/security"
	"kelaskata/internal/service"
	"kelaskata/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories and services
	sessionRepo := repository.NewSessionRepository(db)
	hub := broker.NewHub()
	issuer := token.NewIssuer(cfg.HostTokenSecret)

	recapService, err := service.NewRecapService(cfg.AWSRegion, cfg.RecapFromEmail, cfg.RecapFromName, cfg.RecapToEmail)
	if err != nil {
		log.Fatalf("Failed to initialize recap email service: %v", err)
	}

	sessionService := service.NewSessionService(sessionRepo, hub, issuer, recapService)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler()
	sessionHandler := handlers.NewSessionHandler(sessionService)
	eventsHandler := handlers.NewEventsHandler(sessionService, hub)

	// Setup routes. Join and create are throttled so five-character
	// codes cannot be guessed by brute force.
	limiter := security.NewRateLimiter(30, time.Minute)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/catalogs", catalogHandler.List)
	mux.HandleFunc("POST /api/sessions", handlers.RateLimit(limiter, sessionHandler.Create))
	mux.HandleFunc("POST /api/sessions/join", handlers.RateLimit(limiter, sessionHandler.Join))
	mux.HandleFunc("GET /api/sessions/{code}", sessionHandler.Get)
	mux.HandleFunc("POST /api/sessions/{code}/advance", sessionHandler.Advance)
	mux.HandleFunc("POST /api/sessions/{code}/retreat", sessionHandler.Retreat)
	mux.HandleFunc("POST /api/sessions/{code}/end", sessionHandler.End)
	mux.HandleFunc("POST /api/sessions/{code}/assessments", sessionHandler.SubmitAssessment)
	mux.HandleFunc("GET /api/sessions/{code}/events", eventsHandler.Stream)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server. WriteTimeout stays 0 because the event stream holds
	// connections open indefinitely.
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start background staleness sweep
	go sweepStaleSessions(sessionService, cfg.SweepInterval, cfg.SessionIdleTimeout)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// sweepStaleSessions periodically ends sessions with no writer activity
func sweepStaleSessions(sessionService *service.SessionService, interval, idleTimeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		swept, err := sessionService.SweepStaleSessions(idleTimeout)
		if err != nil {
			log.Printf("Error sweeping stale sessions: %v", err)
			continue
		}
		if swept > 0 {
			log.Printf("Ended %d stale sessions", swept)
		}
	}
}
