package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coindash/config"
	"coindash/core/auth"
	"coindash/core/feed"
	"coindash/db"
	"coindash/logger"
	"coindash/repository"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})
	defer logger.Sync()

	if err := auth.SetSecret(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to configure auth: %v", err)
	}

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Connect to the database
	if err := db.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.DB.Close()

	if err := db.ConnectGormDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database with GORM: %v", err)
	}
	defer db.CloseGormDB()

	// Initialize database schema
	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	userRepo := repository.NewMySQLUserRepository(db.DB)
	prefRepo := repository.NewMySQLPreferenceRepository(db.DB)
	voteRepo := repository.NewGormVoteRepository(db.GormDB)

	marketClient := feed.NewMarketClient(cfg.CoinGeckoAPIURL, cfg.FeedTimeout)
	newsClient := feed.NewNewsClient(cfg.CryptoPanicAPIURL, cfg.CryptoPanicKey, cfg.FeedTimeout)
	insightClient := feed.NewInsightClient(cfg.OpenRouterAPIURL, cfg.OpenRouterAPIKey, cfg.FeedTimeout)
	memeClient := feed.NewMemeClient(cfg.MemeAPIURL, cfg.FeedTimeout)

	apiHandler := NewAPIHandler(userRepo, prefRepo, voteRepo,
		marketClient, newsClient, insightClient, memeClient, cfg)

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(requestIDMiddleware)

	// Auth endpoints
	router.HandleFunc("/register", apiHandler.RegisterHandler).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/login", apiHandler.LoginHandler).Methods(http.MethodPost, http.MethodOptions)

	// Preference endpoints
	router.HandleFunc("/preferences", apiHandler.AuthMiddleware(apiHandler.SubmitPreferencesHandler)).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/preferences/{userId}", apiHandler.AuthMiddleware(apiHandler.GetPreferencesHandler)).Methods(http.MethodGet, http.MethodOptions)

	// Aggregated data feeds
	router.HandleFunc("/crypto", apiHandler.CryptoHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/news", apiHandler.NewsHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/insight", apiHandler.InsightHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/meme", apiHandler.MemeHandler).Methods(http.MethodGet, http.MethodOptions)

	// Votes
	router.HandleFunc("/vote", apiHandler.AuthMiddleware(apiHandler.VoteHandler)).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/votes", apiHandler.AuthMiddleware(apiHandler.ListVotesHandler)).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/healthz", apiHandler.HealthHandler).Methods(http.MethodGet)

	server.Handler = router

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s...", cfg.ServerAddr)
		log.Println("Auth via POST /register and /login")
		log.Println("Dashboard feeds via GET /crypto, /news, /insight and /meme")
		log.Println("Preferences via /preferences endpoints, votes via POST /vote")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
