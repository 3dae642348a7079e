package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"verbum-app/internal/auth"
	"verbum-app/internal/config"
	"verbum-app/internal/content"
	"verbum-app/internal/handlers"
	"verbum-app/internal/logger"
	"verbum-app/internal/repository/clickhouse"
	"verbum-app/internal/repository/postgres"
	"verbum-app/internal/service/analytics"
	"verbum-app/internal/service/chat"
	"verbum-app/internal/service/contact"
	"verbum-app/internal/service/llm"
	"verbum-app/internal/service/router"

	"github.com/joho/godotenv"
)

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, using environment variables")
	}

	appConfig, err := config.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load configuration")
	}

	// Relational store: users and contact messages
	pg, err := postgres.NewPostgresDB(appConfig.Postgres)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to connect to Postgres")
	}
	defer pg.Close()

	// Analytics event store
	events, err := clickhouse.NewEventDB(appConfig.ClickHouse)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to connect to ClickHouse")
	}
	defer events.Close()

	// Static content datasets
	saints, err := content.NewSaintsIndex(appConfig.Content.SaintsPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load saints dataset")
	}
	lectionary, err := content.NewLectionary(appConfig.Content.ReadingsPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load readings dataset")
	}

	provider, err := llm.NewProvider(&appConfig.LLM)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create LLM provider")
	}

	modelRouter := router.NewRouter(appConfig.Routes)
	analyticsService := analytics.NewAnalyticsService(events)
	chatService := chat.NewChatService(provider, modelRouter, appConfig.LLM.SystemPrompt)
	contactService := contact.NewContactService(pg, analyticsService)

	authService := auth.NewAuth(pg, appConfig.Auth)
	trackHandler := handlers.NewTrackHandlers(analyticsService)
	chatHandler := handlers.NewChatHandlers(chatService)
	contactHandler := handlers.NewContactHandlers(contactService)
	contentHandler := handlers.NewContentHandlers(saints, lectionary)
	statsHandler := handlers.NewStatsHandlers(analyticsService)

	mux := http.NewServeMux()

	corsHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.WriteHeader(http.StatusOK)
	}

	// Public routes
	mux.HandleFunc("POST /api/login", enableCORS(authService.LoginHandler))
	mux.HandleFunc("OPTIONS /api/login", corsHandler)
	mux.HandleFunc("POST /api/register", enableCORS(authService.RegisterHandler))
	mux.HandleFunc("OPTIONS /api/register", corsHandler)
	mux.HandleFunc("POST /api/track", enableCORS(trackHandler.TrackEvent))
	mux.HandleFunc("OPTIONS /api/track", corsHandler)
	mux.HandleFunc("POST /api/contact", enableCORS(contactHandler.SubmitContact))
	mux.HandleFunc("OPTIONS /api/contact", corsHandler)
	mux.HandleFunc("GET /api/saints/today", enableCORS(contentHandler.SaintsToday))
	mux.HandleFunc("GET /api/saints/{day}", enableCORS(contentHandler.SaintsByDay))
	mux.HandleFunc("GET /api/readings/{day}", enableCORS(contentHandler.ReadingsByDay))
	mux.HandleFunc("GET /api/health", enableCORS(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	mux.HandleFunc("OPTIONS /api/health", corsHandler)

	// Protected routes
	mux.HandleFunc("POST /api/chat", enableCORS(authService.Middleware(chatHandler.ChatHandler)))
	mux.HandleFunc("OPTIONS /api/chat", corsHandler)

	// Admin routes
	mux.HandleFunc("GET /api/admin/stats/events", enableCORS(authService.AdminOnly(statsHandler.EventCounts)))
	mux.HandleFunc("OPTIONS /api/admin/stats/events", corsHandler)
	mux.HandleFunc("GET /api/admin/stats/event-types", enableCORS(authService.AdminOnly(statsHandler.EventTypes)))
	mux.HandleFunc("OPTIONS /api/admin/stats/event-types", corsHandler)

	server := &http.Server{
		Addr:    ":" + appConfig.Server.Port,
		Handler: mux,
	}

	go func() {
		logger.Log.WithField("port", appConfig.Server.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Server failed to start")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}

	logger.Log.Info("Server stopped")
}
