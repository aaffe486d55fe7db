package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/access"
	"github.com/funfriday/backend/internal/aggregate"
	"github.com/funfriday/backend/internal/auth"
	"github.com/funfriday/backend/internal/config"
	"github.com/funfriday/backend/internal/handlers"
	"github.com/funfriday/backend/internal/middleware"
	"github.com/funfriday/backend/internal/service"
	"github.com/funfriday/backend/internal/storage/sqlite"
	"github.com/funfriday/backend/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	policy := access.CreatorOnly{}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	names := aggregate.NewNameCache(store)

	svcs := handlers.Services{
		Auth:       service.NewAuthService(authenticator, jwtManager, store),
		Cards:      service.NewCardService(store, policy),
		Catalog:    service.NewCatalogService(store, policy),
		Selections: service.NewSelectionService(store, policy),
		Summary:    service.NewSummaryService(store, policy, names),
		JWT:        jwtManager,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	handlers.RegisterRoutes(r, svcs)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
