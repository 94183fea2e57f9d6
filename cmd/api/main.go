package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	analyzerService := service.NewAnalyzerService()
	analyzerHandler := handler.NewAnalyzerHandler(analyzerService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/analyze", analyzerHandler.HandleAnalyze)

	// History and auth routes need the database; without one the service
	// still generates and analyzes, it just forgets.
	var historyService *service.HistoryService
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — auth and history routes disabled", "error", err)
	} else {
		historyService = service.NewHistoryService(repository.NewHistoryRepository(db), cfg.HistoryLimit)
		historyHandler := handler.NewHistoryHandler(historyService)

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/history", historyHandler.HandleList)
			r.Delete("/api/v1/history", historyHandler.HandleClear)
		})
	}

	// The timing decorator is composed here, at the call site, rather than
	// baked into the generator.
	genService := service.NewGeneratorService(
		service.WithTiming(slog.Default(), crypto.Generate),
		historyService,
	)
	genHandler := handler.NewGeneratorHandler(genService)

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
