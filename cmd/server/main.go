package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/battlecore/internal/config"
	"github.com/JustinWhittecar/battlecore/internal/db"
	"github.com/JustinWhittecar/battlecore/internal/handlers"
)

// requests per client IP per minute
const rateLimit = 120

func openArchive(ctx context.Context, logger zerolog.Logger) (db.Archive, error) {
	cfg, err := config.ArchiveConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "postgres" {
		return db.ConnectPostgres(ctx, cfg.PostgresURL, logger)
	}
	sqlDB, err := db.ConnectSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return db.NewSQLiteArchive(sqlDB, logger), nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := config.Load("."); err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("loading config")
	}
	logger := config.NewLogger(os.Stderr)

	archive, err := openArchive(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open archive")
	}
	defer archive.Close()

	resolutions := &handlers.ResolutionHandler{Archive: archive, Logger: logger}
	limiter := handlers.NewRateLimiter(rateLimit)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Archived resolutions
	mux.HandleFunc("GET /api/resolutions", resolutions.List)
	mux.HandleFunc("GET /api/resolutions/{id}", resolutions.Get)
	mux.HandleFunc("GET /api/resolutions/{id}/reports", resolutions.Reports)

	handler := corsMiddleware(limiter.Wrap(mux))

	addr := config.GetString("server.addr")
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("battlecore server listening")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := origin == "http://localhost:5173" ||
			origin == "http://localhost:8080"
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
