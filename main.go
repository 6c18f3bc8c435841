package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/msomdec/wysider/internal/agent"
	"github.com/msomdec/wysider/internal/domain"
	"github.com/msomdec/wysider/internal/handler"
	"github.com/msomdec/wysider/internal/repository/postgres"
	"github.com/msomdec/wysider/internal/repository/sqlite"
	"github.com/msomdec/wysider/internal/service"
)

func main() {
	// Local development config; missing .env is fine in production.
	_ = godotenv.Load()

	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "8080")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(jwtSecret) < 32 {
		slog.Error("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	// Default to secure cookies; disable only for local development.
	cookieSecure := os.Getenv("COOKIE_SECURE") != "false"

	bcryptCost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid BCRYPT_COST", "error", err)
			os.Exit(1)
		}
		if parsed < 4 || parsed > 14 {
			slog.Error("BCRYPT_COST must be between 4 and 14", "value", parsed)
			os.Exit(1)
		}
		bcryptCost = parsed
	}

	store, err := openStore()
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		slog.Warn("GEMINI_API_KEY not set; generation requests will fail until configured")
	}
	gemini, err := agent.NewGemini(context.Background(), apiKey)
	if err != nil {
		slog.Error("failed to create generation client", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(store.Users(), jwtSecret, bcryptCost)
	accountService := service.NewAccountService(store.Users())
	strategyService := service.NewStrategyService(store.Concepts(), agent.NewStrategist(gemini))
	chatService := service.NewChatService(store.Transcripts(), agent.NewSupport(gemini))
	adminService := service.NewAdminService(store.Users())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, accountService, strategyService, chatService, adminService, cookieSecure)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore selects the storage backend: remote Postgres when DATABASE_URL
// is set, the local SQLite file otherwise.
func openStore() (domain.Store, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		slog.Info("using postgres store")
		return postgres.Open(databaseURL)
	}

	dbPath := envOrDefault("DATABASE_PATH", "wysider.db")
	slog.Info("using sqlite store", "path", dbPath)
	return sqlite.New(dbPath)
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
