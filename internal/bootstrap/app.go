// Package bootstrap builds the application graph: storage, AI client,
// services, handlers and the router. The dev fallback mirrors production
// wiring with in-memory repositories when no database is reachable.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"docextract-backend/internal/ai"
	"docextract-backend/internal/ai/gemini"
	googleauth "docextract-backend/internal/auth"
	"docextract-backend/internal/documents"
	"docextract-backend/internal/extraction"
	"docextract-backend/internal/render"
	"docextract-backend/internal/sessions"
	"docextract-backend/internal/shared/config"
	"docextract-backend/internal/shared/server"
	"docextract-backend/internal/shared/storage/db"
	"docextract-backend/internal/shared/telemetry"
	"docextract-backend/internal/users"
	"docextract-backend/internal/web"
)

// App is the assembled application.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
	AI     ai.Client
}

// Close releases held resources.
func (a *App) Close() {
	if closer, ok := a.AI.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// Build assembles the App from configuration.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var (
		docRepo      documents.Repo
		userRepo     users.Repo
		sessionGuard sessions.Guard
		sessionStore sessions.Store
	)
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
		pgSessions := &sessions.PGRepo{DB: sqlDB}
		sessionGuard = pgSessions
		sessionStore = pgSessions
	} else {
		docRepo = documents.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		memSessions := sessions.NewMemoryRepo()
		sessionGuard = memSessions
		sessionStore = memSessions
	}

	aiClient := buildAI(ctx, cfg)

	extractionSvc := &extraction.Service{AI: aiClient, Repo: docRepo}
	googleSvc := googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		userRepo,
		sessionStore,
		cfg.SessionTTL,
	)

	router := server.NewRouter(cfg, server.Deps{
		Guard:      sessionGuard,
		GoogleAuth: googleSvc,
		Documents:  documents.NewHandler(docRepo),
		Extraction: extraction.NewHandler(extractionSvc),
		Render:     render.NewHandler(docRepo),
		Web:        web.NewHandler(),
	})

	return &App{Router: router, DB: sqlDB, AI: aiClient}, nil
}

// connect opens the database and runs migrations. Only dev-like
// environments fall back to in-memory repositories; everywhere else a
// missing or unreachable database is a startup error.
func connect(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"env": cfg.Env})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap.db_connect_failed", map[string]any{"env": cfg.Env, "error": err.Error()})
			return nil, nil
		}
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap.migrations_failed", map[string]any{"env": cfg.Env, "error": err.Error()})
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// buildAI installs the Gemini client when a key is present, the placeholder
// otherwise. A missing key is a request-time configuration error, never a
// startup failure.
func buildAI(ctx context.Context, cfg config.Config) ai.Client {
	if cfg.GeminiAPIKey == "" {
		telemetry.Warn("bootstrap.ai_not_configured", map[string]any{"model": cfg.GeminiModel})
		return ai.PlaceholderClient{}
	}
	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		telemetry.Error("bootstrap.ai_client_failed", map[string]any{"error": err.Error()})
		return ai.PlaceholderClient{}
	}
	return client
}
