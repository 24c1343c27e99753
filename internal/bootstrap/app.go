package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobpost-backend/internal/config"
	"jobpost-backend/internal/extraction"
	"jobpost-backend/internal/llm"
	openai "jobpost-backend/internal/llm/openai"
	"jobpost-backend/internal/postings"
	"jobpost-backend/internal/services/health"
	"jobpost-backend/internal/shared/cache"
	memorycache "jobpost-backend/internal/shared/cache/memory"
	rediscache "jobpost-backend/internal/shared/cache/redis"
	"jobpost-backend/internal/shared/server"
	"jobpost-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Cache             cache.Cache
	LLM               llm.Client
	PostingsRepo      postings.Repo
	ExtractionService *extraction.Service
	PostingsService   *postings.Service
	PostingsHandler   *postings.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildCache(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Cache:  store,
		LLM:    buildLLM(cfg),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		PostingsHandler: app.PostingsHandler,
		Health:          health.NewService(),
	})

	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildCache(cfg config.Config) (cache.Cache, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return memorycache.New(cache.DefaultOptions()), nil
	}
	store, err := rediscache.New(cfg.RedisURL, cache.DefaultOptions())
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: redis connect failed; using in-memory cache: %v", err)
			return memorycache.New(cache.DefaultOptions()), nil
		}
		return nil, err
	}
	return store, nil
}

// buildLLM returns nil when no API key is configured. Extraction then runs
// heuristics only.
func buildLLM(cfg config.Config) llm.Client {
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		log.Printf("bootstrap: LLM_API_KEY empty; remote extraction disabled")
		return nil
	}
	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	client, err := openai.NewClient(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, timeout)
	if err != nil {
		log.Printf("bootstrap: llm client init failed; remote extraction disabled: %v", err)
		return nil
	}
	return llm.WithBreaker(llm.WithRetry(client, cfg.LLMMaxRetries))
}

func buildServices(app *App) {
	var repo postings.Repo
	if app.DB != nil {
		repo = &postings.PGRepo{DB: app.DB}
	} else {
		repo = postings.NewMemoryRepo()
	}

	extractionSvc := extraction.NewService(app.LLM, app.Cache, extraction.Options{
		TimeoutSeconds: app.Config.LLMTimeoutSeconds,
		MaxTextLength:  app.Config.MaxTextLength,
	})

	postingsSvc := &postings.Service{Repo: repo, Extractor: extractionSvc}

	app.PostingsRepo = repo
	app.ExtractionService = extractionSvc
	app.PostingsService = postingsSvc
	app.PostingsHandler = postings.NewHandler(postingsSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
