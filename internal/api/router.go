package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/the-axmc/conclave/internal/api/handlers"
	mw "github.com/the-axmc/conclave/internal/api/middleware"
	"github.com/the-axmc/conclave/internal/config"
	"github.com/the-axmc/conclave/internal/domain"
	"github.com/the-axmc/conclave/internal/llm"
	"github.com/the-axmc/conclave/internal/service"
	"github.com/the-axmc/conclave/internal/store"
	"github.com/the-axmc/conclave/internal/verify"
	"go.uber.org/zap"
)

// App holds the router and request metrics for lifecycle management.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	sessionStore := store.NewSessionStore(db, config.SessionCap())

	// LLM clients: mock is always available; ollama needs no credential;
	// groq only when its key is configured.
	clients := map[string]domain.LLMClient{
		llm.ProviderMock:   llm.NewMockClient(),
		llm.ProviderOllama: llm.NewOllamaClient(config.OllamaURL(), config.OllamaModel()),
	}
	if client, err := llm.NewClient(llm.ProviderGroq); err != nil {
		logger.Warn("Groq client unavailable", zap.Error(err))
	} else {
		clients[llm.ProviderGroq] = client
	}

	defaultProvider := config.LLMProvider()
	if _, ok := clients[defaultProvider]; !ok {
		logger.Warn("configured default LLM provider unavailable, falling back to mock",
			zap.String("provider", defaultProvider))
		defaultProvider = llm.ProviderMock
	}
	logger.Info("LLM clients initialized", zap.String("default_provider", defaultProvider))

	// Verifier: real HTTP client plus the local deterministic fallback.
	verifier := verify.NewClient(config.VerifierURL(),
		time.Duration(config.VerifierTimeoutMS())*time.Millisecond)
	mockVerifier := verify.NewMock()

	// Services
	debateSvc := service.NewDebateService(clients, verifier, mockVerifier, sessionStore, logger, service.Config{
		DefaultProvider: defaultProvider,
		VerifierMode:    config.VerifierMode(),
		VerifyTimeout:   time.Duration(config.VerifierTimeoutMS()) * time.Millisecond,
		CodeKeywords:    config.CodeKeywords(),
	})

	// Handlers
	debateHandler := handlers.NewDebateHandler(debateSvc, sessionStore)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health (no auth)
	r.Get("/health", healthHandler(db))

	// Metrics (no auth)
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/debates", func(r chi.Router) {
			r.Post("/", debateHandler.Submit)
			r.Get("/", debateHandler.List)
			r.Get("/latest", debateHandler.Latest)
		})
	})

	return app
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.SessionStore = (*store.SessionStore)(nil)
	_ domain.LLMClient    = (*llm.OllamaClient)(nil)
	_ domain.LLMClient    = (*llm.GroqClient)(nil)
	_ domain.LLMClient    = (*llm.MockClient)(nil)
	_ domain.Verifier     = (*verify.Client)(nil)
	_ domain.Verifier     = (*verify.Mock)(nil)
)
