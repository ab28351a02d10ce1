package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"labquest-backend/internal/ai"
	"labquest-backend/internal/analytics"
	"labquest-backend/internal/auth"
	"labquest-backend/internal/config"
	"labquest-backend/internal/httputil"
	"labquest-backend/internal/middleware"
	"labquest-backend/internal/notes"
	"labquest-backend/internal/tasks"
)

// newEngine picks the live provider or the demo variant from the credential.
func newEngine(cfg *config.Config) notes.Engine {
	if cfg.DemoMode() {
		return notes.DemoEngine{}
	}
	return notes.NewLiveEngine(ai.New(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenAITranscribeModel))
}

func newRouter(cfg *config.Config, database *sql.DB, engine notes.Engine, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", rootHandler)
	mux.HandleFunc("GET /health", healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	authMW := auth.New([]byte(cfg.AuthSecret))

	store := tasks.NewStore(database, cfg.TaskExp)
	events := analytics.NewRecorder(database)
	tasks.RegisterRoutes(mux, store, events, authMW.Wrap)

	orchestrator := notes.New(engine, cfg.UploadDir)
	notes.RegisterRoutes(mux, orchestrator, cfg.UploadMaxBytes, authMW.Wrap)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.Metrics,
		c.Handler,
	)
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Success! Backend is connected."})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK"))
}
