package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"labquest-backend/internal/config"
	"labquest-backend/internal/db"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("❌ Failed to connect DB: ", err)
	}
	defer database.Close()

	log.Printf("✅ Connected to %s", cfg.DBDriver)

	if cfg.DemoMode() {
		log.Println("[WARN] OPENAI_API_KEY is not set, /upload-audio/ answers with demo notes")
	}
	if cfg.AuthSecret == "" {
		log.Println("[WARN] AUTH_SECRET is not set, API is open to the allowed origin")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, database, newEngine(cfg), nil),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 API server is running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
