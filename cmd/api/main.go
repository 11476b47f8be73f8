package main

import (
	"context"
	"log"
	"time"

	"github.com/HoneyMedusa/recycle-me/config"
	"github.com/HoneyMedusa/recycle-me/internal/ai"
	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/bootstrap"
	"github.com/HoneyMedusa/recycle-me/internal/verifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer pool.Close()

	sqlDB, err := bootstrap.OpenSQLDB(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open sales archive db: %v", err)
	}
	defer sqlDB.Close()

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("failed to initialize firebase: %v", err)
	}
	if authClient == nil {
		log.Println("Firebase credentials not configured, using header-based identity")
	}

	aiClient, err := ai.New(ctx, &cfg.Gemini)
	if err != nil {
		log.Fatalf("failed to initialize AI client: %v", err)
	}
	if aiClient.MockMode() {
		log.Println("GEMINI_API_KEY not set, AI collaborators running in mock mode")
	}

	r, ledger, archive := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "recycle-me-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.App.AllowedOrigins,
		MunicipalKey:   cfg.App.MunicipalKey,
		DB:             pool,
		SQLDB:          sqlDB,
		Redis:          rdb,
		Auth:           authClient,
		AI:             aiClient,
	})

	sweeper := verifier.NewScheduler(archive, ledger, time.Duration(cfg.Verifier.MinAgeHours)*time.Hour)
	cronRunner, err := sweeper.Start(cfg.Verifier.Spec)
	if err != nil {
		log.Fatalf("failed to start verification sweep: %v", err)
	}
	defer cronRunner.Stop()

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
