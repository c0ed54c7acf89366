package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-scout/internal/app"
	"job-scout/internal/config"
	"job-scout/internal/database/migration"
	"job-scout/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.Default()

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, container.DB.SQLDB()); err != nil {
		migCancel()
		log.Fatalf("migration failed: %v", err)
	}
	migCancel()

	seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
	sr := seeder.Runner{Seeders: seeder.Defaults()}
	if err := sr.Run(seedCtx, container.DB); err != nil {
		seedCancel()
		log.Fatalf("seeding failed: %v", err)
	}
	seedCancel()

	loadCtx, loadCancel := context.WithTimeout(context.Background(), time.Minute)
	if _, err := container.Corpus.Refresh(loadCtx); err != nil {
		logger.Printf("[Corpus] initial load failed, starting with empty corpus | err=%v", err)
	}
	loadCancel()

	bootstrap, cleanup, err := app.Bootstrap(container)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
