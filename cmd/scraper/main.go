package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"job-scout/internal/app"
	"job-scout/internal/config"
	"job-scout/internal/database/migration"
	"job-scout/internal/usecase"
)

func main() {
	keyword := flag.String("keyword", "", "job search keyword")
	location := flag.String("location", "", "job location")
	limit := flag.Int("limit", 50, "max postings to fetch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.Default()

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	kw := strings.TrimSpace(*keyword)
	if kw == "" {
		log.Fatalf("provide -keyword")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := c.ScrapeUC.Run(ctx, usecase.ScrapeParams{
		Keyword:  kw,
		Location: strings.TrimSpace(*location),
		Limit:    *limit,
	})
	if err != nil {
		log.Fatalf("scrape failed: %v", err)
	}

	log.Printf("scrape finished | run=%s fetched=%d upserted=%d corpus_jobs=%d",
		report.RunID, report.Fetched, report.Upserted, report.CorpusJobs)
}
