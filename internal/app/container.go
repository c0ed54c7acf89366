package app

import (
	"context"
	"log"
	"time"

	"job-scout/internal/chat"
	"job-scout/internal/config"
	"job-scout/internal/corpus"
	"job-scout/internal/database"
	dbpostgres "job-scout/internal/database/postgres"
	"job-scout/internal/infrastructure/cache"
	"job-scout/internal/infrastructure/embed"
	"job-scout/internal/match"
	"job-scout/internal/pkg/jwt"
	"job-scout/internal/repository"
	"job-scout/internal/scraper"
	"job-scout/internal/usecase"
	"job-scout/internal/ws"
)

// Container wires configuration, storage, the ranking engine, and the
// usecases behind the HTTP surface.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB     database.DB
	Cache  *cache.Redis
	Corpus *corpus.Provider
	Jobs   repository.JobRepository

	Sessions *chat.Manager
	Hub      *ws.Hub
	JWT      jwt.Service

	SearchUC          usecase.JobSearchUsecase
	RecommendationUC  usecase.JobRecommendationUsecase
	StatsUC           usecase.JobStatsUsecase
	ChatUC            usecase.ChatUsecase
	ScrapeUC          usecase.ScrapeUsecase
	AuthUC            usecase.AuthUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	jobs := repository.NewPostgresJobRepository(db)
	corpusProvider := corpus.NewProvider(jobs, logger)

	ranker := match.NewRanker(match.NewScorer(buildSimilarity(ctx, cfg.Embed, logger)))

	redisCache := cache.NewRedis(cfg.Redis, logger)
	sessions := chat.NewManager()
	hub := ws.NewHub(logger)

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)

	searchUC := usecase.NewJobSearchUsecase(corpusProvider, ranker, redisCache, logger)
	statsUC := usecase.NewJobStatsUsecase(corpusProvider)

	board := scraper.NewBoardScraper(
		cfg.Scraper.BaseURL,
		cfg.Scraper.UseHeadless,
		cfg.Scraper.RequestDelayMs,
		logger,
	)

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Corpus:   corpusProvider,
		Jobs:     jobs,
		Sessions: sessions,
		Hub:      hub,
		JWT:      jwtSvc,

		SearchUC:         searchUC,
		RecommendationUC: usecase.NewJobRecommendationUsecase(sessions, corpusProvider, ranker),
		StatsUC:          statsUC,
		ChatUC:           usecase.NewChatUsecase(sessions, searchUC, statsUC, logger),
		ScrapeUC:         usecase.NewScrapeUsecase(board, jobs, corpusProvider, ws.NewNotifier(hub), logger),
		AuthUC:           usecase.NewAuthUsecase(cfg.Auth.AdminPasswordHash, jwtSvc),
	}
	return c, nil
}

// buildSimilarity assembles the fallback chain: embedding service when
// configured and reachable, then TF-IDF, then Jaccard.
func buildSimilarity(ctx context.Context, cfg config.EmbedConfig, logger *log.Logger) *match.Chain {
	backends := make([]match.Similarity, 0, 3)

	if client := embed.NewClient(cfg.ServiceURL, cfg.Timeout, logger); client != nil {
		if err := client.Probe(ctx); err != nil {
			logger.Printf("[Similarity] embed service unavailable at startup, keeping in chain | err=%v", err)
		} else {
			logger.Printf("[Similarity] embed service ready | url=%s", cfg.ServiceURL)
		}
		backends = append(backends, client)
	} else {
		logger.Printf("[Similarity] embed service not configured, using lexical backends")
	}

	backends = append(backends, match.TFIDF{}, match.Jaccard{})
	return match.NewChain(logger, backends...)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
