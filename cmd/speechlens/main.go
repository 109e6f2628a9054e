package main

import (
	"context"
	"log"
	"net/http"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/config"
	"github.com/pitabwire/frame/workerpool"

	slconfig "github.com/speechlens/speechlens/config"
	"github.com/speechlens/speechlens/internal/analysis"
	"github.com/speechlens/speechlens/internal/analysis/vocab"
	"github.com/speechlens/speechlens/internal/api"
	"github.com/speechlens/speechlens/internal/recommend"
	"github.com/speechlens/speechlens/internal/stats"
	"github.com/speechlens/speechlens/pkg/events"
	"github.com/speechlens/speechlens/pkg/urlvalidation"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadWithOIDC[slconfig.SpeechlensConfig](ctx)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	eventRef := cfg.GetEventsQueueName()
	eventURL := cfg.GetEventsQueueURL()

	serviceOpts := []frame.Option{
		frame.WithConfig(&cfg),
		frame.WithName("speechlens"),
		frame.WithRegisterPublisher(eventRef, eventURL),
		frame.WithWorkerPoolOptions(
			workerpool.WithPoolCount(cfg.WorkerPoolCount),
			workerpool.WithSinglePoolCapacity(cfg.WorkerPoolCapacity),
		),
	}
	if cfg.StatsBackend == "postgres" {
		serviceOpts = append(serviceOpts, frame.WithDatastore())
	}

	ctx, srv := frame.NewService(serviceOpts...)
	defer srv.Stop(ctx)

	pub := events.NewPublisher(srv.QueueManager(), "speechlens", eventRef)

	// --- Vocabulary ---
	vocabStore := vocab.NewStore(cfg.VocabDir)
	if err := vocabStore.LoadAll(); err != nil {
		log.Printf("warning: loading vocab overrides: %v", err)
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		if werr := vocabStore.WatchAndReload(done); werr != nil {
			log.Printf("warning: vocab watcher stopped: %v", werr)
		}
	}()

	// --- Stats storage ---
	var statsRepo stats.Repository
	switch cfg.StatsBackend {
	case "postgres":
		statsRepo = stats.NewGormRepository(
			srv.DatastoreManager().GetPool(ctx, "__default__pool_name__"),
		)
	case "redis":
		statsRepo, err = stats.NewRedisRepository(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("connecting to redis: %v", err)
		}
	default:
		statsRepo = stats.NewMemoryRepository()
	}

	// --- Recommendations ---
	var recommender *recommend.Client
	if cfg.RecommendEnabled() {
		if verr := urlvalidation.ValidateEndpointURL(cfg.RecommendBaseURL); verr != nil {
			log.Fatalf("recommendation base URL: %v", verr)
		}
		recommender = recommend.NewClient(recommend.Options{
			BaseURL:    cfg.RecommendBaseURL,
			APIKey:     cfg.RecommendAPIKey,
			Model:      cfg.RecommendModel,
			TimeoutSec: cfg.RecommendTimeoutSec,
		})
	}

	analyzer := analysis.New(vocabStore)

	mux := http.NewServeMux()
	handler := api.NewHandler(analyzer, statsRepo, recommender, pub, cfg.MaxAudioBytes)
	handler.RegisterRoutes(mux)

	srv.Init(ctx, frame.WithHTTPHandler(mux))

	if err := srv.Run(ctx, ""); err != nil {
		log.Fatalf("service exited: %v", err)
	}
}
