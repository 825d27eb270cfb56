package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/drewburchfield/gridiron/external/statfeed"
	"github.com/drewburchfield/gridiron/internal/config"
	"github.com/drewburchfield/gridiron/internal/interfaces/httpapi"
	"github.com/drewburchfield/gridiron/internal/platform/cache"
	idgen "github.com/drewburchfield/gridiron/internal/platform/id"
	"github.com/drewburchfield/gridiron/internal/platform/logging"
	"github.com/drewburchfield/gridiron/internal/platform/resilience"
	"github.com/drewburchfield/gridiron/internal/usecase"
)

// Server bundles the HTTP server with the loader so main can close the
// worker pool on shutdown.
type Server struct {
	HTTP   *http.Server
	Loader *usecase.LoaderService
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var fetcher usecase.DocumentFetcher
	if cfg.FeedURL != "" {
		fetcher = statfeed.NewClient(statfeed.ClientConfig{
			URL:        cfg.FeedURL,
			Timeout:    cfg.FeedTimeout,
			MaxRetries: cfg.FeedMaxRetries,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailures,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMax,
			},
		}, logger)
	} else {
		logger.Info("statfeed disabled", "reason", "FEED_URL empty")
	}

	loaderSvc, err := usecase.NewLoaderService(fetcher, idgen.NewRandomGenerator(), cfg.LoaderWorkers, logger)
	if err != nil {
		return nil, fmt.Errorf("create loader service: %w", err)
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	boxscoreSvc := usecase.NewBoxscoreService(loaderSvc, store, cfg.TeamColors, logger)
	loaderSvc.SetOnCommit(func(ctx context.Context, loaded *usecase.LoadedGame, prevGeneration uint64) {
		boxscoreSvc.WarmProjections(ctx, loaded)
		boxscoreSvc.InvalidateGeneration(ctx, prevGeneration)
	})

	if cfg.DocumentPath != "" {
		if err := bootstrapDocument(cfg.DocumentPath, loaderSvc, logger); err != nil {
			loaderSvc.Close()
			return nil, err
		}
	}

	handler := httpapi.NewHandler(boxscoreSvc, loaderSvc, logger, cfg.MaxUploadBytes)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		loaderSvc.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &Server{HTTP: server, Loader: loaderSvc}, nil
}

func bootstrapDocument(path string, loaderSvc *usecase.LoaderService, logger *logging.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bootstrap document %s: %w", path, err)
	}

	loaded, _, err := loaderSvc.LoadFromBytes(context.Background(), usecase.SourceBootstrap, raw)
	if err != nil {
		return fmt.Errorf("load bootstrap document %s: %w", path, err)
	}

	logger.Info("bootstrap document loaded",
		"path", path,
		"load_id", loaded.LoadID,
		"game_id", loaded.Record.Venue.GameID,
	)
	return nil
}
