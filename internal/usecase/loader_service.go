package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/drewburchfield/gridiron/internal/domain/game"
	"github.com/drewburchfield/gridiron/internal/feed/statcrew"
	"github.com/drewburchfield/gridiron/internal/platform/id"
	"github.com/drewburchfield/gridiron/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
)

// Load sources.
const (
	SourceUpload    = "upload"
	SourceFeed      = "feed"
	SourceBootstrap = "bootstrap"
)

// LoadedGame is one committed document load. Record and Raw are immutable
// once published.
type LoadedGame struct {
	LoadID     string
	Generation uint64
	Source     string
	Record     *game.Record
	Raw        []byte
	LoadedAt   time.Time
}

// DocumentFetcher obtains the raw game document from the remote feed.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context) ([]byte, error)
}

// LoaderService turns raw document bytes into the published game record.
// Each load takes a fresh generation before parsing starts; a completion
// whose generation is older than the published one is discarded, so a slow
// parse can never overwrite a newer record.
type LoaderService struct {
	fetcher DocumentFetcher
	pool    *ants.Pool
	ids     id.Generator
	logger  *logging.Logger

	generation atomic.Uint64
	current    atomic.Pointer[LoadedGame]

	// onCommit runs after a load is published, outside any lock.
	onCommit func(context.Context, *LoadedGame, uint64)

	accepted  atomic.Int64
	committed atomic.Int64
	discarded atomic.Int64
}

func NewLoaderService(fetcher DocumentFetcher, ids id.Generator, workerCount int, logger *logging.Logger) (*LoaderService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if workerCount < 1 {
		workerCount = 1
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create loader pool: %w", err)
	}

	return &LoaderService{
		fetcher: fetcher,
		pool:    pool,
		ids:     ids,
		logger:  logger,
	}, nil
}

// SetOnCommit registers the post-commit hook. Wire-up only; not safe to call
// once loads are in flight.
func (s *LoaderService) SetOnCommit(hook func(ctx context.Context, loaded *LoadedGame, previousGeneration uint64)) {
	s.onCommit = hook
}

func (s *LoaderService) Close() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Current returns the most recently committed load.
func (s *LoaderService) Current() (*LoadedGame, bool) {
	loaded := s.current.Load()
	if loaded == nil {
		return nil, false
	}
	return loaded, true
}

type parseResult struct {
	record *game.Record
	err    error
}

// LoadFromBytes parses raw document bytes on the worker pool and publishes
// the result. The returned bool reports whether the load was committed;
// false means a newer load won the race and this one was discarded.
func (s *LoaderService) LoadFromBytes(ctx context.Context, source string, raw []byte) (*LoadedGame, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadFromBytes")
	defer span.End()

	if len(raw) == 0 {
		return nil, false, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}

	gen := s.generation.Add(1)
	s.accepted.Add(1)

	loadID := ""
	if s.ids != nil {
		var err error
		if loadID, err = s.ids.NewID(); err != nil {
			return nil, false, fmt.Errorf("generate load id: %w", err)
		}
	}

	// The caller may reuse its buffer after we return.
	body := make([]byte, len(raw))
	copy(body, raw)

	done := make(chan parseResult, 1)
	if err := s.pool.Submit(func() {
		rec, err := statcrew.Parse(body)
		done <- parseResult{record: rec, err: err}
	}); err != nil {
		return nil, false, fmt.Errorf("%w: loader pool rejected job: %s", ErrDependencyUnavailable, err)
	}

	var res parseResult
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		s.logger.WarnContext(ctx, "document rejected",
			"load_id", loadID,
			"source", source,
			"error", res.err,
		)
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidInput, res.err)
	}

	loaded := &LoadedGame{
		LoadID:     loadID,
		Generation: gen,
		Source:     source,
		Record:     res.record,
		Raw:        body,
		LoadedAt:   time.Now().UTC(),
	}

	committed, previousGen := s.commit(loaded)
	if !committed {
		s.discarded.Add(1)
		s.logger.InfoContext(ctx, "stale load discarded",
			"load_id", loadID,
			"generation", gen,
			"source", source,
		)
		return loaded, false, nil
	}

	s.committed.Add(1)
	s.logger.InfoContext(ctx, "game document loaded",
		"load_id", loadID,
		"generation", gen,
		"source", source,
		"game_id", res.record.Venue.GameID,
		"bytes", len(body),
	)
	if s.onCommit != nil {
		s.onCommit(ctx, loaded, previousGen)
	}
	return loaded, true, nil
}

// commit publishes the load unless a newer generation already did.
func (s *LoaderService) commit(loaded *LoadedGame) (bool, uint64) {
	for {
		cur := s.current.Load()
		if cur != nil && cur.Generation >= loaded.Generation {
			return false, 0
		}
		if s.current.CompareAndSwap(cur, loaded) {
			previous := uint64(0)
			if cur != nil {
				previous = cur.Generation
			}
			return true, previous
		}
	}
}

// LoadFromFeed fetches the configured remote document and loads it.
func (s *LoaderService) LoadFromFeed(ctx context.Context) (*LoadedGame, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadFromFeed")
	defer span.End()

	if s.fetcher == nil {
		return nil, false, fmt.Errorf("%w: no feed source configured", ErrDependencyUnavailable)
	}

	raw, err := s.fetcher.FetchDocument(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: fetch game document: %s", ErrDependencyUnavailable, err)
	}
	return s.LoadFromBytes(ctx, SourceFeed, raw)
}

// LoaderStats are cumulative counters for the loads endpoint and logs.
type LoaderStats struct {
	Accepted  int64
	Committed int64
	Discarded int64
}

func (s *LoaderService) Stats() LoaderStats {
	return LoaderStats{
		Accepted:  s.accepted.Load(),
		Committed: s.committed.Load(),
		Discarded: s.discarded.Load(),
	}
}
