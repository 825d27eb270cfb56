package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/drewburchfield/gridiron/internal/domain/game"
	"github.com/drewburchfield/gridiron/internal/platform/id"
	"github.com/drewburchfield/gridiron/internal/platform/logging"
)

const loaderFixtureXML = `<fbgame source="test">
  <venue gameid="G1" visname="A" homename="B"/>
  <team vh="V" id="A" name="A">
    <linescore score="10"><lineprd prd="1" score="7"/><lineprd prd="2" score="3"/></linescore>
  </team>
  <team vh="H" id="B" name="B"/>
</fbgame>`

type fakeFetcher struct {
	body []byte
	err  error
}

func (f *fakeFetcher) FetchDocument(context.Context) ([]byte, error) {
	return f.body, f.err
}

func newTestLoader(t *testing.T, fetcher DocumentFetcher) *LoaderService {
	t.Helper()

	svc, err := NewLoaderService(fetcher, id.NewRandomGenerator(), 2, logging.NewNop())
	if err != nil {
		t.Fatalf("NewLoaderService: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestLoadFromBytes_PublishesRecord(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	loaded, committed, err := svc.LoadFromBytes(t.Context(), SourceUpload, []byte(loaderFixtureXML))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if !committed {
		t.Fatal("first load must commit")
	}
	if loaded.LoadID == "" || loaded.Generation != 1 {
		t.Fatalf("loaded metadata wrong: %+v", loaded)
	}
	if loaded.Record.Venue.GameID != "G1" {
		t.Fatalf("record not published: %+v", loaded.Record.Venue)
	}

	current, ok := svc.Current()
	if !ok || current.Generation != loaded.Generation {
		t.Fatalf("Current() = (%+v, %v), want the committed load", current, ok)
	}
}

func TestLoadFromBytes_MalformedDocument(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	_, _, err := svc.LoadFromBytes(t.Context(), SourceUpload, []byte(`<fbgame><venue/></fbgame>`))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}

	if _, ok := svc.Current(); ok {
		t.Fatal("a rejected document must not publish a record")
	}

	stats := svc.Stats()
	if stats.Accepted != 1 || stats.Committed != 0 {
		t.Fatalf("stats = %+v, want accepted=1 committed=0", stats)
	}
}

func TestLoadFromBytes_EmptyDocument(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	if _, _, err := svc.LoadFromBytes(t.Context(), SourceUpload, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestCommit_StaleGenerationDiscarded(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	newer := &LoadedGame{Generation: 2, Record: &game.Record{}}
	older := &LoadedGame{Generation: 1, Record: &game.Record{}}

	if committed, _ := svc.commit(newer); !committed {
		t.Fatal("newer generation must commit")
	}
	if committed, _ := svc.commit(older); committed {
		t.Fatal("stale generation must not overwrite a newer record")
	}

	current, ok := svc.Current()
	if !ok || current.Generation != 2 {
		t.Fatalf("current generation = %+v, want 2", current)
	}
}

func TestLoadFromBytes_SecondLoadWins(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	if _, _, err := svc.LoadFromBytes(t.Context(), SourceUpload, []byte(loaderFixtureXML)); err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, committed, err := svc.LoadFromBytes(t.Context(), SourceUpload, []byte(loaderFixtureXML))
	if err != nil || !committed {
		t.Fatalf("second load = (%v, %v)", committed, err)
	}
	if second.Generation != 2 {
		t.Fatalf("second generation = %d, want 2", second.Generation)
	}

	current, _ := svc.Current()
	if current.Generation != 2 {
		t.Fatalf("current generation = %d, want 2", current.Generation)
	}
}

func TestLoadFromBytes_CopiesCallerBuffer(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	buf := []byte(loaderFixtureXML)
	loaded, _, err := svc.LoadFromBytes(t.Context(), SourceUpload, buf)
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}

	for i := range buf {
		buf[i] = 'x'
	}
	if string(loaded.Raw) != loaderFixtureXML {
		t.Fatal("published raw bytes must not alias the caller's buffer")
	}
}

func TestLoadFromFeed(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, &fakeFetcher{body: []byte(loaderFixtureXML)})

	loaded, committed, err := svc.LoadFromFeed(t.Context())
	if err != nil || !committed {
		t.Fatalf("LoadFromFeed = (%v, %v)", committed, err)
	}
	if loaded.Source != SourceFeed {
		t.Fatalf("source = %q, want %q", loaded.Source, SourceFeed)
	}
}

func TestLoadFromFeed_FetchFailure(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, &fakeFetcher{err: errors.New("connection refused")})

	if _, _, err := svc.LoadFromFeed(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("error = %v, want ErrDependencyUnavailable", err)
	}
}

func TestLoadFromFeed_NoFetcherConfigured(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	if _, _, err := svc.LoadFromFeed(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("error = %v, want ErrDependencyUnavailable", err)
	}
}

func TestOnCommitHook(t *testing.T) {
	t.Parallel()

	svc := newTestLoader(t, nil)

	var hookGen uint64
	var hookPrev uint64
	svc.SetOnCommit(func(_ context.Context, loaded *LoadedGame, previous uint64) {
		hookGen = loaded.Generation
		hookPrev = previous
	})

	if _, _, err := svc.LoadFromBytes(t.Context(), SourceBootstrap, []byte(loaderFixtureXML)); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if hookGen != 1 || hookPrev != 0 {
		t.Fatalf("hook saw (%d, %d), want (1, 0)", hookGen, hookPrev)
	}

	if _, _, err := svc.LoadFromBytes(t.Context(), SourceUpload, []byte(loaderFixtureXML)); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if hookGen != 2 || hookPrev != 1 {
		t.Fatalf("hook saw (%d, %d), want (2, 1)", hookGen, hookPrev)
	}
}
