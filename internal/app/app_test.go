package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/drewburchfield/gridiron/internal/config"
	"github.com/drewburchfield/gridiron/internal/platform/logging"
)

const bootstrapXML = `<fbgame source="STAT CREW" generated="10/26/2024">
  <venue gameid="7741" visname="Southern Miss." homename="Miami (FL)"/>
  <team vh="V" id="USM" name="Southern Miss."><linescore score="13"/></team>
  <team vh="H" id="UM" name="Miami (FL)"><linescore score="38"/></team>
</fbgame>`

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		MaxUploadBytes:     4 << 20,
		LoaderWorkers:      1,
	}
}

func TestNewHTTPServer_NoFeedNoBootstrap(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	defer srv.Loader.Close()

	if srv.HTTP.Handler == nil {
		t.Fatalf("expected router to be wired")
	}
	if _, ok := srv.Loader.Current(); ok {
		t.Fatalf("expected no record without a bootstrap document")
	}
}

func TestNewHTTPServer_BootstrapDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.xml")
	if err := os.WriteFile(path, []byte(bootstrapXML), 0o600); err != nil {
		t.Fatalf("write bootstrap file: %v", err)
	}

	cfg := testConfig()
	cfg.DocumentPath = path

	srv, err := NewHTTPServer(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	defer srv.Loader.Close()

	loaded, ok := srv.Loader.Current()
	if !ok {
		t.Fatalf("expected bootstrap document to be published")
	}
	if loaded.Record.Venue.GameID != "7741" {
		t.Fatalf("unexpected bootstrap game id: %q", loaded.Record.Venue.GameID)
	}
}

func TestNewHTTPServer_BootstrapFailureIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.DocumentPath = filepath.Join(t.TempDir(), "missing.xml")

	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unreadable bootstrap document")
	}
}

func TestNewHTTPServer_EmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}
