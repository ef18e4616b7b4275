package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/pubkit/pubfig/pkg/cache"
	"github.com/pubkit/pubfig/pkg/figure/sink"
	"github.com/pubkit/pubfig/pkg/figure/styles"
)

func newTestServer(t *testing.T, store cache.Cache) (*figureServer, chi.Router) {
	t.Helper()
	srv := &figureServer{
		style:     styles.Default(),
		styleHash: styleHash(styles.Default()),
		store:     store,
		dpi:       sink.DefaultDPI,
		logger:    charmlog.New(io.Discard),
		instance:  "test",
	}
	r := chi.NewRouter()
	r.Get("/", srv.handleIndex)
	r.Get("/figures/{name}", srv.handleFigure)
	return srv, r
}

func TestHandleFigureSVG(t *testing.T) {
	_, r := newTestServer(t, cache.NewNullCache())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/figures/2x1.svg", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("<svg")) {
		t.Error("response does not look like SVG")
	}
}

func TestHandleFigureNotFound(t *testing.T) {
	_, r := newTestServer(t, cache.NewNullCache())

	for _, path := range []string{
		"/figures/2x1.bmp",  // unknown format
		"/figures/0x1.svg",  // invalid shape
		"/figures/abc.svg",  // not a shape
		"/figures/plot",     // no extension
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != 404 {
			t.Errorf("GET %s status = %d, want 404", path, rec.Code)
		}
	}
}

func TestHandleFigureCaches(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	srv, r := newTestServer(t, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/figures/1x1.svg", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	key := cache.ArtifactKey(srv.styleHash, "1x1", "svg", 0)
	data, hit, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("cache get error: %v", err)
	}
	if !hit {
		t.Fatal("artifact not cached after first request")
	}
	if !bytes.Equal(data, rec.Body.Bytes()) {
		t.Error("cached artifact differs from served response")
	}

	// Second request must serve the cached bytes.
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, httptest.NewRequest("GET", "/figures/1x1.svg", nil))
	if !bytes.Equal(rec2.Body.Bytes(), data) {
		t.Error("second response differs from cached artifact")
	}
}

func TestHandleIndex(t *testing.T) {
	_, r := newTestServer(t, cache.NewNullCache())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/figures/1x1.svg") {
		t.Error("index missing link to 1x1 figure")
	}
	if !strings.Contains(body, "/figures/3x3.svg") {
		t.Error("index missing link to 3x3 figure")
	}
}

func TestStyleHashDistinguishesStyles(t *testing.T) {
	a := styleHash(styles.Default())
	b := styleHash(styles.Default().Scale(2))
	if a == b {
		t.Error("styleHash() should differ for different styles")
	}
	if a != styleHash(styles.Default()) {
		t.Error("styleHash() should be stable for the same style")
	}
}
