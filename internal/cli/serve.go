package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pubkit/pubfig/pkg/cache"
	"github.com/pubkit/pubfig/pkg/figure"
	"github.com/pubkit/pubfig/pkg/figure/sink"
	"github.com/pubkit/pubfig/pkg/figure/styles"
)

// serveCacheTTL bounds how long a rendered artifact stays cached. The
// style hash already invalidates entries on config changes; the TTL just
// keeps abandoned caches from growing forever.
const serveCacheTTL = 24 * time.Hour

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	config    string
	fontScale float64
	dpi       int
	cacheDir  string
	redisAddr string
	noCache   bool
}

// newServeCmd creates the serve command, a browser preview of the figure
// gallery. Rendered artifacts are cached; the cache key includes the full
// style, so editing the config file and restarting serves fresh figures.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		fontScale: 1.0,
		dpi:       sink.DefaultDPI,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a browser preview of rendered figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "style config file (TOML)")
	cmd.Flags().Float64Var(&opts.fontScale, "font-scale", opts.fontScale, "font size multiplier")
	cmd.Flags().IntVar(&opts.dpi, "dpi", opts.dpi, "raster resolution for png output")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared artifact cache (host:port)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	style, err := resolveStyle(opts.config, opts.fontScale)
	if err != nil {
		return err
	}

	store, err := newArtifactCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &figureServer{
		style:     style,
		styleHash: styleHash(style),
		store:     store,
		dpi:       opts.dpi,
		logger:    logger,
		instance:  uuid.NewString(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Get("/", srv.handleIndex)
	r.Get("/figures/{name}", srv.handleFigure)

	httpSrv := &http.Server{Addr: opts.addr, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("Preview server listening", "addr", opts.addr, "instance", srv.instance)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newArtifactCache picks the cache backend from the serve flags.
func newArtifactCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisAddr != "":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	}

	dir := opts.cacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = filepath.Join(base, "pubfig")
	}
	return cache.NewFileCache(dir)
}

// styleHash fingerprints a style for cache keys.
func styleHash(style styles.Style) string {
	var buf bytes.Buffer
	_ = style.Write(&buf)
	return cache.Hash(buf.Bytes())
}

// figureServer renders demo figures on demand and serves them over HTTP.
type figureServer struct {
	style     styles.Style
	styleHash string
	store     cache.Cache
	dpi       int
	logger    *charmlog.Logger
	instance  string
}

var contentTypes = map[sink.Format]string{
	sink.FormatPDF: "application/pdf",
	sink.FormatPNG: "image/png",
	sink.FormatSVG: "image/svg+xml",
	sink.FormatTeX: "application/x-tex",
}

// handleFigure serves /figures/{name}, where name is "RxC.ext"
// (e.g. 2x1.svg). Unknown shapes or extensions are 404s; render failures
// are 500s.
func (s *figureServer) handleFigure(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	ext := filepath.Ext(name)
	format, err := sink.ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	shape, err := figure.ParseGridShape(strings.TrimSuffix(name, ext))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	dpi := 0
	if format == sink.FormatPNG {
		dpi = s.dpi
	}
	key := cache.ArtifactKey(s.styleHash, shape.String(), string(format), dpi)

	ctx := r.Context()
	data, hit, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed", "key", key, "err", err)
	}
	if !hit {
		data, err = s.renderArtifact(shape, format)
		if err != nil {
			s.logger.Error("render failed", "shape", shape, "format", format, "err", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		if err := s.store.Set(ctx, key, data, serveCacheTTL); err != nil {
			s.logger.Warn("cache set failed", "key", key, "err", err)
		}
	}
	s.logger.Debug("figure served", "shape", shape, "format", format, "cache_hit", hit)

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("ETag", `"`+cache.Hash(data)+`"`)
	_, _ = w.Write(data)
}

func (s *figureServer) renderArtifact(shape figure.GridShape, format sink.Format) ([]byte, error) {
	fig, err := figure.New(s.style, shape)
	if err != nil {
		return nil, err
	}
	if err := fillDemo(fig); err != nil {
		return nil, err
	}
	return sink.Render(fig, format, sink.WithDPI(s.dpi))
}

// handleIndex serves a plain gallery page embedding every small grid shape.
func (s *figureServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><title>pubfig preview</title></head><body>\n")
	b.WriteString("<h1>pubfig preview</h1>\n")
	fmt.Fprintf(&b, "<p>instance %s</p>\n", s.instance)

	for rows := 1; rows <= galleryMax; rows++ {
		for cols := 1; cols <= galleryMax; cols++ {
			shape := figure.GridShape{Rows: rows, Cols: cols}
			fmt.Fprintf(&b, "<h2>%s</h2>\n", shape)
			fmt.Fprintf(&b, "<img src=\"/figures/%s.svg\" alt=\"%s\">\n", shape, shape)
			fmt.Fprintf(&b, "<p><a href=\"/figures/%s.pdf\">pdf</a> <a href=\"/figures/%s.png\">png</a> <a href=\"/figures/%s.tex\">tex</a></p>\n",
				shape, shape, shape)
		}
	}

	b.WriteString("</body></html>\n")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

// requestLogger logs each request at debug level with its duration.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Millisecond),
			)
		})
	}
}
