// Package web serves the catalog and program views as HTML pages.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/five82/liftbook/internal/catalog"
	"github.com/five82/liftbook/internal/source"
	"github.com/five82/liftbook/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	defaultCatalogTTL   = 5 * time.Minute
	defaultFetchTimeout = 10 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// Options tune a Server. Zero values use the defaults.
type Options struct {
	// CatalogTTL is how long a loaded catalog is served before it is
	// fetched again. Negative keeps it forever.
	CatalogTTL   time.Duration
	FetchTimeout time.Duration
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog      *catalog.Catalog
	fetcher      source.Fetcher
	store        *state.Store
	log          *slog.Logger
	pages        *template.Template
	router       chi.Router
	refresh      singleflight.Group
	catalogTTL   time.Duration
	fetchTimeout time.Duration
}

// New creates a Server with all routes configured.
func New(cat *catalog.Catalog, fetcher source.Fetcher, store *state.Store, log *slog.Logger, opts Options) (*Server, error) {
	pages, err := template.New("pages").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if store == nil {
		store = &state.Store{}
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		catalog:      cat,
		fetcher:      fetcher,
		store:        store,
		log:          log,
		pages:        pages,
		router:       chi.NewRouter(),
		catalogTTL:   opts.CatalogTTL,
		fetchTimeout: opts.FetchTimeout,
	}
	if s.catalogTTL == 0 {
		s.catalogTTL = defaultCatalogTTL
	}
	if s.fetchTimeout <= 0 {
		s.fetchTimeout = defaultFetchTimeout
	}
	s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))

	s.router.Get("/", s.handleSelection)
	s.router.Get("/programs/{id}", s.handleProgram)
	s.router.Get("/healthz", s.handleHealth)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is ListenAndServe over an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpSrv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", listener.Addr().String())
		errCh <- httpSrv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// catalogSnapshot returns the cached catalog, refreshing it when stale.
// Concurrent refreshes collapse into one fan-out.
func (s *Server) catalogSnapshot(ctx context.Context) state.Snapshot {
	snap := s.store.Snapshot()
	if s.catalog == nil || !snap.Stale(time.Now(), s.catalogTTL) {
		return snap
	}
	_, _, _ = s.refresh.Do("catalog", func() (any, error) {
		ids := s.catalog.List()
		s.store.Update(s.catalog.LoadSummaries(context.WithoutCancel(ctx), ids), len(ids))
		return nil, nil
	})
	return s.store.Snapshot()
}
