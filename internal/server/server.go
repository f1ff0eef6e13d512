// Package server exposes the search state machine and its presenters over
// HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	art "github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/search"
)

const shutdownTimeout = 5 * time.Second

// Options configures optional server features.
type Options struct {
	Artwork    art.Loader // nil disables /api/thumbnail
	ThumbCache *art.Cache // may be nil
}

// Server owns one search holder shared by every client: like the TUI, the
// most recently issued search wins.
type Server struct {
	holder *search.Holder
	opts   Options
	engine *gin.Engine
}

// New creates a server searching with searcher.
func New(searcher search.Searcher, opts Options) *Server {
	s := &Server{
		holder: search.NewHolder(searcher),
		opts:   opts,
	}
	s.engine = s.setupRouter()
	return s
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware())
	r.Use(CORSMiddleware())

	api := r.Group("/api")
	{
		api.GET("/search", s.handleSearch)
		api.GET("/list", s.handleList)
		api.GET("/grid", s.handleGrid)
		api.GET("/select/:index", s.handleSelect)
		api.GET("/thumbnail/:index", s.handleThumbnail)
		api.GET("/health", s.handleHealth)
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Holder returns the shared search holder.
func (s *Server) Holder() *search.Holder {
	return s.holder
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Get().Info("server: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Get().Info("server: shutting down")
	s.holder.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
