// Package server exposes the pricing engine over HTTP.
//
// Responsibilities:
//   - one Server owning the dataset store, settings store, and config
//   - a versioned route table under /api/<version>, /health at the root
//   - JSON in, JSON out; engine errors mapped to status codes in one place
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/contactkeval/option-quote/internal/config"
	"github.com/contactkeval/option-quote/internal/dataset"
	"github.com/contactkeval/option-quote/internal/logger"
	"github.com/contactkeval/option-quote/internal/settings"
)

// Server carries the shared state behind the REST handlers.
type Server struct {
	cfg      *config.Config
	datasets *dataset.Store
	settings *settings.Store
}

func New(cfg *config.Config) *Server {
	return &Server{
		cfg:      cfg,
		datasets: dataset.NewStore(cfg.Dataset.MaxRows, cfg.Dataset.MaxDatasets),
		settings: settings.NewStore(),
	}
}

// Handler builds the middleware-wrapped route tree.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	subrouters := map[string]*mux.Router{}
	for _, rt := range s.routes() {
		api, ok := subrouters[rt.Version]
		if !ok {
			api = r.PathPrefix("/api/" + rt.Version).Subrouter()
			subrouters[rt.Version] = api
		}
		api.HandleFunc(rt.Path, rt.Handler).Methods(rt.Method)
	}

	return ZstdMiddleware(requestLog(r))
}

// ListenAndServe blocks serving the configured address until the
// listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Listen,
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSec) * time.Second,
	}
	logger.Infof("event=serve listen=%s", s.cfg.Server.Listen)
	return srv.ListenAndServe()
}
