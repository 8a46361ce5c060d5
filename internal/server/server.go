package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ecopontos/internal/registry"
	"ecopontos/internal/storage"
	"ecopontos/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	registry *registry.Service
	uploads  storage.Storage

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	reg *registry.Service,
	uploads storage.Storage,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger:   logger,
		config:   config,
		registry: reg,
		uploads:  uploads,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleRoot, http.MethodGet)

	r.HandleFunc("/categories", s.handleListCategories, http.MethodGet)

	r.HandleFunc("/points", s.handleCreatePoint, http.MethodPost)
	r.HandleFunc("/points", s.handleListPoints, http.MethodGet)
	r.HandleFunc("/points/:id", s.handleGetPoint, http.MethodGet)

	// With the disk backend stored assets are served straight from the
	// upload directory. The S3 backend serves from the bucket origin.
	if disk, ok := s.uploads.(*storage.DiskStorage); ok {
		r.Handle("/uploads/...", http.StripPrefix("/uploads/", http.FileServer(http.Dir(disk.Dir()))), http.MethodGet)
	}
}

func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Everything working good."})
}
