/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package api provides the read-mostly HTTP reporting surface for the
// sensorpoll pipeline.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	srHttp "github.com/carverauto/sensorpoll/pkg/http"
	"github.com/carverauto/sensorpoll/pkg/logger"
)

// Server serves pipeline snapshots, manual scans and hot configuration.
type Server struct {
	router  *mux.Router
	config  Config
	logger  logger.Logger
	remote  RemoteService
	summary SummaryService
	poller  PollerService
	trigger TriggerService

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
}

// Option wires a backing service into the server.
type Option func(*Server)

// WithRemote exposes the remote client.
func WithRemote(r RemoteService) Option {
	return func(s *Server) {
		s.remote = r
	}
}

// WithSummaries exposes the aggregator.
func WithSummaries(a SummaryService) Option {
	return func(s *Server) {
		s.summary = a
	}
}

// WithPoller exposes the polling service.
func WithPoller(p PollerService) Option {
	return func(s *Server) {
		s.poller = p
	}
}

// WithTrigger exposes the trigger manager.
func WithTrigger(t TriggerService) Option {
	return func(s *Server) {
		s.trigger = t
	}
}

// NewServer builds the router. Routes whose backing service was not provided
// answer 503.
func NewServer(cfg Config, log logger.Logger, opts ...Option) *Server {
	cfg.ApplyDefaults()

	s := &Server{
		router: mux.NewRouter(),
		config: cfg,
		logger: log,
	}

	for _, o := range opts {
		o(s)
	}

	s.setupRoutes()

	return s
}

// Handler returns the routed handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return srHttp.CommonMiddleware(next, s.config.CORS, s.logger)
	})

	s.router.HandleFunc("/health", s.getHealth).Methods(http.MethodGet)

	v1 := s.router.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/remote/status", s.getRemoteStatus).Methods(http.MethodGet)
	v1.HandleFunc("/remote/summary", s.getSummary).Methods(http.MethodGet)
	v1.HandleFunc("/remote/complete-status", s.getCompleteStatus).Methods(http.MethodGet)
	v1.HandleFunc("/remote/cache/clear", s.clearCache).Methods(http.MethodPost)
	v1.HandleFunc("/remote/config", s.getRemoteConfig).Methods(http.MethodGet)
	v1.HandleFunc("/remote/config", s.updateRemoteConfig).Methods(http.MethodPut)
	v1.HandleFunc("/remote/summary/config", s.getSummaryConfig).Methods(http.MethodGet)
	v1.HandleFunc("/remote/summary/config", s.updateSummaryConfig).Methods(http.MethodPut)

	v1.HandleFunc("/poller/status", s.getPollerStatus).Methods(http.MethodGet)
	v1.HandleFunc("/poller/events", s.getPendingEvents).Methods(http.MethodGet)
	v1.HandleFunc("/poller/config", s.getPollerConfig).Methods(http.MethodGet)
	v1.HandleFunc("/poller/config", s.updatePollerConfig).Methods(http.MethodPut)

	v1.HandleFunc("/trigger/status", s.getTriggerStatus).Methods(http.MethodGet)
	v1.HandleFunc("/trigger/scan", s.manualScan).Methods(http.MethodPost)
	v1.HandleFunc("/trigger/config", s.getTriggerConfig).Methods(http.MethodGet)
	v1.HandleFunc("/trigger/config", s.updateTriggerConfig).Methods(http.MethodPut)
}

// Start binds the listen address and serves in the background. Bind errors
// are returned; serve errors after that are logged.
func (s *Server) Start(_ context.Context) error {
	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	s.mu.Lock()
	s.srv = srv
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Reporting API listening")

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("Reporting API stopped unexpectedly")
		}
	}()

	return nil
}

// Addr reports the bound address once started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// Stop shuts the server down gracefully within ctx.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	return srv.Shutdown(ctx)
}
