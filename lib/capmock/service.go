// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package capmock is an in-memory stand-in for the capability
// service. It implements the service's REST contract exactly — same
// routes, same success and error response shapes — and enforces the
// server-side rules clients trust: capability existence, non-blank
// emails, and no duplicate registrations.
//
// The roster-mock-service binary wires it behind a TCP listener for
// development; integration tests mount Handler directly.
package capmock

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/clock"
)

// Config seeds and tunes the mock.
type Config struct {
	// Seed is the initial roster. The zero value serves an empty
	// capability object.
	Seed capability.Snapshot

	// Latency is a fixed delay applied to every request before any
	// other handling. Zero disables it.
	Latency time.Duration

	// Clock drives the latency delay. Defaults to the real clock.
	Clock clock.Clock

	// Logger receives diagnostic records. Defaults to slog.Default().
	Logger *slog.Logger
}

// Service holds the mock's in-memory state. All handlers mutate
// through the snapshot's derive operations under one mutex, so the
// duplicate check and the registration it guards are atomic — clients
// are entitled to rely on that (they never pre-check for duplicates).
type Service struct {
	mu       sync.Mutex
	snapshot capability.Snapshot

	latency time.Duration
	clock   clock.Clock
	logger  *slog.Logger
}

// New builds a mock service holding cfg.Seed.
func New(cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		snapshot: cfg.Seed,
		latency:  cfg.Latency,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
}

// Handler builds the service's request mux. Method-qualified patterns
// give the standard 405 for wrong-method requests on known paths.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /capabilities", s.handleList)
	mux.HandleFunc("POST /capabilities/{capability}/register", s.handleRegister)
	mux.HandleFunc("DELETE /capabilities/{capability}/unregister", s.handleUnregister)
	return mux
}

// handleList serves the full capability snapshot. The response object's
// key order is the seed order — clients render capabilities in the
// order the service reports them.
func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	s.applyLatency()

	s.mu.Lock()
	snapshot := s.snapshot
	s.mu.Unlock()

	s.writeJSON(w, snapshot)
}

// handleRegister adds an email to a capability's consultant roster.
func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.applyLatency()

	name := r.PathValue("capability")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		s.sendDetail(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.snapshot.Get(name)
	if !ok {
		s.sendDetail(w, http.StatusNotFound, "unknown capability: %s", name)
		return
	}
	if slices.Contains(entry.Consultants, email) {
		s.sendDetail(w, http.StatusConflict, "%s is already registered for %s", email, name)
		return
	}

	derived, err := s.snapshot.WithConsultant(name, email)
	if err != nil {
		s.sendDetail(w, http.StatusNotFound, "unknown capability: %s", name)
		return
	}
	s.snapshot = derived

	s.logger.Info("consultant registered", "capability", name, "email", email)
	s.writeJSON(w, map[string]string{
		"message": fmt.Sprintf("Registered %s for %s", email, name),
	})
}

// handleUnregister removes an email from a capability's consultant
// roster.
func (s *Service) handleUnregister(w http.ResponseWriter, r *http.Request) {
	s.applyLatency()

	name := r.PathValue("capability")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		s.sendDetail(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.snapshot.Get(name)
	if !ok {
		s.sendDetail(w, http.StatusNotFound, "unknown capability: %s", name)
		return
	}
	if !slices.Contains(entry.Consultants, email) {
		s.sendDetail(w, http.StatusNotFound, "%s is not registered for %s", email, name)
		return
	}

	derived, err := s.snapshot.WithoutConsultant(name, email)
	if err != nil {
		s.sendDetail(w, http.StatusNotFound, "unknown capability: %s", name)
		return
	}
	s.snapshot = derived

	s.logger.Info("consultant unregistered", "capability", name, "email", email)
	s.writeJSON(w, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// applyLatency sleeps for the configured per-request delay. The clock
// is injected so tests drive the delay deterministically.
func (s *Service) applyLatency() {
	if s.latency > 0 {
		s.clock.Sleep(s.latency)
	}
}

// sendDetail writes the service's error shape: a non-2xx status with
// {"detail": ...}. Clients display the detail text verbatim.
func (s *Service) sendDetail(w http.ResponseWriter, status int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"detail": fmt.Sprintf(format, args...),
	}); err != nil {
		s.logger.Warn("writing JSON error response", "error", err, "status", status)
	}
}

// writeJSON encodes value as JSON into w, setting the Content-Type
// header. If encoding fails (typically because the client
// disconnected), the error is logged — the caller cannot send a
// corrective response to a dead client.
func (s *Service) writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		s.logger.Warn("writing JSON response", "error", err)
	}
}
