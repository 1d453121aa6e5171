// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package capstore owns the client-side capability state. A Store
// holds the latest immutable snapshot fetched from the capability
// service, applies register/unregister mutations through an injected
// service client, and publishes every state change to subscribers.
//
// The store is safe for concurrent use. Reads never block behind
// in-flight writes; mutations against the same capability are
// serialized so that overlapping writes cannot lose each other's
// updates; mutations against different capabilities proceed
// independently.
package capstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/clock"
)

// Client is the slice of the capability service the store consumes.
// *capservice.Client satisfies it; tests substitute fakes.
type Client interface {
	FetchCapabilities(ctx context.Context) (capability.Snapshot, error)
	RegisterConsultant(ctx context.Context, name, email string) (string, error)
	UnregisterConsultant(ctx context.Context, name, email string) (string, error)
}

// EventKind classifies a state change published to subscribers.
type EventKind string

const (
	// EventRefresh is a wholesale snapshot replacement from a fetch.
	EventRefresh EventKind = "refresh"

	// EventRegister is a consultant appended to one capability.
	EventRegister EventKind = "register"

	// EventUnregister is a consultant removed from one capability.
	EventUnregister EventKind = "unregister"
)

// Event describes one state change. Snapshot is the store state after
// the change. Capability and Email are set for mutation events and
// empty for refreshes.
type Event struct {
	Kind       EventKind
	Capability string
	Email      string
	Snapshot   capability.Snapshot
}

// eventBuffer is the per-subscriber channel capacity. A subscriber
// that falls this many events behind starts missing events; the
// snapshot carried by later events always reflects the newest state,
// so a slow subscriber converges on its next receive.
const eventBuffer = 64

// Config carries the store's collaborators.
type Config struct {
	// Client performs the service requests. Required.
	Client Client

	// Logger receives diagnostic records. Defaults to slog.Default().
	Logger *slog.Logger

	// Clock schedules auto-refresh and stamps update times. Defaults
	// to the real clock.
	Clock clock.Clock
}

// Store is the owned state object handed to the UI. The zero snapshot
// is empty until the first Refresh.
type Store struct {
	client Client
	logger *slog.Logger
	clk    clock.Clock

	// mu guards current, lastUpdated, and subscribers. Snapshot swaps
	// and the matching event publishes happen under one lock hold so
	// subscribers observe changes in apply order.
	mu          sync.RWMutex
	current     capability.Snapshot
	lastUpdated time.Time
	subscribers []chan Event

	// locksMu guards keyLocks. Each capability name gets its own
	// mutex, held across a mutation's service request and local apply.
	locksMu  sync.Mutex
	keyLocks map[string]*sync.Mutex
}

// New builds a store around a service client.
func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("capstore: Config.Client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real()
	}
	return &Store{
		client:   cfg.Client,
		logger:   cfg.Logger,
		clk:      cfg.Clock,
		keyLocks: make(map[string]*sync.Mutex),
	}, nil
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() capability.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LastUpdated returns when the snapshot last changed. Zero until the
// first successful refresh or mutation.
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Subscribe registers a listener for state changes. The returned
// channel is buffered; event dispatch never blocks, so a subscriber
// that stops draining misses events rather than stalling writers. The
// channel is never closed.
func (s *Store) Subscribe() <-chan Event {
	ch := make(chan Event, eventBuffer)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}

// Refresh fetches the full snapshot from the service and replaces the
// stored one wholesale. On failure the stored snapshot is untouched
// and the error is returned for the caller to surface.
func (s *Store) Refresh(ctx context.Context) (capability.Snapshot, error) {
	snapshot, err := s.client.FetchCapabilities(ctx)
	if err != nil {
		s.logger.Debug("capability fetch failed", "error", err)
		return capability.Snapshot{}, err
	}

	s.mu.Lock()
	s.current = snapshot
	s.lastUpdated = s.clk.Now()
	s.publishLocked(Event{Kind: EventRefresh, Snapshot: snapshot})
	s.mu.Unlock()

	return snapshot, nil
}

// Register adds email to the named capability's roster via the
// service, then mirrors the append into the local snapshot. Returns
// the server's success message. On any service failure the local
// snapshot is untouched and the error is returned; duplicate checking
// is the server's job, the client never pre-checks.
func (s *Store) Register(ctx context.Context, name, email string) (string, error) {
	unlock := s.lockKey(name)
	defer unlock()

	message, err := s.client.RegisterConsultant(ctx, name, email)
	if err != nil {
		return "", err
	}
	if !s.apply(EventRegister, name, email) {
		s.resync(ctx, name)
	}
	return message, nil
}

// Unregister removes email from the named capability's roster via the
// service, then mirrors the removal into the local snapshot. Every
// occurrence of the email is removed. Returns the server's success
// message.
func (s *Store) Unregister(ctx context.Context, name, email string) (string, error) {
	unlock := s.lockKey(name)
	defer unlock()

	message, err := s.client.UnregisterConsultant(ctx, name, email)
	if err != nil {
		return "", err
	}
	if !s.apply(EventUnregister, name, email) {
		s.resync(ctx, name)
	}
	return message, nil
}

// apply derives the post-mutation snapshot from the latest stored one
// and swaps it in. Reading s.current inside the lock hold is what
// keeps an interleaved refresh or other-key mutation from being
// overwritten. Returns false when the capability is missing locally.
func (s *Store) apply(kind EventKind, name, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next capability.Snapshot
	var err error
	switch kind {
	case EventRegister:
		next, err = s.current.WithConsultant(name, email)
	case EventUnregister:
		next, err = s.current.WithoutConsultant(name, email)
	default:
		return false
	}
	if err != nil {
		return false
	}

	s.current = next
	s.lastUpdated = s.clk.Now()
	s.publishLocked(Event{Kind: kind, Capability: name, Email: email, Snapshot: next})
	return true
}

// resync refetches the full snapshot after the server accepted a
// mutation for a capability the local snapshot does not know about.
// The mutation itself succeeded, so resync failures are logged rather
// than returned; the snapshot heals on the next successful refresh.
func (s *Store) resync(ctx context.Context, name string) {
	s.logger.Warn("capability missing from local snapshot, refreshing",
		"capability", name,
	)
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Warn("resync refresh failed", "error", err)
	}
}

// publishLocked fans the event out to every subscriber without
// blocking. Must be called with s.mu held.
func (s *Store) publishLocked(event Event) {
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// lockKey acquires the named capability's mutation lock and returns
// the unlock function. Locks are created on first use and kept for
// the store's lifetime; the set of capability names is small.
func (s *Store) lockKey(name string) func() {
	s.locksMu.Lock()
	lock, ok := s.keyLocks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.keyLocks[name] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
