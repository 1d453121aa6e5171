// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capmock

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"testing"
	"time"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/clock"
	"github.com/roster-works/roster/lib/testutil"
)

// testSeed is a minimal fixture with a known shape: one populated
// roster, one empty, and a comment to exercise JSONC parsing.
const testSeed = `{
	// two offerings, seed order meaningful
	"Cloud Migration": {
		"description": "Lift and shift.",
		"practice_area": "Cloud",
		"consultants": ["ines.walker@example.com"],
	},
	"Data Engineering": {
		"description": "Pipelines.",
		"practice_area": "Data & AI",
		"consultants": [],
	},
}`

func newTestService(t *testing.T) *Service {
	t.Helper()
	snapshot, err := capability.ParseSeed([]byte(testSeed))
	if err != nil {
		t.Fatalf("parsing test seed: %v", err)
	}
	return New(Config{
		Seed:   snapshot,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func registerPath(name, email string) string {
	return "/capabilities/" + url.PathEscape(name) + "/register?" + url.Values{"email": {email}}.Encode()
}

func unregisterPath(name, email string) string {
	return "/capabilities/" + url.PathEscape(name) + "/unregister?" + url.Values{"email": {email}}.Encode()
}

func doRequest(t *testing.T, service *Service, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	service.Handler().ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func decodeDetail(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding error body %q: %v", recorder.Body.String(), err)
	}
	return payload.Detail
}

func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding success body %q: %v", recorder.Body.String(), err)
	}
	return payload.Message
}

// fetchState reads the service's current snapshot through the public
// GET route, the same way a client would.
func fetchState(t *testing.T, service *Service) capability.Snapshot {
	t.Helper()
	recorder := doRequest(t, service, http.MethodGet, "/capabilities")
	if recorder.Code != http.StatusOK {
		t.Fatalf("GET /capabilities status = %d, want 200", recorder.Code)
	}
	snapshot, err := capability.DecodeSnapshot(recorder.Body.Bytes())
	if err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	return snapshot
}

func TestDefaultSnapshot(t *testing.T) {
	snapshot, err := DefaultSnapshot()
	if err != nil {
		t.Fatalf("built-in seed must parse: %v", err)
	}
	if snapshot.Len() == 0 {
		t.Fatal("built-in seed is empty")
	}
	// At least one offering must start with an empty roster so the
	// empty-roster placeholder is visible against the default seed.
	hasEmpty := false
	for _, name := range snapshot.Names() {
		entry, _ := snapshot.Get(name)
		if len(entry.Consultants) == 0 {
			hasEmpty = true
		}
	}
	if !hasEmpty {
		t.Error("built-in seed should include an offering with no consultants")
	}
}

func TestListCapabilities(t *testing.T) {
	service := newTestService(t)

	recorder := doRequest(t, service, http.MethodGet, "/capabilities")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}

	snapshot, err := capability.DecodeSnapshot(recorder.Body.Bytes())
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	wantNames := []string{"Cloud Migration", "Data Engineering"}
	if !slices.Equal(snapshot.Names(), wantNames) {
		t.Errorf("names = %v, want %v (seed order)", snapshot.Names(), wantNames)
	}
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodPost, registerPath("Data Engineering", "amara.sy@example.com"))
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", recorder.Code, recorder.Body)
		}
		message := decodeMessage(t, recorder)
		if message != "Registered amara.sy@example.com for Data Engineering" {
			t.Errorf("message = %q", message)
		}

		entry, _ := fetchState(t, service).Get("Data Engineering")
		if !slices.Equal(entry.Consultants, []string{"amara.sy@example.com"}) {
			t.Errorf("consultants = %v", entry.Consultants)
		}
	})

	t.Run("appends in registration order", func(t *testing.T) {
		service := newTestService(t)

		for _, email := range []string{"b@example.com", "a@example.com"} {
			recorder := doRequest(t, service, http.MethodPost, registerPath("Cloud Migration", email))
			if recorder.Code != http.StatusOK {
				t.Fatalf("registering %s: status = %d", email, recorder.Code)
			}
		}

		entry, _ := fetchState(t, service).Get("Cloud Migration")
		want := []string{"ines.walker@example.com", "b@example.com", "a@example.com"}
		if !slices.Equal(entry.Consultants, want) {
			t.Errorf("consultants = %v, want %v", entry.Consultants, want)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodPost, registerPath("Cloud Migration", "ines.walker@example.com"))
		if recorder.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", recorder.Code)
		}
		detail := decodeDetail(t, recorder)
		if detail != "ines.walker@example.com is already registered for Cloud Migration" {
			t.Errorf("detail = %q", detail)
		}

		// State unchanged.
		entry, _ := fetchState(t, service).Get("Cloud Migration")
		if len(entry.Consultants) != 1 {
			t.Errorf("consultants = %v, want the original single entry", entry.Consultants)
		}
	})

	t.Run("unknown capability", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodPost, registerPath("Quantum Computing", "a@example.com"))
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", recorder.Code)
		}
		if detail := decodeDetail(t, recorder); detail != "unknown capability: Quantum Computing" {
			t.Errorf("detail = %q", detail)
		}
	})

	t.Run("missing email parameter", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodPost, "/capabilities/Cloud%20Migration/register")
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", recorder.Code)
		}
	})

	t.Run("whitespace email", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodPost, registerPath("Cloud Migration", "   "))
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", recorder.Code)
		}
	})
}

func TestUnregister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodDelete, unregisterPath("Cloud Migration", "ines.walker@example.com"))
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", recorder.Code, recorder.Body)
		}
		message := decodeMessage(t, recorder)
		if message != "Unregistered ines.walker@example.com from Cloud Migration" {
			t.Errorf("message = %q", message)
		}

		entry, _ := fetchState(t, service).Get("Cloud Migration")
		if len(entry.Consultants) != 0 {
			t.Errorf("consultants = %v, want empty", entry.Consultants)
		}
	})

	t.Run("email not registered", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodDelete, unregisterPath("Cloud Migration", "nobody@example.com"))
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", recorder.Code)
		}
		if detail := decodeDetail(t, recorder); detail != "nobody@example.com is not registered for Cloud Migration" {
			t.Errorf("detail = %q", detail)
		}
	})

	t.Run("unknown capability", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodDelete, unregisterPath("Quantum Computing", "a@example.com"))
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", recorder.Code)
		}
	})

	t.Run("missing email parameter", func(t *testing.T) {
		service := newTestService(t)

		recorder := doRequest(t, service, http.MethodDelete, "/capabilities/Cloud%20Migration/unregister")
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", recorder.Code)
		}
	})
}

func TestWrongMethod(t *testing.T) {
	service := newTestService(t)

	recorder := doRequest(t, service, http.MethodGet, registerPath("Cloud Migration", "a@example.com"))
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET on register route: status = %d, want 405", recorder.Code)
	}

	recorder = doRequest(t, service, http.MethodPost, "/capabilities")
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST on list route: status = %d, want 405", recorder.Code)
	}
}

func TestLatencyDelaysResponses(t *testing.T) {
	snapshot, err := capability.ParseSeed([]byte(testSeed))
	if err != nil {
		t.Fatalf("parsing test seed: %v", err)
	}
	fakeClock := clock.Fake(time.Unix(0, 0))
	service := New(Config{
		Seed:    snapshot,
		Latency: 500 * time.Millisecond,
		Clock:   fakeClock,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		recorder := httptest.NewRecorder()
		service.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/capabilities", nil))
		done <- recorder
	}()

	// The handler must be parked in the latency sleep, not responding.
	fakeClock.WaitForWaiters(1)
	testutil.RequireNoReceive(t, done, 50*time.Millisecond, "response arrived before latency elapsed")

	fakeClock.Advance(500 * time.Millisecond)
	recorder := testutil.RequireReceive(t, done, 5*time.Second, "response after latency elapsed")
	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", recorder.Code)
	}
}
