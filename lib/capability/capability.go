// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package capability defines the domain schema for the capability
// service: the Capability record and the immutable Snapshot that maps
// capability names to records.
//
// A Snapshot is never mutated in place. Reads hand out copies; write
// operations (WithConsultant, WithoutConsultant) derive a new Snapshot
// that shares every untouched entry with its parent. The fields are
// unexported so the compiler, not convention, enforces this.
//
// The capability service serializes the full state as a single JSON
// object keyed by capability name. JSON object key order is meaningful
// to the UI (the selector lists capabilities in server order), so the
// codec here preserves it: DecodeSnapshot walks the object tokens
// instead of unmarshaling into a Go map, and MarshalJSON writes the
// entries back in the same order.
package capability

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Capability describes one service offering: what it is, who practices
// it, and which consultants are registered against it.
type Capability struct {
	// Description is the human-readable summary of the offering.
	// Rendered as markdown in the detail pane.
	Description string `json:"description"`

	// PracticeArea is the practice this offering belongs to
	// (e.g., "Cloud", "Data & AI").
	PracticeArea string `json:"practice_area"`

	// IndustryVerticals lists the verticals the offering targets,
	// in service-defined order. Optional.
	IndustryVerticals []string `json:"industry_verticals,omitempty"`

	// Capacity is the offering's weekly capacity in hours. Optional;
	// zero means the service did not report one.
	Capacity int `json:"capacity,omitempty"`

	// Consultants is the roster of registered consultant emails, in
	// registration order. The service enforces uniqueness; the client
	// never deduplicates locally.
	Consultants []string `json:"consultants"`
}

// Validate checks a capability record for structural problems. Used
// when loading seed fixtures; records received from the live service
// are trusted as-is.
func (c *Capability) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capability: capacity must be >= 0, got %d", c.Capacity)
	}
	seen := make(map[string]struct{}, len(c.Consultants))
	for _, email := range c.Consultants {
		if strings.TrimSpace(email) == "" {
			return errors.New("capability: blank consultant email")
		}
		if _, duplicate := seen[email]; duplicate {
			return fmt.Errorf("capability: duplicate consultant %q", email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

// Snapshot is an immutable point-in-time view of every capability
// known to the service, in the order the service reported them.
//
// The zero value is the empty snapshot.
type Snapshot struct {
	names  []string
	byName map[string]Capability
}

// Len returns the number of capabilities in the snapshot.
func (s Snapshot) Len() int {
	return len(s.names)
}

// Names returns the capability names in snapshot order. The returned
// slice is a copy; callers may keep or modify it freely.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Get returns the capability with the given name. The returned struct
// is a copy; its slice fields still share backing arrays with the
// snapshot, so callers must not write through them.
func (s Snapshot) Get(name string) (Capability, bool) {
	entry, ok := s.byName[name]
	return entry, ok
}

// Has reports whether the snapshot contains a capability by that name.
func (s Snapshot) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// WithConsultant derives a new snapshot in which email is appended to
// the named capability's consultant roster. Every other entry is
// carried over unchanged, and the name order is preserved. No
// duplicate check is performed: the service response that triggered
// this derivation is authoritative.
//
// Returns an error if the snapshot has no capability by that name, in
// which case the receiver is unchanged and should be refreshed from
// the service.
func (s Snapshot) WithConsultant(name, email string) (Snapshot, error) {
	entry, ok := s.byName[name]
	if !ok {
		return Snapshot{}, fmt.Errorf("capability: no capability named %q", name)
	}
	consultants := make([]string, len(entry.Consultants)+1)
	copy(consultants, entry.Consultants)
	consultants[len(consultants)-1] = email
	entry.Consultants = consultants
	return s.replacing(name, entry), nil
}

// WithoutConsultant derives a new snapshot in which every occurrence
// of email (exact string equality) is removed from the named
// capability's consultant roster. Every other entry is carried over
// unchanged.
func (s Snapshot) WithoutConsultant(name, email string) (Snapshot, error) {
	entry, ok := s.byName[name]
	if !ok {
		return Snapshot{}, fmt.Errorf("capability: no capability named %q", name)
	}
	filtered := make([]string, 0, len(entry.Consultants))
	for _, existing := range entry.Consultants {
		if existing != email {
			filtered = append(filtered, existing)
		}
	}
	entry.Consultants = filtered
	return s.replacing(name, entry), nil
}

// replacing builds the derived snapshot: a fresh name→capability map
// with one entry swapped. The names slice is reused (order and backing
// array identical), and untouched Capability values are copied by
// value, so their slice fields keep pointing at the parent snapshot's
// backing arrays.
func (s Snapshot) replacing(name string, entry Capability) Snapshot {
	byName := make(map[string]Capability, len(s.byName))
	for key, value := range s.byName {
		byName[key] = value
	}
	byName[name] = entry
	return Snapshot{names: s.names, byName: byName}
}

// DecodeSnapshot parses the service's full-state JSON object,
// preserving the object's key order. Consultant lists decode to empty
// (never nil) slices so the snapshot re-encodes as [] rather than
// null.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	opening, err := decoder.Token()
	if err != nil {
		return Snapshot{}, fmt.Errorf("capability: decoding snapshot: %w", err)
	}
	if delim, ok := opening.(json.Delim); !ok || delim != '{' {
		return Snapshot{}, errors.New("capability: snapshot must be a JSON object")
	}

	snapshot := Snapshot{byName: make(map[string]Capability)}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return Snapshot{}, fmt.Errorf("capability: decoding snapshot key: %w", err)
		}
		// Inside an object, non-delimiter tokens at key position are
		// always strings.
		name := keyToken.(string)

		var entry Capability
		if err := decoder.Decode(&entry); err != nil {
			return Snapshot{}, fmt.Errorf("capability: decoding %q: %w", name, err)
		}
		if entry.Consultants == nil {
			entry.Consultants = []string{}
		}

		if _, duplicate := snapshot.byName[name]; duplicate {
			return Snapshot{}, fmt.Errorf("capability: duplicate capability name %q", name)
		}
		snapshot.names = append(snapshot.names, name)
		snapshot.byName[name] = entry
	}

	if _, err := decoder.Token(); err != nil {
		return Snapshot{}, fmt.Errorf("capability: decoding snapshot: %w", err)
	}
	return snapshot, nil
}

// MarshalJSON encodes the snapshot as a JSON object with the entries
// in snapshot order. The empty snapshot encodes as {}.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for index, name := range s.names {
		if index > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("capability: encoding name %q: %w", name, err)
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		value, err := json.Marshal(s.byName[name])
		if err != nil {
			return nil, fmt.Errorf("capability: encoding %q: %w", name, err)
		}
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}
