// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// ParseSeed parses a seed fixture into a snapshot. Fixtures are
// hand-edited, so the format is JSONC: the JSON object shape the
// service would return from GET /capabilities, extended with // line
// comments, /* block comments */, and trailing commas. Every record
// is validated; the live service's output is trusted, seed files are
// not.
func ParseSeed(data []byte) (Snapshot, error) {
	snapshot, err := DecodeSnapshot(jsonc.ToJSON(data))
	if err != nil {
		return Snapshot{}, fmt.Errorf("parsing seed: %w", err)
	}
	for _, name := range snapshot.names {
		if strings.TrimSpace(name) == "" {
			return Snapshot{}, errors.New("parsing seed: blank capability name")
		}
		entry := snapshot.byName[name]
		if err := entry.Validate(); err != nil {
			return Snapshot{}, fmt.Errorf("parsing seed: %q: %w", name, err)
		}
	}
	return snapshot, nil
}

// ReadSeedFile reads and parses a JSONC seed file from disk.
func ReadSeedFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading %s: %w", path, err)
	}
	snapshot, err := ParseSeed(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snapshot, nil
}
