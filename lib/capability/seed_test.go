// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"os"
	"path/filepath"
	"testing"
)

const seedFixture = `{
	// Offerings used by the development mock service.
	"Data Migration": {
		"description": "Lift-and-shift and re-platforming work.",
		"practice_area": "Cloud",
		"capacity": 20,
		"consultants": ["a@x.com"], // trailing comma below is fine
	},
	"API Design": {
		"description": "Contract-first API programs.",
		"practice_area": "Engineering",
		"consultants": [],
	},
}`

func TestParseSeedStripsComments(t *testing.T) {
	snapshot, err := ParseSeed([]byte(seedFixture))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if snapshot.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", snapshot.Len())
	}
	names := snapshot.Names()
	if names[0] != "Data Migration" || names[1] != "API Design" {
		t.Errorf("Names() = %v", names)
	}
}

func TestParseSeedValidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"duplicate consultant", `{"X": {"consultants": ["a@x.com", "a@x.com"]}}`},
		{"blank capability name", `{"  ": {"consultants": []}}`},
		{"negative capacity", `{"X": {"capacity": -5, "consultants": []}}`},
		{"not an object", `["X"]`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseSeed([]byte(test.input)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestReadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.jsonc")
	if err := os.WriteFile(path, []byte(seedFixture), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	snapshot, err := ReadSeedFile(path)
	if err != nil {
		t.Fatalf("ReadSeedFile: %v", err)
	}
	if !snapshot.Has("API Design") {
		t.Error("seed file contents missing from snapshot")
	}
}

func TestReadSeedFileMissing(t *testing.T) {
	_, err := ReadSeedFile(filepath.Join(t.TempDir(), "absent.jsonc"))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
}
