// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package httpx

import (
	"strings"
	"testing"
)

func TestReadBodyBounded(t *testing.T) {
	oversized := strings.NewReader(strings.Repeat("x", int(MaxBodySize)+1024))
	data, err := ReadBody(oversized)
	if err != nil {
		t.Fatalf("ReadBody: %v", err)
	}
	if int64(len(data)) != MaxBodySize {
		t.Errorf("read %d bytes, want cap at %d", len(data), MaxBodySize)
	}
}

func TestDecodeBody(t *testing.T) {
	var decoded struct {
		Message string `json:"message"`
	}
	if err := DecodeBody(strings.NewReader(`{"message": "ok"}`), &decoded); err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	if decoded.Message != "ok" {
		t.Errorf("Message = %q, want ok", decoded.Message)
	}
}

func TestDecodeBodyMalformed(t *testing.T) {
	var decoded map[string]any
	if err := DecodeBody(strings.NewReader(`{"trunc`), &decoded); err == nil {
		t.Fatal("expected decode error")
	}
}
