// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package httpx provides bounded HTTP body reading for JSON API
// responses. The capability service returns small JSON documents; the
// bound exists so a misbehaving server cannot exhaust client memory.
// Not for streaming or bulk transfers, which should be read
// incrementally.
package httpx

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodySize caps JSON response body reads at 8 MB. The full
// capability snapshot for even an implausibly large practice fits in
// a fraction of this; the limit only matters when the server is
// broken.
const MaxBodySize int64 = 8 << 20

// ReadBody reads a JSON API response body up to MaxBodySize bytes.
// Use instead of io.ReadAll on HTTP response bodies.
func ReadBody(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxBodySize))
}

// DecodeBody reads a JSON API response body (bounded) and decodes it
// into v.
func DecodeBody(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxBodySize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}
