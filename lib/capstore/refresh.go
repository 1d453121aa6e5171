// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capstore

import (
	"context"
	"fmt"
	"time"
)

// RunAutoRefresh refreshes the snapshot on a fixed schedule until ctx
// is cancelled, then returns ctx.Err(). A failed refresh is logged and
// the loop waits for the next tick; there is no backoff and no retry.
// Each interval is measured from the completion of the previous
// refresh, so refreshes never overlap.
func (s *Store) RunAutoRefresh(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("capstore: auto-refresh interval must be positive, got %v", interval)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.clk.After(interval):
			if _, err := s.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Warn("auto-refresh failed", "error", err, "interval", interval)
			}
		}
	}
}
