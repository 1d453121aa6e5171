// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockAfterFiresOnAdvance(t *testing.T) {
	clock := Fake(epoch)
	ch := clock.After(3 * time.Second)

	select {
	case <-ch:
		t.Fatal("After fired before Advance")
	default:
	}

	clock.Advance(3 * time.Second)

	select {
	case got := <-ch:
		if !got.Equal(epoch.Add(3 * time.Second)) {
			t.Fatalf("fire time = %v", got)
		}
	default:
		t.Fatal("After did not fire after Advance")
	}
}

func TestFakeClockAfterImmediate(t *testing.T) {
	clock := Fake(epoch)
	for _, d := range []time.Duration{0, -time.Second} {
		select {
		case <-clock.After(d):
		default:
			t.Fatalf("After(%v) should fire immediately", d)
		}
	}
	if clock.PendingCount() != 0 {
		t.Fatalf("PendingCount = %d, want 0", clock.PendingCount())
	}
}

func TestFakeClockAdvanceShortOfDeadline(t *testing.T) {
	clock := Fake(epoch)
	ch := clock.After(10 * time.Second)

	clock.Advance(9 * time.Second)
	select {
	case <-ch:
		t.Fatal("fired one second early")
	default:
	}

	clock.Advance(time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("did not fire at the deadline")
	}
}

func TestFakeClockAdvancePastMultipleDeadlines(t *testing.T) {
	clock := Fake(epoch)
	late := clock.After(8 * time.Second)
	early := clock.After(2 * time.Second)

	clock.Advance(10 * time.Second)

	// Both waiters fire on the single advance and observe the
	// post-advance time, not their own deadline.
	want := epoch.Add(10 * time.Second)
	select {
	case got := <-early:
		if !got.Equal(want) {
			t.Fatalf("early fire time = %v, want %v", got, want)
		}
	default:
		t.Fatal("early waiter did not fire")
	}
	select {
	case got := <-late:
		if !got.Equal(want) {
			t.Fatalf("late fire time = %v, want %v", got, want)
		}
	default:
		t.Fatal("late waiter did not fire")
	}
}

func TestFakeClockSleepBlocksUntilAdvance(t *testing.T) {
	clock := Fake(epoch)
	woke := make(chan struct{})

	go func() {
		clock.Sleep(5 * time.Second)
		close(woke)
	}()

	clock.WaitForWaiters(1)
	select {
	case <-woke:
		t.Fatal("Sleep returned before Advance")
	default:
	}

	clock.Advance(5 * time.Second)
	select {
	case <-woke:
	case <-time.After(5 * time.Second):
		t.Fatal("Sleep did not wake after Advance")
	}
}

func TestFakeClockSleepZeroReturnsImmediately(t *testing.T) {
	clock := Fake(epoch)
	done := make(chan struct{})
	go func() {
		clock.Sleep(0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Sleep(0) blocked")
	}
}

func TestFakeClockWaitForWaiters(t *testing.T) {
	clock := Fake(epoch)

	go clock.Sleep(time.Second)
	go clock.Sleep(2 * time.Second)

	clock.WaitForWaiters(2)
	if got := clock.PendingCount(); got != 2 {
		t.Fatalf("PendingCount = %d, want 2", got)
	}

	clock.Advance(2 * time.Second)
	if got := clock.PendingCount(); got != 0 {
		t.Fatalf("PendingCount after Advance = %d, want 0", got)
	}
}

func TestRealClockDelegates(t *testing.T) {
	clock := Real()
	before := time.Now()
	now := clock.Now()
	if now.Before(before.Add(-time.Minute)) || now.After(before.Add(time.Minute)) {
		t.Fatalf("Real().Now() = %v, far from %v", now, before)
	}

	select {
	case <-clock.After(time.Millisecond):
	case <-time.After(5 * time.Second):
		t.Fatal("Real().After never fired")
	}
}
