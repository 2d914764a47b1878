package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestLimiter_AdmitsUpToLimit(t *testing.T) {
	l := New(300*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	for i := 0; i < 5; i++ {
		if !l.Admit("1.2.3.4", now) {
			t.Fatalf("request %d should be admitted", i+1)
		}
	}
	if l.Admit("1.2.3.4", now) {
		t.Error("6th request within the window should be rejected")
	}
}

func TestLimiter_RejectionDoesNotCount(t *testing.T) {
	l := New(300*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	for i := 0; i < 5; i++ {
		l.Admit("1.2.3.4", now)
	}
	// Hammering after rejection must not extend the block beyond the window.
	for i := 0; i < 10; i++ {
		if l.Admit("1.2.3.4", now) {
			t.Fatal("request over limit should be rejected")
		}
	}
	later := now.Add(6 * time.Minute)
	if !l.Admit("1.2.3.4", later) {
		t.Error("request after the window expired should be admitted")
	}
}

func TestLimiter_WindowExpiry(t *testing.T) {
	l := New(300*time.Second, 5)
	start := time.Unix(1_700_000_000, 0)

	for i := 0; i < 5; i++ {
		if !l.Admit("9.9.9.9", start) {
			t.Fatalf("request %d should be admitted", i+1)
		}
	}
	if l.Admit("9.9.9.9", start.Add(time.Minute)) {
		t.Error("6th request one minute later should still be rejected")
	}
	if !l.Admit("9.9.9.9", start.Add(7*time.Minute)) {
		t.Error("request well past the window should be admitted")
	}
}

func TestLimiter_PerKeyIsolation(t *testing.T) {
	l := New(300*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	for client := 0; client < 5; client++ {
		key := fmt.Sprintf("10.0.0.%d", client)
		for i := 0; i < 5; i++ {
			if !l.Admit(key, now) {
				t.Fatalf("client %s request %d should be admitted", key, i+1)
			}
		}
	}
	// Each client is now at its own limit.
	for client := 0; client < 5; client++ {
		key := fmt.Sprintf("10.0.0.%d", client)
		if l.Admit(key, now) {
			t.Errorf("client %s should be rejected at its own limit", key)
		}
	}
}

func TestLimiter_ConcurrentSameKeyNoOvershoot(t *testing.T) {
	l := New(300*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Admit("race", now) {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 5 {
		t.Errorf("expected exactly 5 admissions under concurrency, got %d", admitted)
	}
}

func TestLimiter_LazyPrune(t *testing.T) {
	l := New(300*time.Second, 5)
	start := time.Unix(1_700_000_000, 0)

	l.Admit("3.3.3.3", start)
	l.Admit("3.3.3.3", start.Add(time.Minute))

	// Long after the window, both old buckets must be dropped on the next check.
	l.Admit("3.3.3.3", start.Add(time.Hour))

	l.mu.Lock()
	buckets := len(l.clients["3.3.3.3"])
	l.mu.Unlock()
	if buckets != 1 {
		t.Errorf("expected stale buckets to be pruned, got %d buckets", buckets)
	}
}
