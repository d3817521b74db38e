package infra

import (
	"context"
	"testing"
	"time"
)

func TestBucketStore_SameKeyReturnsSameLimiter(t *testing.T) {
	s := NewBucketStore(10, 1)

	l1 := s.limiter("k")
	l2 := s.limiter("k")
	if l1 != l2 {
		t.Fatalf("expected same limiter pointer for same key")
	}
}

func TestBucketStore_LowBurstRejectsSecondImmediateAdmit(t *testing.T) {
	s := NewBucketStore(0.02, 1)
	ctx := context.Background()

	dec, err := s.Admit(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("expected first admit to pass")
	}

	dec, err = s.Admit(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Allowed {
		t.Fatalf("expected second immediate admit to be rejected (burst=1)")
	}
}

func TestBucketStore_CleanupRemovesIdleEntries(t *testing.T) {
	s := NewBucketStore(10, 1, WithIdleTTL(2*time.Millisecond), WithCleanupEvery(0))

	before := s.limiter("k")
	time.Sleep(4 * time.Millisecond)

	s.Cleanup()

	after := s.limiter("k")
	if before == after {
		t.Fatalf("expected limiter to be recreated after cleanup")
	}
}
