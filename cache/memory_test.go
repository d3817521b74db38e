package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemory_SetGetAndExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("expected hit with v, got (%q, %v, %v)", v, ok, err)
	}

	time.Sleep(20 * time.Millisecond)

	_, ok, err = m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if ok {
		t.Fatalf("expected key to expire")
	}
}

func TestMemory_IncrPreservesTTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Incr(ctx, "c"); err != nil {
		t.Fatalf("incr: %v", err)
	}
	if err := m.Expire(ctx, "c", time.Hour); err != nil {
		t.Fatalf("expire: %v", err)
	}
	n, err := m.Incr(ctx, "c")
	if err != nil {
		t.Fatalf("incr: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}

	m.mu.Lock()
	ent := m.entries["c"]
	m.mu.Unlock()
	if ent.expiresAt.IsZero() {
		t.Fatalf("expected TTL to survive INCR")
	}
}

func TestMemory_ConcurrentIncr(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := m.Incr(ctx, "c"); err != nil {
				t.Errorf("incr: %v", err)
			}
		}()
	}
	wg.Wait()

	v, ok, _ := m.Get(ctx, "c")
	if !ok || v != "100" {
		t.Fatalf("expected 100, got (%q, %v)", v, ok)
	}
}

func TestMemory_PubSubDelivers(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 1)
	if err := m.Subscribe(ctx, func(_, payload string) { got <- payload }, "ch"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := m.Publish(ctx, "ch", "hello"); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case p := <-got:
		if p != "hello" {
			t.Fatalf("expected hello, got %q", p)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestMemory_PublishToOtherChannelNotDelivered(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 1)
	if err := m.Subscribe(ctx, func(_, payload string) { got <- payload }, "ch"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := m.Publish(ctx, "other", "nope"); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case p := <-got:
		t.Fatalf("unexpected delivery: %q", p)
	case <-time.After(50 * time.Millisecond):
	}
}
