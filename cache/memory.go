package cache

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Memory é a implementação em memória do Store, para testes e
// desenvolvimento. Reproduz a semântica observável do Redis no que os
// protocolos usam: TTL preservado por INCR, ausência após expirar,
// pub/sub sem garantia de entrega (assinante lento perde mensagem).
type Memory struct {
	mu      sync.Mutex
	entries map[string]memEntry
	subs    []*memSub
}

type memEntry struct {
	value     string
	expiresAt time.Time // zero = sem expiração
}

type memSub struct {
	channels map[string]struct{}
	msgs     chan memMsg
}

type memMsg struct {
	channel string
	payload string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memEntry)}
}

func (m *Memory) get(key string) (memEntry, bool) {
	ent, ok := m.entries[key]
	if !ok {
		return memEntry{}, false
	}
	if !ent.expiresAt.IsZero() && time.Now().After(ent.expiresAt) {
		delete(m.entries, key)
		return memEntry{}, false
	}
	return ent, true
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ent, ok := m.get(key)
	if !ok {
		return "", false, nil
	}
	return ent.value, true, nil
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ent := memEntry{value: value}
	if ttl > 0 {
		ent.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = ent
	return nil
}

func (m *Memory) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ent, ok := m.get(key)
	var n int64
	if ok {
		n, _ = strconv.ParseInt(ent.value, 10, 64)
	}
	n++
	ent.value = strconv.FormatInt(n, 10)
	m.entries[key] = ent
	return n, nil
}

func (m *Memory) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ent, ok := m.get(key)
	if !ok {
		return nil
	}
	ent.expiresAt = time.Now().Add(ttl)
	m.entries[key] = ent
	return nil
}

func (m *Memory) Publish(_ context.Context, channel, payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sub := range m.subs {
		if _, ok := sub.channels[channel]; !ok {
			continue
		}
		select {
		case sub.msgs <- memMsg{channel: channel, payload: payload}:
		default:
			// assinante lento: mensagem descartada, como no pub/sub real
		}
	}
	return nil
}

func (m *Memory) Subscribe(ctx context.Context, handler Handler, channels ...string) error {
	sub := &memSub{
		channels: make(map[string]struct{}, len(channels)),
		msgs:     make(chan memMsg, 64),
	}
	for _, ch := range channels {
		sub.channels[ch] = struct{}{}
	}

	m.mu.Lock()
	m.subs = append(m.subs, sub)
	m.mu.Unlock()

	go func() {
		defer m.removeSub(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-sub.msgs:
				handler(msg.channel, msg.payload)
			}
		}
	}()
	return nil
}

func (m *Memory) removeSub(sub *memSub) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subs {
		if s == sub {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return
		}
	}
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
