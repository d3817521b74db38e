package infra

import (
	"context"
	"time"

	"employee-backend/cache"
	appdomain "employee-backend/domain"
	"employee-backend/middleware/ratelimit/domain"
)

// WindowStore implementa janela fixa por chave sobre o substrato
// compartilhado: INCR no contador da janela e EXPIRE na primeira admissão.
//
// A janela de cada chave começa na primeira requisição daquela chave — não
// há alinhamento com o relógio, duas chaves nunca compartilham início de
// janela. Quando o TTL vence, o contador some e a próxima admissão abre
// janela nova.
type WindowStore struct {
	kv     cache.Store
	window time.Duration
	max    int64
}

func NewWindowStore(kv cache.Store, window time.Duration, max int64) *WindowStore {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 100
	}
	return &WindowStore{kv: kv, window: window, max: max}
}

func (s *WindowStore) Window() time.Duration { return s.window }
func (s *WindowStore) Max() int64            { return s.max }

// Admit conta a admissão e arma o TTL quando o contador acabou de nascer.
// Só a requisição que observa o valor 1 arma (INCR é atômico); rearmar com
// a mesma duração seria inofensivo de todo modo.
func (s *WindowStore) Admit(ctx context.Context, key domain.Key) (domain.Decision, error) {
	k := appdomain.ThrottleKey(string(key))

	n, err := s.kv.Incr(ctx, k)
	if err != nil {
		return domain.Decision{}, err
	}
	if n == 1 {
		if err := s.kv.Expire(ctx, k, s.window); err != nil {
			return domain.Decision{}, err
		}
	}

	if n > s.max {
		return domain.Decision{Allowed: false, RetryAfter: s.window}, nil
	}
	return domain.Decision{Allowed: true}, nil
}
