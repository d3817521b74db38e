package application

import (
	"context"
	"time"

	"employee-backend/middleware/ratelimit/domain"
)

// Service concentra a regra de aplicação do throttle.
//
// Ele não sabe nada sobre HTTP (headers/status), apenas devolve uma decisão.
// Erro do Admitter sobe intacto: sem uma decisão de admissão consistente a
// requisição não pode prosseguir.
type Service struct {
	Admitter   domain.Admitter
	RetryAfter time.Duration
}

func (s Service) Decide(ctx context.Context, key domain.Key) (domain.Decision, error) {
	if s.Admitter == nil {
		return domain.Decision{Allowed: true}, nil
	}

	dec, err := s.Admitter.Admit(ctx, key)
	if err != nil {
		return domain.Decision{}, err
	}
	if !dec.Allowed && dec.RetryAfter <= 0 {
		if s.RetryAfter > 0 {
			dec.RetryAfter = s.RetryAfter
		} else {
			dec.RetryAfter = 1 * time.Second
		}
	}
	return dec, nil
}
