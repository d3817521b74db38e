package domain

// Camada de domínio do throttle de admissão.
//
// Regras e contratos (interfaces/tipos) sem dependência de net/http.

import (
	"context"
	"time"
)

type Key string

// Admitter decide se uma admissão da chave pode passar agora.
//
// Erro aqui é falha de infraestrutura (substrato fora do ar), não rejeição —
// rejeição é Decision{Allowed: false}. Implementações: janela fixa por chave
// no substrato compartilhado (a de produção, distribuída) ou token-bucket
// local em memória para processo único.
type Admitter interface {
	Admit(ctx context.Context, key Key) (Decision, error)
}

type Decision struct {
	Allowed bool
	// RetryAfter é o valor a ser retornado em Retry-After quando bloquear.
	// Se 0, não há recomendação.
	RetryAfter time.Duration
}
