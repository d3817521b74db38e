package cache

import (
	"context"
	"time"
)

// Handler recebe cada mensagem entregue por uma assinatura.
// É chamado em ordem de chegada por canal; entre canais não há garantia.
type Handler func(channel, payload string)

// Store é o contrato do substrato. A implementação de produção é Redis;
// Memory existe para substituição em testes (mesma semântica observável).
type Store interface {
	// Get devolve (valor, true) ou ("", false) quando a chave não existe.
	// Ausência não é erro.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set grava o valor com TTL; ttl <= 0 significa sem expiração.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Incr incrementa atomicamente, criando a chave em zero se necessário,
	// e devolve o valor resultante.
	Incr(ctx context.Context, key string) (int64, error)

	// Expire (re)arma o TTL de uma chave existente.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Publish envia o payload para o canal. Fire-and-forget: sem assinante
	// conectado, a mensagem se perde e ninguém é avisado.
	Publish(ctx context.Context, channel, payload string) error

	// Subscribe registra o handler nos canais e processa mensagens em uma
	// goroutine até o ctx encerrar. Entrega no máximo uma vez por processo
	// assinante.
	Subscribe(ctx context.Context, handler Handler, channels ...string) error

	Ping(ctx context.Context) error
	Close() error
}
