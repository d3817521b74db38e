// Package session mantém o registro "última credencial emitida" por
// principal, com expiração absoluta no substrato compartilhado.
//
// O registro não valida nem revoga credenciais — a validade do token vem da
// assinatura/expiração embutidas (auth/token). Logout é descarte do lado do
// cliente; a entrada aqui existe como trilha para uma futura imposição de
// sessão única por usuário.
package session

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"employee-backend/cache"
	"employee-backend/domain"
)

const DefaultTTL = 24 * time.Hour

type Registry struct {
	kv  cache.Store
	ttl time.Duration
	log *logrus.Entry
}

func NewRegistry(kv cache.Store, ttl time.Duration, log *logrus.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		kv:  kv,
		ttl: ttl,
		log: log.WithField("component", "session"),
	}
}

// Create grava a credencial sob session:<principalID> com TTL fixo definido
// na criação (não renovado no uso), sobrescrevendo incondicionalmente
// qualquer entrada anterior — é assim que a sessão antiga é invalidada.
// Falha do substrato aqui é falha dura: sem registro, a autenticação não
// deve prosseguir.
func (r *Registry) Create(ctx context.Context, principalID, credential string) error {
	if err := r.kv.Set(ctx, domain.SessionKey(principalID), credential, r.ttl); err != nil {
		return err
	}
	r.log.WithField("principal", principalID).Debug("session recorded")
	return nil
}

// Last devolve a última credencial emitida para o principal, se ainda viva.
// Não é consultada no caminho de leitura das requisições.
func (r *Registry) Last(ctx context.Context, principalID string) (string, bool, error) {
	return r.kv.Get(ctx, domain.SessionKey(principalID))
}
