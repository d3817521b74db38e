// Package relay é o assinante de longa duração que dobra os eventos de
// escrita do repositório (employee:add|update|delete) em uma única entrada
// "última notificação" com TTL próprio.
//
// Garantia assumidamente fraca: last write wins sob entrega concorrente,
// no máximo uma entrega por processo assinante, nada entre canais. O
// propósito é "tem algo novo para mostrar", não trilha de auditoria.
package relay

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"employee-backend/cache"
	"employee-backend/domain"
)

const DefaultNotificationTTL = 300 * time.Second

type Relay struct {
	kv  cache.Store
	ttl time.Duration
	log *logrus.Entry

	ctx context.Context
}

func New(kv cache.Store, ttl time.Duration, log *logrus.Logger) *Relay {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Relay{
		kv:  kv,
		ttl: ttl,
		log: log.WithField("component", "relay"),
	}
}

// Start registra a assinatura nos três canais fixos e processa mensagens
// até o ctx encerrar. O erro de Start é só de inscrição; depois disso nada
// derruba o listener — payload ruim é logado e descartado, escrita falhada
// é logada e descartada (os publicadores são fire-and-forget e não recebem
// confirmação de nada).
func (r *Relay) Start(ctx context.Context) error {
	r.ctx = ctx
	return r.kv.Subscribe(ctx, r.handle,
		domain.ChannelEmployeeAdd,
		domain.ChannelEmployeeUpdate,
		domain.ChannelEmployeeDelete,
	)
}

func (r *Relay) handle(channel, payload string) {
	var msg domain.EventMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		r.log.WithError(err).WithField("channel", channel).Warn("discarding unparseable event")
		return
	}

	note := domain.Notification{
		Name:       msg.Name,
		Email:      msg.Email,
		Department: msg.Department,
		Type:       strings.TrimPrefix(channel, "employee:"),
	}
	b, err := json.Marshal(note)
	if err != nil {
		r.log.WithError(err).Warn("could not encode notification")
		return
	}

	ctx, cancel := context.WithTimeout(r.ctx, 2*time.Second)
	defer cancel()
	// sobrescreve incondicionalmente o que estiver lá
	if err := r.kv.Set(ctx, domain.LatestNotificationKey, string(b), r.ttl); err != nil {
		r.log.WithError(err).Warn("notification write failed")
	}
}

// Latest devolve a notificação mais recente, ou nil quando não há nenhuma —
// ausência (inclusive por TTL vencido) é estado normal do sistema.
func (r *Relay) Latest(ctx context.Context) (*domain.Notification, error) {
	v, ok, err := r.kv.Get(ctx, domain.LatestNotificationKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var note domain.Notification
	if err := json.Unmarshal([]byte(v), &note); err != nil {
		return nil, domain.ErrParseFailure
	}
	return &note, nil
}
