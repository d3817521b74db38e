// Package analytics mantém os contadores monotônicos de uso em
// analytics:<action>, sem TTL (vivem enquanto o cache viver).
//
// Escrita é melhor esforço: um incremento perdido nunca pode falhar a
// operação de negócio que ele anota. O erro é devolvido para o chamador
// descartar explicitamente com log — o contrato fica visível na interface,
// não escondido no fluxo de controle.
package analytics

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"employee-backend/cache"
	"employee-backend/domain"
)

const (
	ActionRegisters      = "registers"
	ActionLogins         = "logins"
	ActionGetEmployees   = "getEmployees"
	ActionAddEmployee    = "addEmployee"
	ActionUpdateEmployee = "updateEmployee"
	ActionDeleteEmployee = "deleteEmployee"
)

// Actions é o conjunto fixo de contadores; ReadAll devolve sempre todos.
var Actions = []string{
	ActionRegisters,
	ActionLogins,
	ActionGetEmployees,
	ActionAddEmployee,
	ActionUpdateEmployee,
	ActionDeleteEmployee,
}

type Counters struct {
	kv  cache.Store
	log *logrus.Entry
}

func NewCounters(kv cache.Store, log *logrus.Logger) *Counters {
	return &Counters{kv: kv, log: log.WithField("component", "analytics")}
}

// Record incrementa atomicamente analytics:<action>.
func (c *Counters) Record(ctx context.Context, action string) error {
	if _, err := c.kv.Incr(ctx, domain.AnalyticsKey(action)); err != nil {
		return err
	}
	return nil
}

// ReadAll devolve o valor de cada um dos seis contadores fixos, com zero
// para chaves ausentes. Ausência não é erro; só falha de transporte é.
func (c *Counters) ReadAll(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(Actions))
	for _, action := range Actions {
		v, ok, err := c.kv.Get(ctx, domain.AnalyticsKey(action))
		if err != nil {
			return nil, err
		}
		if !ok {
			out[action] = 0
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			// só o INCR escreve nessas chaves; valor estranho vira zero com aviso
			c.log.WithField("action", action).WithField("value", v).Warn("malformed counter value")
			n = 0
		}
		out[action] = n
	}
	return out, nil
}
