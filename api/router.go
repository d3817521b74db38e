package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"employee-backend/analytics"
	"employee-backend/auth/token"
	"employee-backend/cache"
	"employee-backend/domain"
	"employee-backend/relay"
	"employee-backend/session"
	"employee-backend/store"
)

type Handler struct {
	Users     store.UserRepo
	Employees store.EmployeeRepo
	Sessions  *session.Registry
	Counters  *analytics.Counters
	Relay     *relay.Relay
	Tokens    *token.Manager
	Bus       cache.Store // lado de publish do substrato
	Log       *logrus.Logger
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.health).Methods(http.MethodGet)

	a := r.PathPrefix("/api/auth").Subrouter()
	a.HandleFunc("/register", h.register).Methods(http.MethodPost)
	a.HandleFunc("/login", h.login).Methods(http.MethodPost)

	e := r.PathPrefix("/api/employees").Subrouter()
	e.Use(h.requireAuth)
	e.HandleFunc("", h.listEmployees).Methods(http.MethodGet)
	e.HandleFunc("", h.addEmployee).Methods(http.MethodPost)
	e.HandleFunc("/{id}", h.updateEmployee).Methods(http.MethodPut)
	e.HandleFunc("/{id}", h.deleteEmployee).Methods(http.MethodDelete)

	s := r.PathPrefix("/api/stats").Subrouter()
	s.HandleFunc("", h.stats).Methods(http.MethodGet)
	s.HandleFunc("/notification", h.notification).Methods(http.MethodGet)

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "API is running..."})
}

// track anota a ação nos contadores de uso; falha é descartada com log,
// nunca propaga para a resposta.
func (h *Handler) track(ctx context.Context, action string) {
	if err := h.Counters.Record(ctx, action); err != nil {
		h.Log.WithError(err).WithField("action", action).Warn("analytics record failed")
	}
}

// publishEvent emite o evento de escrita para o relay. Fire-and-forget:
// sem assinante, a mensagem se perde; erro do substrato é só logado.
func (h *Handler) publishEvent(ctx context.Context, channel string, e domain.Employee) {
	b, err := json.Marshal(domain.EventMessage{Name: e.Name, Email: e.Email, Department: e.Department})
	if err != nil {
		h.Log.WithError(err).Warn("could not encode event")
		return
	}
	if err := h.Bus.Publish(ctx, channel, string(b)); err != nil {
		h.Log.WithError(err).WithField("channel", channel).Warn("event publish failed")
	}
}
