package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"employee-backend/analytics"
	"employee-backend/auth/password"
	"employee-backend/domain"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		h.Log.WithError(err).Error("password hash failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := h.Users.Create(r.Context(), domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.Log.WithError(err).Error("user create failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.issueAndRespond(w, r, user, analytics.ActionRegisters, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	user, err := h.authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.Log.WithError(err).Error("user lookup failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.issueAndRespond(w, r, user, analytics.ActionLogins, http.StatusOK)
}

// authenticate não distingue "email desconhecido" de "senha errada" para o
// chamador: ambos viram ErrInvalidCredentials e a mesma resposta.
func (h *Handler) authenticate(ctx context.Context, email, pass string) (domain.User, error) {
	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if !password.Verify(user.PasswordHash, pass) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

// issueAndRespond fecha o fluxo de autenticação: assina a credencial,
// registra a sessão (falha dura — sem registro consistente a autenticação
// não prossegue) e anota o contador (melhor esforço).
func (h *Handler) issueAndRespond(w http.ResponseWriter, r *http.Request, user domain.User, action string, status int) {
	cred, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Log.WithError(err).Error("credential signing failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.Sessions.Create(r.Context(), user.ID, cred); err != nil {
		h.Log.WithError(err).Error("session create failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.track(r.Context(), action)

	respondJSON(w, status, authResponse{
		User:  userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		Token: cred,
	})
}

// requireAuth valida a credencial embutida (assinatura + expiração); o
// registro de sessões não é consultado no caminho de leitura.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
		if raw == "" {
			respondError(w, http.StatusUnauthorized, "missing credentials")
			return
		}
		if _, err := h.Tokens.Verify(raw); err != nil {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}
