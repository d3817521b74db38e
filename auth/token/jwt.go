// Package token emite e verifica as credenciais bearer (JWT HS256) com
// expiração embutida. É o colaborador externo do registro de sessões:
// entra identidade do principal, sai string assinada e datada; a validação
// de requisições usa só o que está embutido no token, nunca o registro.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"employee-backend/domain"
)

const DefaultTTL = 24 * time.Hour

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue assina uma credencial para o principal com validade embutida.
func (m *Manager) Issue(principalID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   principalID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify valida assinatura e expiração e devolve o principal (subject).
func (m *Manager) Verify(credential string) (string, error) {
	tok, err := jwt.ParseWithClaims(credential, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", domain.ErrUnauthorized
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
