package domain

import "errors"

// Erros da camada de coordenação e do glue HTTP.
//
// RateLimited é resultado de política, não falha; DuplicatePrincipal não
// existe de propósito — recriar a sessão de um principal sobrescreve a
// anterior e isso é comportamento documentado.
var (
	ErrStoreUnavailable   = errors.New("store unavailable")   // 500
	ErrRateLimited        = errors.New("rate limited")        // 429
	ErrParseFailure       = errors.New("parse failure")       // descartado no relay
	ErrNotFound           = errors.New("not found")           // 404
	ErrDuplicateEmail     = errors.New("duplicate email")     // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 400
	ErrUnauthorized       = errors.New("unauthorized")        // 401
)
