// Package store contém os repositórios de registros (usuários e
// funcionários). Para a camada de coordenação eles são colaboradores
// externos: importam apenas como fonte de gatilho dos eventos employee:*.
//
// A implementação em memória é o padrão (e o dublê de teste); a Postgres
// entra quando DATABASE_URL está configurada.
package store

import (
	"context"

	"employee-backend/domain"
)

type EmployeeRepo interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Add(ctx context.Context, e domain.Employee) (domain.Employee, error)
	// Update troca o registro inteiro; domain.ErrNotFound se o id não existe.
	Update(ctx context.Context, e domain.Employee) (domain.Employee, error)
	// Delete devolve o registro removido (o payload do evento precisa dele).
	Delete(ctx context.Context, id string) (domain.Employee, error)
}

type UserRepo interface {
	// Create falha com domain.ErrDuplicateEmail se o email já existe.
	Create(ctx context.Context, u domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}
