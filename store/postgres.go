package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-backend/domain"
)

const pgUniqueViolation = "23505"

// Postgres implementa os dois repositórios sobre um pool pgx.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Migrate cria as tabelas se ainda não existem. Uma instrução por Exec:
// o protocolo estendido do pgx não aceita comandos múltiplos.
func (p *Postgres) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id    uuid PRIMARY KEY,
			name  text NOT NULL,
			email text NOT NULL UNIQUE,
			pass_hash text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id         uuid PRIMARY KEY,
			name       text NOT NULL,
			email      text NOT NULL,
			department text NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, email, department FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) Add(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO employees (id, name, email, department) VALUES ($1, $2, $3, $4)`,
		e.ID, e.Name, e.Email, e.Department)
	if err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

func (p *Postgres) Update(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	tag, err := p.pool.Exec(ctx,
		`UPDATE employees SET name = $2, email = $3, department = $4 WHERE id = $1`,
		e.ID, e.Name, e.Email, e.Department)
	if err != nil {
		return domain.Employee{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.Employee{}, domain.ErrNotFound
	}
	return e, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) (domain.Employee, error) {
	row := p.pool.QueryRow(ctx,
		`DELETE FROM employees WHERE id = $1 RETURNING id, name, email, department`, id)
	var e domain.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, domain.ErrNotFound
		}
		return domain.Employee{}, err
	}
	return e, nil
}

func (p *Postgres) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, pass_hash) VALUES ($1, $2, lower($3), $4)`,
		u.ID, u.Name, u.Email, u.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.User{}, domain.ErrDuplicateEmail
		}
		return domain.User{}, err
	}
	return u, nil
}

func (p *Postgres) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, name, email, pass_hash FROM users WHERE email = lower($1)`, email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
