package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"employee-backend/domain"
)

type MemoryEmployees struct {
	mu   sync.RWMutex
	byID map[string]domain.Employee
}

func NewMemoryEmployees() *MemoryEmployees {
	return &MemoryEmployees{byID: make(map[string]domain.Employee)}
}

func (m *MemoryEmployees) List(context.Context) ([]domain.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Employee, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryEmployees) Add(_ context.Context, e domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	m.byID[e.ID] = e
	return e, nil
}

func (m *MemoryEmployees) Update(_ context.Context, e domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[e.ID]; !ok {
		return domain.Employee{}, domain.ErrNotFound
	}
	m.byID[e.ID] = e
	return e, nil
}

func (m *MemoryEmployees) Delete(_ context.Context, id string) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return domain.Employee{}, domain.ErrNotFound
	}
	delete(m.byID, id)
	return e, nil
}

type MemoryUsers struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{byEmail: make(map[string]domain.User)}
}

func (m *MemoryUsers) Create(_ context.Context, u domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email := strings.ToLower(u.Email)
	if _, ok := m.byEmail[email]; ok {
		return domain.User{}, domain.ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.byEmail[email] = u
	return u, nil
}

func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}
