package repository

import (
	"context"
	"sync"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"
)

type EmployeeMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Employee
}

var _ interfaces.IEmployeeRepository = (*EmployeeMemoryRepository)(nil)

func NewEmployeeMemoryRepository() *EmployeeMemoryRepository {
	return &EmployeeMemoryRepository{items: map[string]entities.Employee{}}
}

func (r *EmployeeMemoryRepository) Create(_ context.Context, e entities.Employee) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := e.Key()
	if _, exists := r.items[key]; exists {
		return entities.Employee{}, interfaces.ErrAlreadyExists
	}
	r.items[key] = e
	return e, nil
}

func (r *EmployeeMemoryRepository) GetByName(_ context.Context, name string) (entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[entities.EmployeeKey(name)], nil
}

func (r *EmployeeMemoryRepository) Delete(_ context.Context, name string) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entities.EmployeeKey(name)
	e, ok := r.items[key]
	if !ok {
		return entities.Employee{}, nil
	}
	delete(r.items, key)
	return e, nil
}

func (r *EmployeeMemoryRepository) List(_ context.Context) ([]entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Employee, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e)
	}
	return out, nil
}
