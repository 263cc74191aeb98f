package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"
)

type UserMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Account
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{items: map[string]entities.Account{}}
}

func (r *UserMemoryRepository) Create(_ context.Context, a entities.Account) (entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.Email = strings.ToLower(a.Email)
	if _, exists := r.items[a.Email]; exists {
		return entities.Account{}, interfaces.ErrAlreadyExists
	}
	r.items[a.Email] = a
	return a, nil
}

func (r *UserMemoryRepository) GetByEmail(_ context.Context, email string) (entities.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[strings.ToLower(email)], nil
}

func (r *UserMemoryRepository) UpdatePassword(_ context.Context, email, passwordHash string) (entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(email)
	a, ok := r.items[email]
	if !ok {
		return entities.Account{}, nil
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = time.Now().UTC()
	r.items[email] = a
	return a, nil
}
