package repository

import (
	"context"
	"sync"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps orders in process memory. It backs the
// "memory" store driver and the use case tests; callers always get copies.
type OrderMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{items: map[string]entities.Order{}}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[o.ID]; exists {
		return entities.Order{}, interfaces.ErrAlreadyExists
	}
	r.items[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[id]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *OrderMemoryRepository) ListByAssignee(_ context.Context, name string) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.Order
	for _, o := range r.items {
		if name != "" && o.AssignedTo == name {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *OrderMemoryRepository) Update(_ context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return entities.Order{}, nil
	}
	if patch.ExpectStatus != nil && current.Status != *patch.ExpectStatus {
		return entities.Order{}, interfaces.ErrConditionFailed
	}
	if patch.ExpectAssignedTo != nil && current.AssignedTo != *patch.ExpectAssignedTo {
		return entities.Order{}, interfaces.ErrConditionFailed
	}

	updated := patch.Apply(current)
	r.items[id] = updated
	return cloneOrder(updated), nil
}

func (r *OrderMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func cloneOrder(o entities.Order) entities.Order {
	if o.Certificate != nil {
		a := *o.Certificate
		o.Certificate = &a
	}
	if o.Image != nil {
		a := *o.Image
		o.Image = &a
	}
	return o
}
