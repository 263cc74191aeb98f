package interfaces

import (
	"context"
	"errors"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

var (
	// ErrAlreadyExists is returned by Create when the primary key is taken.
	ErrAlreadyExists = errors.New("item already exists")
	// ErrConditionFailed is returned when the item exists but a patch
	// precondition (expected status or assignee) does not hold.
	ErrConditionFailed = errors.New("precondition failed")
)

// IOrderRepository abstracts persistence for Order.
//
// Lookups return a zero Order (ID == "") when the id is unknown.
// Every Update is a single conditional write.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByAssignee(ctx context.Context, name string) ([]entities.Order, error)
	Update(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
