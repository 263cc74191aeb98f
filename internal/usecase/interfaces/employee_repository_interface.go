package interfaces

import (
	"context"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

// IEmployeeRepository abstracts persistence for the technician roster.
//
// Entries are keyed by entities.EmployeeKey, so Create fails with
// ErrAlreadyExists for names differing only in case.

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByName(ctx context.Context, name string) (entities.Employee, error)
	Delete(ctx context.Context, name string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
}
