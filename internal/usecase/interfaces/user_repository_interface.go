package interfaces

import (
	"context"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

// IUserRepository persists accounts keyed by lower-case email.

type IUserRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (entities.Account, error)
}
