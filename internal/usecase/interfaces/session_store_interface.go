package interfaces

import (
	"context"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

// ISessionStore keeps login sessions and password reset tokens with a TTL.
//
// Get returns a zero User and ConsumeResetToken an empty email when the
// token is unknown or expired.
type ISessionStore interface {
	Save(ctx context.Context, token string, user entities.User, ttl time.Duration) error
	Get(ctx context.Context, token string) (entities.User, error)
	Delete(ctx context.Context, token string) error
	SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}
