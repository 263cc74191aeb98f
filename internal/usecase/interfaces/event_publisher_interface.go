package interfaces

import (
	"context"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

// IEventPublisher feeds the new-order notification channel.
type IEventPublisher interface {
	PublishOrderCreated(ctx context.Context, e entities.OrderCreatedEvent) error
}

// IResetNotifier delivers password reset tokens to the account owner.
type IResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, email, token string) error
}
