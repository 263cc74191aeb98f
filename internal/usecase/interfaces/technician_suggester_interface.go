package interfaces

import (
	"context"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

// ITechnicianSuggester asks an external helper for an advisory technician.
type ITechnicianSuggester interface {
	Suggest(ctx context.Context, service, city, state string) (entities.Suggestion, error)
}
