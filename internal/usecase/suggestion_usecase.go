package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ISuggestionUseCase proposes a technician for an order being drafted.
// The answer is advisory and never checked against the roster.

type ISuggestionUseCase interface {
	Suggest(ctx context.Context, service, city, state string) (entities.Suggestion, error)
}

type SuggestionUseCase struct {
	suggester interfaces.ITechnicianSuggester
	logger    *zap.Logger
}

var _ ISuggestionUseCase = (*SuggestionUseCase)(nil)

// NewSuggestionUseCase accepts a nil suggester when no helper is configured.
func NewSuggestionUseCase(suggester interfaces.ITechnicianSuggester, logger *zap.Logger) *SuggestionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuggestionUseCase{suggester: suggester, logger: logger.Named("suggestion.usecase")}
}

func (u *SuggestionUseCase) Suggest(ctx context.Context, service, city, state string) (entities.Suggestion, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		verr := newValidationError()
		verr.add("service", "Título do serviço é obrigatório.")
		return entities.Suggestion{}, verr
	}
	if u.suggester == nil {
		return entities.Suggestion{}, ErrSuggestionUnavailable
	}

	s, err := u.suggester.Suggest(ctx, service, strings.TrimSpace(city), strings.TrimSpace(state))
	if err != nil {
		u.logger.Warn("technician suggestion failed", zap.String("service", service), zap.Error(err))
		return entities.Suggestion{}, fmt.Errorf("%w: %w", ErrSuggestionUnavailable, err)
	}
	return s, nil
}
