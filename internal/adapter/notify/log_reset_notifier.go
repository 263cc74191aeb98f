package notify

import (
	"context"

	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogResetNotifier writes reset tokens to the log. It stands in for e-mail
// delivery, which this service does not do.
type LogResetNotifier struct {
	logger *zap.Logger
}

var _ interfaces.IResetNotifier = (*LogResetNotifier)(nil)

func NewLogResetNotifier(logger *zap.Logger) *LogResetNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogResetNotifier{logger: logger.Named("reset")}
}

func (n *LogResetNotifier) NotifyPasswordReset(_ context.Context, email, token string) error {
	n.logger.Info("password reset requested", zap.String("email", email), zap.String("token", token))
	return nil
}
