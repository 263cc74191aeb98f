package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrOrderNotFound         = fmt.Errorf("order %w", ErrNotFound)
	ErrEmployeeNotFound      = fmt.Errorf("employee %w", ErrNotFound)
	ErrDuplicateName         = errors.New("employee name already exists")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrStoreUnavailable      = errors.New("store unavailable")
	ErrValidation            = errors.New("validation failed")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailInUse            = errors.New("email already in use")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")
	ErrSuggestionUnavailable = errors.New("technician suggestion unavailable")
)

// ValidationError carries one message per offending field.
// errors.Is(err, ErrValidation) holds for any *ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// orNil returns nil when no field failed so callers can return it directly.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func requireUser(user entities.User) (entities.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" {
		return entities.User{}, ErrUnauthenticated
	}
	return user, nil
}
