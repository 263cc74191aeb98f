package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	DefaultResetTTL   = time.Hour

	minUserNameLength = 3
	minPasswordLength = 6
	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
)

type AuthConfig struct {
	SessionTTL time.Duration
	ResetTTL   time.Duration
	BcryptCost int
}

// IAuthUseCase is the identity service: accounts, sessions and password resets.

type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (entities.User, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	sessions interfaces.ISessionStore
	notifier interfaces.IResetNotifier
	cfg      AuthConfig
	logger   *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	sessions interfaces.ISessionStore,
	notifier interfaces.IResetNotifier,
	cfg AuthConfig,
	logger *zap.Logger,
) *AuthUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = DefaultResetTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUseCase{users: users, sessions: sessions, notifier: notifier, cfg: cfg, logger: logger.Named("auth.usecase")}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	verr := newValidationError()
	if utf8.RuneCountInString(name) < minUserNameLength {
		verr.add("name", "O nome deve ter pelo menos 3 caracteres.")
	}
	if !validEmail(email) {
		verr.add("email", "E-mail inválido.")
	}
	validatePassword(password, verr)
	if err := verr.orNil(); err != nil {
		return entities.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cfg.BcryptCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	acc, err := u.users.Create(ctx, entities.Account{
		User:         entities.User{Name: name, Email: email},
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.User{}, ErrEmailInUse
	}
	if err != nil {
		return entities.User{}, storeErr(err)
	}

	u.logger.Info("account registered", zap.String("email", acc.Email))
	return acc.User, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = normalizeEmail(email)

	verr := newValidationError()
	if !validEmail(email) {
		verr.add("email", "E-mail inválido.")
	}
	if password == "" {
		verr.add("password", "Senha é obrigatória.")
	}
	if err := verr.orNil(); err != nil {
		return entities.Session{}, err
	}

	acc, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.Session{}, storeErr(err)
	}
	if acc.Email == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return entities.Session{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := u.sessions.Save(ctx, token, acc.User, u.cfg.SessionTTL); err != nil {
		return entities.Session{}, storeErr(err)
	}
	return entities.Session{
		Token:     token,
		User:      acc.User,
		ExpiresAt: time.Now().UTC().Add(u.cfg.SessionTTL),
	}, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return storeErr(u.sessions.Delete(ctx, token))
}

func (u *AuthUseCase) CurrentUser(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrUnauthenticated
	}

	user, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.User{}, storeErr(err)
	}
	if user.Name == "" {
		return entities.User{}, ErrUnauthenticated
	}
	return user, nil
}

// ResetPassword issues a one-time token for a known account. Unknown emails
// succeed silently so the endpoint cannot be used to enumerate accounts.
func (u *AuthUseCase) ResetPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !validEmail(email) {
		verr := newValidationError()
		verr.add("email", "E-mail inválido.")
		return verr
	}

	acc, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return storeErr(err)
	}
	if acc.Email == "" {
		return nil
	}

	token := uuid.NewString()
	if err := u.sessions.SaveResetToken(ctx, token, acc.Email, u.cfg.ResetTTL); err != nil {
		return storeErr(err)
	}
	if u.notifier != nil {
		if err := u.notifier.NotifyPasswordReset(ctx, acc.Email, token); err != nil {
			u.logger.Error("failed to deliver password reset", zap.String("email", acc.Email), zap.Error(err))
		}
	}
	return nil
}

func (u *AuthUseCase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	verr := newValidationError()
	validatePassword(newPassword, verr)
	if err := verr.orNil(); err != nil {
		return err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidResetToken
	}
	email, err := u.sessions.ConsumeResetToken(ctx, token)
	if err != nil {
		return storeErr(err)
	}
	if email == "" {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), u.cfg.BcryptCost)
	if err != nil {
		return err
	}
	acc, err := u.users.UpdatePassword(ctx, email, string(hash))
	if err != nil {
		return storeErr(err)
	}
	if acc.Email == "" {
		return ErrInvalidResetToken
	}

	u.logger.Info("password reset", zap.String("email", email))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validatePassword(password string, verr *ValidationError) {
	switch {
	case utf8.RuneCountInString(password) < minPasswordLength:
		verr.add("password", "A senha deve ter pelo menos 6 caracteres.")
	case len(password) > maxPasswordBytes:
		verr.add("password", "A senha deve ter no máximo 72 bytes.")
	}
}
