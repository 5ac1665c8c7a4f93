package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// AuthService implements login and password changes.
type AuthService struct {
	users    ports.UserRepository
	settings ports.SettingsRepository
	tokens   ports.TokenStore
}

func NewAuthService(users ports.UserRepository, settings ports.SettingsRepository, tokens ports.TokenStore) *AuthService {
	return &AuthService{users: users, settings: settings, tokens: tokens}
}

// Login authenticates a user and returns an opaque bearer token. The
// username lookup is two-step: exact match first, then an upper-cased
// fallback so inconsistently cased student IDs still resolve. While the
// site is in maintenance mode only the superuser may log in.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user, err = s.users.FindByUsername(ctx, strings.ToUpper(username))
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, err
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.MaintenanceMode && !user.IsSuperuser {
		return nil, domain.ErrMaintenanceMode
	}

	role := user.EffectiveRole()
	token, err := s.tokens.Issue(ctx, ports.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		Token:    token,
		Username: user.Username,
		Role:     role,
		Name:     user.Name,
	}, nil
}

// ChangePassword verifies the old password and stores a fresh hash.
func (s *AuthService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	if input.NewPassword == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user.PasswordHash = string(hash)
	user.PasswordChangedAt = &now

	return s.users.Update(ctx, user)
}
