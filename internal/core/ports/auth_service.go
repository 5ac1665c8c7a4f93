package ports

import "context"

// Principal identifies an authenticated caller for the lifetime of a token.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenStore issues and resolves opaque bearer tokens. A user holds at most
// one live token: Issue returns the existing one when present.
type TokenStore interface {
	Issue(ctx context.Context, p Principal) (string, error)
	Resolve(ctx context.Context, token string) (*Principal, error)
	Revoke(ctx context.Context, userID uint) error
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string
	Username string
	Role     string
	Name     string
}

// ChangePasswordInput carries an authenticated password change request.
type ChangePasswordInput struct {
	Username    string
	OldPassword string
	NewPassword string
}

// AuthService implements login and credential changes.
type AuthService interface {
	// Login resolves the user by exact username, then by an upper-cased
	// fallback, verifies the password, and issues or reuses a token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
