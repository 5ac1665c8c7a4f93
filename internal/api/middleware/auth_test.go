package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

type stubTokenStore struct {
	tokens map[string]ports.Principal
}

func (s *stubTokenStore) Issue(_ context.Context, p ports.Principal) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenStore) Resolve(_ context.Context, token string) (*ports.Principal, error) {
	p, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &p, nil
}

func (s *stubTokenStore) Revoke(_ context.Context, _ uint) error { return nil }

func callAuth(t *testing.T, store ports.TokenStore, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Auth(store)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, h(c)
}

func TestAuth_ValidToken(t *testing.T) {
	store := &stubTokenStore{tokens: map[string]ports.Principal{
		"tok-1": {UserID: 7, Username: "N180001", Role: domain.RoleStudent},
	}}

	c, err := callAuth(t, store, "Bearer tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := c.Get("username").(string); got != "N180001" {
		t.Fatalf("username = %q, want N180001", got)
	}
	if got, _ := c.Get("role").(string); got != domain.RoleStudent {
		t.Fatalf("role = %q, want student", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := callAuth(t, &stubTokenStore{}, "")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_UnknownToken(t *testing.T) {
	_, err := callAuth(t, &stubTokenStore{tokens: map[string]ports.Principal{}}, "Bearer nope")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := callAuth(t, &stubTokenStore{}, "Token abc")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
