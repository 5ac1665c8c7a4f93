package redis

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// TokenStore keeps opaque bearer tokens in Redis, one live token per user.
// Key format:
//
//	token:<token>    → JSON-encoded principal
//	usertoken:<id>   → current token for that user
//
// Tokens do not expire; they live until revoked or the user's token is
// replaced.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Issue returns the user's existing token when one is live, otherwise mints
// a fresh one and records both directions of the binding.
func (s *TokenStore) Issue(ctx context.Context, p ports.Principal) (string, error) {
	existing, err := s.client.Get(ctx, s.userKey(p.UserID)).Result()
	if err == nil && existing != "" {
		return existing, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("token lookup: %w", err)
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.tokenKey(token), payload, 0)
	pipe.Set(ctx, s.userKey(p.UserID), token, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("token store: %w", err)
	}

	return token, nil
}

// Resolve maps a presented token back to its principal.
func (s *TokenStore) Resolve(ctx context.Context, token string) (*ports.Principal, error) {
	payload, err := s.client.Get(ctx, s.tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("token resolve: %w", err)
	}

	var p ports.Principal
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("token decode: %w", err)
	}
	return &p, nil
}

// Revoke drops a user's token and its reverse binding.
func (s *TokenStore) Revoke(ctx context.Context, userID uint) error {
	token, err := s.client.Get(ctx, s.userKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("token revoke: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.tokenKey(token))
	pipe.Del(ctx, s.userKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *TokenStore) tokenKey(token string) string {
	return "token:" + token
}

func (s *TokenStore) userKey(userID uint) string {
	return fmt.Sprintf("usertoken:%d", userID)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token generate: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
