package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bisame/internal/domain/tokens"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService couples the stateless authenticator with the refresh-token allow-list.
type TokenService struct {
	authenticator Authenticator
	store         tokens.Store
	refreshTTL    time.Duration
}

func NewTokenService(authenticator Authenticator, store tokens.Store, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		authenticator: authenticator,
		store:         store,
		refreshTTL:    refreshTTL,
	}
}

// Issue signs a new pair and registers the refresh token.
func (s *TokenService) Issue(ctx context.Context, userID int64, role string) (TokenPair, error) {
	access, refresh, err := s.authenticator.GenerateTokens(userID, role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate tokens: %w", err)
	}

	if err := s.store.Save(ctx, userID, tokens.Hash(refresh), time.Now().Add(s.refreshTTL)); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) VerifyAccess(token string) (*Claims, error) {
	return s.authenticator.ValidateAccessToken(token)
}

// Refresh exchanges a registered refresh token for a new access token carrying the same
// subject and role. The refresh token itself stays valid.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrInvalidRefreshToken
	}

	owner, err := s.store.Lookup(ctx, tokens.Hash(refreshToken))
	if err != nil {
		if errors.Is(err, tokens.ErrNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	claims, err := s.authenticator.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	userID, err := claims.UserID()
	if err != nil || userID != owner {
		return "", ErrInvalidRefreshToken
	}

	access, err := s.authenticator.GenerateAccessToken(userID, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return access, nil
}

// Revoke drops one refresh token. It must be registered and belong to userID.
func (s *TokenService) Revoke(ctx context.Context, userID int64, refreshToken string) error {
	if refreshToken == "" {
		return ErrInvalidRefreshToken
	}

	hash := tokens.Hash(refreshToken)
	owner, err := s.store.Lookup(ctx, hash)
	if err != nil {
		if errors.Is(err, tokens.ErrNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	if owner != userID {
		return ErrInvalidRefreshToken
	}

	return s.store.Revoke(ctx, hash)
}

// RevokeAll drops every refresh token held by the user.
func (s *TokenService) RevokeAll(ctx context.Context, userID int64) error {
	return s.store.RevokeAllForUser(ctx, userID)
}
