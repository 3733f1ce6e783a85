package tokens

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned for tokens that were never issued, have expired or were revoked.
	ErrNotFound          = errors.New("refresh token not found")
	QueryTimeoutDuration = time.Second * 5
)

// Store is the refresh-token allow-list. Only hashes of the raw tokens are kept.
type Store interface {
	Save(ctx context.Context, userID int64, hash string, expiresAt time.Time) error
	// Lookup returns the owner of an active token.
	Lookup(ctx context.Context, hash string) (int64, error)
	Revoke(ctx context.Context, hash string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// Pruner is implemented by backends that need expired rows removed explicitly.
type Pruner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Hash returns the hex SHA-256 of a raw refresh token.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
