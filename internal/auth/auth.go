package auth

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type Authenticator interface {
	GenerateTokens(userID int64, role string) (string, string, error)
	GenerateAccessToken(userID int64, role string) (string, error)
	ValidateAccessToken(token string) (*Claims, error)
	ValidateRefreshToken(token string) (*Claims, error)
}

// Claims is the payload shared by access and refresh tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID decodes the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}
