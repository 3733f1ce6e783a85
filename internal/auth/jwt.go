package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTAuthenticator struct {
	secret        string
	refreshSecret string
	aud           string
	iss           string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewJWTAuthenticator(secret, refreshSecret, aud, iss string, accessTTL, refreshTTL time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret:        secret,
		refreshSecret: refreshSecret,
		aud:           aud,
		iss:           iss,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// GenerateTokens generates both access and refresh tokens
func (a *JWTAuthenticator) GenerateTokens(userID int64, role string) (string, string, error) {
	accessToken, err := a.GenerateAccessToken(userID, role)
	if err != nil {
		return "", "", err
	}

	refreshClaims := a.claims(userID, role, a.refreshTTL)
	// Two refresh tokens issued within the same second must still differ.
	refreshClaims.ID = uuid.NewString()

	refreshToken, err := a.generateTokenWithClaims(refreshClaims, a.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (a *JWTAuthenticator) GenerateAccessToken(userID int64, role string) (string, error) {
	return a.generateTokenWithClaims(a.claims(userID, role, a.accessTTL), a.secret)
}

func (a *JWTAuthenticator) claims(userID int64, role string, ttl time.Duration) *Claims {
	now := a.now()
	c := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    a.iss,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if a.aud != "" {
		c.Audience = jwt.ClaimStrings{a.aud}
	}
	return c
}

func (a *JWTAuthenticator) generateTokenWithClaims(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateAccessToken validates the access token
func (a *JWTAuthenticator) ValidateAccessToken(token string) (*Claims, error) {
	return a.parse(token, a.secret)
}

// ValidateRefreshToken validates the refresh token
func (a *JWTAuthenticator) ValidateRefreshToken(token string) (*Claims, error) {
	return a.parse(token, a.refreshSecret)
}

func (a *JWTAuthenticator) parse(token, secret string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.now),
	}
	if a.iss != "" {
		opts = append(opts, jwt.WithIssuer(a.iss))
	}
	if a.aud != "" {
		opts = append(opts, jwt.WithAudience(a.aud))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
