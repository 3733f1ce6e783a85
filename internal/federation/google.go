package federation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const GoogleIssuer = "https://accounts.google.com"

var (
	ErrMissingCode     = errors.New("missing authorization code")
	ErrMissingIDToken  = errors.New("missing id_token in token response")
	ErrUnverifiedEmail = errors.New("identity provider did not verify the email address")
)

// Profile is what the identity provider vouches for.
type Profile struct {
	ProviderID  string
	DisplayName string
	Email       string
}

// Provider drives the authorization-code flow against an external identity provider.
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	IssuerURL    string
}

type GoogleProvider struct {
	oauth2Config *oauth2.Config
	verifier     *oidc.IDTokenVerifier
}

// NewGoogleProvider discovers the issuer's endpoints and keys.
func NewGoogleProvider(ctx context.Context, cfg Config) (*GoogleProvider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("google client id and secret are required")
	}
	issuer := cfg.IssuerURL
	if issuer == "" {
		issuer = GoogleIssuer
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return newGoogleProvider(&oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}, provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})), nil
}

func newGoogleProvider(oauth2Config *oauth2.Config, verifier *oidc.IDTokenVerifier) *GoogleProvider {
	return &GoogleProvider{oauth2Config: oauth2Config, verifier: verifier}
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	if code == "" {
		return nil, ErrMissingCode
	}

	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, ErrMissingIDToken
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	var claims idClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %w", err)
	}
	claims.Subject = idToken.Subject

	return claims.profile()
}

type idClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func (c idClaims) profile() (*Profile, error) {
	if c.Subject == "" {
		return nil, errors.New("missing subject in ID token")
	}
	if c.Email == "" {
		return nil, errors.New("missing email in ID token")
	}
	if !c.EmailVerified {
		return nil, ErrUnverifiedEmail
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = c.Email
	}

	return &Profile{
		ProviderID:  c.Subject,
		DisplayName: name,
		Email:       strings.ToLower(strings.TrimSpace(c.Email)),
	}, nil
}
