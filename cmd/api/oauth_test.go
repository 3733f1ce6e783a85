package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bisame/internal/domain/users"
	"bisame/internal/federation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googleCallback(t *testing.T, mux http.Handler, cookieState, queryState, code string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state="+queryState+"&code="+code, nil)
	if cookieState != "" {
		req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: cookieState})
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestGoogleLoginRedirects(t *testing.T) {
	app := newTestApplication(t, withIdentity(&fakeProvider{}))

	rr := executeRequest(t, app.mount(), http.MethodGet, "/api/auth/google", nil, "")
	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)

	var state string
	for _, c := range rr.Result().Cookies() {
		if c.Name == oauthStateCookie {
			state = c.Value
		}
	}
	require.NotEmpty(t, state)
	assert.True(t, strings.HasSuffix(rr.Header().Get("Location"), "state="+state))
}

func TestGoogleLoginDisabled(t *testing.T) {
	app := newTestApplication(t)

	rr := executeRequest(t, app.mount(), http.MethodGet, "/api/auth/google", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGoogleCallback(t *testing.T) {
	provider := &fakeProvider{profile: &federation.Profile{
		ProviderID:  "google-123",
		DisplayName: "Kofi",
		Email:       "Kofi@Gmail.com",
	}}
	app := newTestApplication(t, withIdentity(provider))
	mux := app.mount()

	t.Run("state mismatch redirects home", func(t *testing.T) {
		rr := googleCallback(t, mux, "abc", "xyz", "code")
		require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("first sign-in creates a federated customer", func(t *testing.T) {
		rr := googleCallback(t, mux, "abc", "abc", "code")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		body := decodeBody(t, rr)
		assert.Equal(t, "Login Successful", body["message"])
		assert.Contains(t, body, "token")

		user, err := app.store.Users.GetByEmail(context.Background(), "kofi@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, users.RoleCustomer, user.Role)
		assert.Equal(t, users.AuthTypeFederated, user.AuthType)
		assert.Equal(t, "google-123", user.ProviderID.String)
		assert.False(t, user.Password.IsSet())
	})

	t.Run("second sign-in reuses the account", func(t *testing.T) {
		rr := googleCallback(t, mux, "def", "def", "code")
		require.Equal(t, http.StatusOK, rr.Code)

		list, err := app.store.Users.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("federated account cannot log in with a password", func(t *testing.T) {
		rr := executeRequest(t, mux, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "kofi@gmail.com", "password": "anything",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("provider failure redirects home", func(t *testing.T) {
		provider.err = errors.New("exchange failed")
		t.Cleanup(func() { provider.err = nil })

		rr := googleCallback(t, mux, "abc", "abc", "code")
		require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})
}
