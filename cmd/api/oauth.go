package main

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"bisame/internal/domain/users"
	"bisame/internal/federation"

	"github.com/google/uuid"
)

const oauthStateCookie = "oauthstate"

// googleLoginHandler godoc
//
//	@Summary		Starts Google sign-in
//	@Description	Redirects to Google's consent screen
//	@Tags			authentication
//	@Success		307
//	@Failure		503	{object}	error	"Google sign-in is not configured"
//	@Router			/api/auth/google [get]
func (app *application) googleLoginHandler(w http.ResponseWriter, r *http.Request) {
	if app.identity == nil {
		app.serviceUnavailableResponse(w, r, "Google sign-in is not configured")
		return
	}

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/api/auth/google",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Secure:   app.config.env == "production",
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, app.identity.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// googleCallbackHandler godoc
//
//	@Summary		Completes Google sign-in
//	@Description	Exchanges the authorization code, creates the account on first sign-in and issues tokens. Any provider failure redirects to "/".
//	@Tags			authentication
//	@Produce		json
//	@Param			code	query		string			true	"Authorization code"
//	@Param			state	query		string			true	"State"
//	@Success		200		{object}	LoginResponse	"Logged in"
//	@Failure		307
//	@Router			/api/auth/google/callback [get]
func (app *application) googleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	if app.identity == nil {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		app.logger.Warnw("google callback with invalid state", "path", r.URL.Path)
		app.authEvent("google", "invalid_state")
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	// the state is single use
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/api/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
	})

	profile, err := app.identity.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		app.logger.Warnw("google exchange failed", "error", err.Error())
		app.authEvent("google", "provider_error")
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	user, err := app.findOrCreateFederatedUser(r, profile)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.issueTokens(w, r, user, "google")
}

// findOrCreateFederatedUser links a provider profile to a local account by email. First-time
// users become customers without a password.
func (app *application) findOrCreateFederatedUser(r *http.Request, profile *federation.Profile) (*users.User, error) {
	ctx := r.Context()

	user, err := app.store.Users.GetByEmail(ctx, profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, users.ErrNotFound) {
		return nil, err
	}

	user = &users.User{
		FullName:   profile.DisplayName,
		Email:      profile.Email,
		Role:       users.RoleCustomer,
		AuthType:   users.AuthTypeFederated,
		ProviderID: sql.NullString{String: profile.ProviderID, Valid: profile.ProviderID != ""},
	}
	if err := app.store.Users.Create(ctx, user); err != nil {
		// a concurrent callback for the same account won the insert
		if errors.Is(err, users.ErrDuplicateEmail) {
			return app.store.Users.GetByEmail(ctx, profile.Email)
		}
		return nil, err
	}

	app.logger.Infow("federated user created", "user_id", user.ID, "provider", "google")
	return user, nil
}
