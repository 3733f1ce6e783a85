package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"bisame/internal/auth"
	"bisame/internal/domain/users"
)

// ErrorBadRequestResponse represents the standard error format for bad request API responses.
//
//	@name			ErrorBadRequestResponse
//	@description	Standard error response format returned by all bad request API endpoints
type ErrorBadRequestResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"All fields are required"`
	Status  int    `json:"status" example:"400"`
}

// ErrorInternalServerResponse represents the standard error format for internal server API responses.
//
//	@name			ErrorInternalServerResponse
//	@description	Standard error response format returned by all internal server error API endpoints
type ErrorInternalServerResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"the server encountered a problem"`
	Status  int    `json:"status" example:"500"`
}

type RegisterUserPayload struct {
	FullName string `json:"fullname" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required,role"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenPayload struct {
	RefreshToken string `json:"refreshToken"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID       int64      `json:"id"`
	FullName string     `json:"fullname"`
	Email    string     `json:"email"`
	Role     users.Role `json:"role" swaggertype:"string"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role}
}

type RegisterResponse struct {
	Message string       `json:"message" example:"Registration Successful"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Message string         `json:"message" example:"Login Successful"`
	User    UserResponse   `json:"user"`
	Token   auth.TokenPair `json:"token"`
}

type RefreshResponse struct {
	Message     string `json:"message" example:"Token refreshed successfully"`
	AccessToken string `json:"accessToken"`
}

func (app *application) authEvent(event, outcome string) {
	if app.metrics != nil {
		app.metrics.AuthEvent(event, outcome)
	}
}

// registerUserHandler godoc
//
//	@Summary		Registers a user
//	@Description	Creates a local account. Role must be one of customer, vendor, admin, staff.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterUserPayload			true	"User details"
//	@Success		201		{object}	RegisterResponse			"User registered"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/api/auth/register [post]
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	payload.FullName = strings.TrimSpace(payload.FullName)
	payload.Email = users.NormalizeEmail(payload.Email)
	payload.Role = strings.ToLower(strings.TrimSpace(payload.Role))

	if payload.FullName == "" || payload.Email == "" || payload.Password == "" || payload.Role == "" {
		app.badRequestResponse(w, r, "All fields are required")
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationMessage(err))
		return
	}

	role, err := users.ParseRole(payload.Role)
	if err != nil {
		app.badRequestResponse(w, r, "role must be one of customer, vendor, admin, staff")
		return
	}

	ctx := r.Context()

	if _, err := app.store.Users.GetByEmail(ctx, payload.Email); err == nil {
		app.authEvent("register", "duplicate")
		app.conflictResponse(w, r, "User with that email already exists")
		return
	} else if !errors.Is(err, users.ErrNotFound) {
		app.internalServerError(w, r, err)
		return
	}

	user := &users.User{
		FullName: payload.FullName,
		Email:    payload.Email,
		Role:     role,
		AuthType: users.AuthTypeLocal,
	}
	// hash the user password.
	if err := user.Password.Set(payload.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			app.authEvent("register", "duplicate")
			app.conflictResponse(w, r, "User with that email already exists")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.authEvent("register", "success")

	if err := writeJSON(w, http.StatusCreated, RegisterResponse{
		Message: "Registration Successful",
		User:    newUserResponse(user),
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// loginHandler godoc
//
//	@Summary		Logs a user in
//	@Description	Verifies email and password and issues an access and refresh token pair
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginPayload				true	"Credentials"
//	@Success		200		{object}	LoginResponse				"Logged in"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		401		{object}	error						"Unknown user or bad password"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/api/auth/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		app.badRequestResponse(w, r, "Email and Password is required")
		return
	}

	ctx := r.Context()

	user, err := app.store.Users.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.authEvent("login", "unknown_user")
			app.unauthorizedErrorResponse(w, r, "User not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := user.Password.Compare(payload.Password); err != nil {
		app.authEvent("login", "bad_credentials")
		app.unauthorizedErrorResponse(w, r, "Invalid credentials")
		return
	}

	app.issueTokens(w, r, user, "login")
}

// issueTokens answers with the login envelope. Local and federated logins share it.
func (app *application) issueTokens(w http.ResponseWriter, r *http.Request, user *users.User, event string) {
	pair, err := app.tokens.Issue(r.Context(), user.ID, string(user.Role))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.authEvent(event, "success")

	if err := writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Login Successful",
		User:    newUserResponse(user),
		Token:   pair,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// refreshTokenHandler godoc
//
//	@Summary		Refreshes an access token
//	@Description	Exchanges a registered refresh token for a new access token. The refresh token is not rotated.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RefreshTokenPayload			true	"Refresh token"
//	@Success		200		{object}	RefreshResponse				"New access token"
//	@Failure		403		{object}	error						"Invalid refresh token"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/api/auth/refresh-token [post]
func (app *application) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RefreshTokenPayload
	if err := readJSON(w, r, &payload); err != nil || payload.RefreshToken == "" {
		app.authEvent("refresh", "invalid")
		app.forbiddenResponse(w, r, "Invalid refresh token")
		return
	}

	accessToken, err := app.tokens.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			app.authEvent("refresh", "invalid")
			app.forbiddenResponse(w, r, "Invalid refresh token")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.authEvent("refresh", "success")

	if err := writeJSON(w, http.StatusOK, RefreshResponse{
		Message:     "Token refreshed successfully",
		AccessToken: accessToken,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Logs out
//	@Description	Revokes the refresh token given in the body, or every refresh token held by the caller when the body is empty
//	@Tags			authentication
//	@Accept			json
//	@Param			payload	body	RefreshTokenPayload	false	"Refresh token to revoke"
//	@Success		204
//	@Failure		400	{object}	ErrorBadRequestResponse	"Bad request"
//	@Failure		401	{object}	error					"Missing or malformed bearer token"
//	@Failure		403	{object}	error					"Invalid token or refresh token"
//	@Security		ApiKeyAuth
//	@Router			/api/auth/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	claims := getClaimsFromContext(r)
	userID, err := claims.UserID()
	if err != nil {
		app.forbiddenResponse(w, r, "Invalid token")
		return
	}

	var payload RefreshTokenPayload
	if err := readJSON(w, r, &payload); err != nil && !errors.Is(err, io.EOF) {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	ctx := r.Context()

	if payload.RefreshToken == "" {
		err = app.tokens.RevokeAll(ctx, userID)
	} else {
		err = app.tokens.Revoke(ctx, userID, payload.RefreshToken)
	}
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			app.forbiddenResponse(w, r, "Invalid refresh token")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.authEvent("logout", "success")
	w.WriteHeader(http.StatusNoContent)
}
