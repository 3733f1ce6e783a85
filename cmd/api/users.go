package main

import (
	"net/http"

	"bisame/internal/auth"
	"bisame/internal/domain/products"
)

type contextKey string

const (
	claimsCtx  contextKey = "claims"
	productCtx contextKey = "product"
)

func getClaimsFromContext(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsCtx).(*auth.Claims)
	return claims
}

func getProductFromContext(r *http.Request) *products.Product {
	product, _ := r.Context().Value(productCtx).(*products.Product)
	return product
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Returns every user. Password hashes are never included.
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		users.User
//	@Failure		500	{object}	error
//	@Router			/users [get]
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Users.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}
