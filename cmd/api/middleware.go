package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"bisame/internal/domain/products"
	"bisame/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// read the auth header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			// parse it -> get the base64
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			// decode it
			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			// check the credentials
			username := app.config.auth.basic.user
			pass := app.config.auth.basic.pass

			creds := strings.SplitN(string(decoded), ":", 2)
			if len(creds) != 2 || creds[0] != username || creds[1] != pass {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthTokenMiddleware requires "Authorization: Bearer <access token>". A missing or malformed
// header is 401; a token that fails verification is 403.
func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedErrorResponse(w, r, "You do not have permission to access this resource")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			app.unauthorizedErrorResponse(w, r, "You do not have permission to access this resource")
			return
		}

		claims, err := app.tokens.VerifyAccess(parts[1])
		if err != nil {
			app.forbiddenResponse(w, r, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtx, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after AuthTokenMiddleware.
func (app *application) RequireRole(role users.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := getClaimsFromContext(r)
			if claims == nil {
				app.unauthorizedErrorResponse(w, r, "You do not have permission to access this resource")
				return
			}

			if users.Role(claims.Role) != role {
				app.forbiddenResponse(w, r, role.Title()+" access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ProductOwnerMiddleware loads the product named by {code} and lets the request through only
// when the vendor recorded on the product is the authenticated caller.
func (app *application) ProductOwnerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		code := chi.URLParam(r, "code")

		product, err := app.store.Products.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, products.ErrNotFound) {
				app.notFoundResponse(w, r, "Product not found")
				return
			}
			app.internalServerError(w, r, err)
			return
		}

		claims := getClaimsFromContext(r)
		if claims == nil {
			app.unauthorizedErrorResponse(w, r, "You do not have permission to access this resource")
			return
		}
		actorID, err := claims.UserID()
		if err != nil {
			app.forbiddenResponse(w, r, "Invalid token")
			return
		}

		vendor, err := app.store.Users.GetByEmail(ctx, product.VendorInfo.Email)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				app.unauthorizedErrorResponse(w, r, "Product does not belong to vendor")
				return
			}
			app.internalServerError(w, r, err)
			return
		}

		if !product.BelongsTo(vendor.ID, vendor.Email, actorID) {
			app.unauthorizedErrorResponse(w, r, "Product does not belong to vendor")
			return
		}

		ctx = context.WithValue(ctx, productCtx, product)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimiterMiddleware counts requests per client IP. Limiter failures let the request through.
func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.config.rateLimiter.Enabled || app.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		res, err := app.rateLimiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			app.logger.Errorw("rate limiter unavailable", "error", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		reset := strconv.Itoa(int(math.Ceil(res.ResetAfter.Seconds())))
		w.Header().Set("RateLimit-Limit", strconv.Itoa(res.Limit))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(res.Remaining))
		w.Header().Set("RateLimit-Reset", reset)

		if !res.Allowed {
			if app.metrics != nil {
				app.metrics.RateLimitedTotal.Inc()
			}
			app.rateLimitExceededResponse(w, r, reset)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				w.Header().Set("Connection", "close")
				app.logger.Errorw("panic recovered", "method", r.Method, "path", r.URL.Path, "panic", rec)
				writeJSONError(w, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
