package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bisame/docs" //this is required to generate swagger docs
	"bisame/internal/auth"
	"bisame/internal/domain/storage"
	"bisame/internal/domain/users"
	"bisame/internal/federation"
	"bisame/internal/metrics"
	"bisame/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       *storage.Container
	logger      *zap.SugaredLogger
	tokens      *auth.TokenService
	rateLimiter ratelimiter.Limiter
	identity    federation.Provider
	metrics     *metrics.Metrics
}

type config struct {
	addr         string
	db           dbConfig
	redis        redisConfig
	env          string
	apiURL       string
	auth         authConfig
	rateLimiter  ratelimiter.Config
	google       googleConfig
	products     productsConfig
	corsOrigins  []string
	refreshStore string
	logLevel     string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	refreshSecret   string
	secret          string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
	aud             string
}

type basicConfig struct {
	user string
	pass string
}

type dbConfig struct {
	driver       string
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
	migrate      bool
}

type redisConfig struct {
	addr     string
	password string
	db       int
}

type googleConfig struct {
	clientID     string
	clientSecret string
	redirectURL  string
}

type productsConfig struct {
	createRequiresAuth bool
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	if app.metrics != nil {
		r.Use(app.metrics.Instrument)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(app.RateLimiterMiddleware)

	// Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", app.rootHandler)
	r.Get("/users", app.listUsersHandler)

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
		if app.metrics != nil {
			r.With(app.BasicAuthMiddleware()).Get("/metrics", app.metrics.Handler().ServeHTTP)
		}
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.registerUserHandler)
			r.Post("/login", app.loginHandler)
			r.Post("/refresh-token", app.refreshTokenHandler)
			r.With(app.AuthTokenMiddleware).Post("/logout", app.logoutHandler)

			r.Get("/google", app.googleLoginHandler)
			r.Get("/google/callback", app.googleCallbackHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", app.listProductsHandler)
			r.Get("/search", app.searchProductsHandler)

			if app.config.products.createRequiresAuth {
				r.With(app.AuthTokenMiddleware, app.RequireRole(users.RoleVendor)).Post("/create", app.createProductHandler)
			} else {
				r.Post("/create", app.createProductHandler)
			}

			r.Get("/{code}", app.getProductHandler)

			vendorOwned := r.With(app.AuthTokenMiddleware, app.RequireRole(users.RoleVendor), app.ProductOwnerMiddleware)
			vendorOwned.Put("/{code}/update", app.updateProductHandler)
			vendorOwned.Delete("/{code}/delete", app.deleteProductHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
