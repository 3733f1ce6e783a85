package main

import (
	"context"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"time"

	"bisame/internal/auth"
	"bisame/internal/db"
	"bisame/internal/domain/storage"
	"bisame/internal/federation"
	"bisame/internal/metrics"
	"bisame/internal/ratelimiter"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), lvl)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Bisame API
//	@description	Authentication and vendor product catalogue for Bisame.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := loadConfig()

	logger, err := NewLogger(cfg.logLevel)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if cfg.auth.token.secret == "" || cfg.auth.token.refreshSecret == "" {
		logger.Fatal("AUTH_TOKEN_SECRET and AUTH_TOKEN_REFRESH_SECRET must be set")
	}

	// Database
	sqlDB, pool, err := db.New(
		cfg.db.driver,
		cfg.db.addr,
		cfg.db.maxOpenConns,
		cfg.db.maxIdleConns,
		cfg.db.maxIdleTime,
	)
	if err != nil {
		logger.Fatal(err)
	}
	defer sqlDB.Close()
	if pool != nil {
		defer pool.Close()
	}
	logger.Infow("database connection pool established", "driver", cfg.db.driver)

	if cfg.db.migrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := db.Migrate(ctx, sqlDB)
		cancel()
		if err != nil {
			logger.Fatal(err)
		}
		logger.Info("database schema is up to date")
	}

	// Redis is only dialled when something needs it
	var rdb *redis.Client
	if cfg.refreshStore == storage.RefreshStoreRedis ||
		(cfg.rateLimiter.Enabled && cfg.rateLimiter.Backend == ratelimiter.BackendRedis) {
		rdb, err = db.NewRedis(cfg.redis.addr, cfg.redis.password, cfg.redis.db)
		if err != nil {
			logger.Fatal(err)
		}
		defer rdb.Close()
		logger.Infow("redis connection established", "addr", cfg.redis.addr)
	}

	refreshTokens, err := storage.NewRefreshTokenStore(cfg.refreshStore, sqlDB, rdb)
	if err != nil {
		logger.Fatal(err)
	}

	store := storage.NewContainer(sqlDB, refreshTokens)

	// Authenticator
	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.refreshSecret,
		cfg.auth.token.aud,
		cfg.auth.token.iss,
		cfg.auth.token.accessTokenExp,
		cfg.auth.token.refreshTokenExp,
	)
	tokenService := auth.NewTokenService(jwtAuthenticator, refreshTokens, cfg.auth.token.refreshTokenExp)

	// Rate limiter
	var rateLimiter ratelimiter.Limiter
	switch cfg.rateLimiter.Backend {
	case ratelimiter.BackendRedis:
		rateLimiter = ratelimiter.NewRedisFixedWindowLimiter(
			rdb,
			cfg.rateLimiter.RequestsPerTimeFrame,
			cfg.rateLimiter.TimeFrame,
		)
	default:
		fixed := ratelimiter.NewFixedWindowLimiter(
			cfg.rateLimiter.RequestsPerTimeFrame,
			cfg.rateLimiter.TimeFrame,
		)
		defer fixed.Stop()
		rateLimiter = fixed
	}

	// Google sign-in is optional
	var identity federation.Provider
	if cfg.google.clientID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		google, err := federation.NewGoogleProvider(ctx, federation.Config{
			ClientID:     cfg.google.clientID,
			ClientSecret: cfg.google.clientSecret,
			RedirectURL:  cfg.google.redirectURL,
		})
		cancel()
		if err != nil {
			logger.Fatal(err)
		}
		identity = google
	} else {
		logger.Warn("GOOGLE_CLIENT_ID is not set, google sign-in is disabled")
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		tokens:      tokenService,
		rateLimiter: rateLimiter,
		identity:    identity,
		metrics:     metrics.New(),
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	app.pruneRefreshTokensEvery(bgCtx, time.Hour)

	//Metrics collected http://localhost:4000/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return sqlDB.Stats()
	}))
	if pool != nil {
		expvar.Publish("pgxpool", expvar.Func(func() any {
			stat := pool.Stat()
			return map[string]any{
				"total_conns":    stat.TotalConns(),
				"idle_conns":     stat.IdleConns(),
				"acquired_conns": stat.AcquiredConns(),
				"max_conns":      stat.MaxConns(),
			}
		}))
	}
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
