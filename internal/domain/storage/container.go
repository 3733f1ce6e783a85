package storage

import (
	"database/sql"
	"fmt"

	"bisame/internal/domain/products"
	"bisame/internal/domain/tokens"
	"bisame/internal/domain/users"

	"github.com/redis/go-redis/v9"
)

const (
	RefreshStorePostgres = "postgres"
	RefreshStoreRedis    = "redis"
	RefreshStoreMemory   = "memory"
)

type Container struct {
	Users         users.Store
	Products      products.Store
	RefreshTokens tokens.Store
}

func NewContainer(db *sql.DB, refreshTokens tokens.Store) *Container {
	return &Container{
		Users:         users.NewRepository(db),
		Products:      products.NewRepository(db),
		RefreshTokens: refreshTokens,
	}
}

// NewRefreshTokenStore picks the allow-list backend. rdb may be nil unless kind is redis.
func NewRefreshTokenStore(kind string, db *sql.DB, rdb *redis.Client) (tokens.Store, error) {
	switch kind {
	case RefreshStorePostgres, "":
		return tokens.NewRepository(db), nil
	case RefreshStoreRedis:
		if rdb == nil {
			return nil, fmt.Errorf("refresh store %q needs a redis client", kind)
		}
		return tokens.NewRedisStore(rdb), nil
	case RefreshStoreMemory:
		return tokens.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown refresh store %q", kind)
	}
}
