package tokens

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "refresh:token:"
	userKeyPrefix  = "refresh:user:"
)

// RedisStore keeps one key per token, expiring with the token, and a per-user set of hashes
// used to revoke everything a user holds.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, userID int64, hash string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	userKey := userKeyPrefix + strconv.FormatInt(userID, 10)

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+hash, userID, ttl)
	pipe.SAdd(ctx, userKey, hash)
	pipe.Expire(ctx, userKey, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *RedisStore) Lookup(ctx context.Context, hash string) (int64, error) {
	userID, err := s.rdb.Get(ctx, tokenKeyPrefix+hash).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("lookup refresh token: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Revoke(ctx context.Context, hash string) error {
	if err := s.rdb.Del(ctx, tokenKeyPrefix+hash).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func (s *RedisStore) RevokeAllForUser(ctx context.Context, userID int64) error {
	userKey := userKeyPrefix + strconv.FormatInt(userID, 10)

	hashes, err := s.rdb.SMembers(ctx, userKey).Result()
	if err != nil {
		return fmt.Errorf("revoke user refresh tokens: %w", err)
	}

	keys := make([]string, 0, len(hashes)+1)
	for _, h := range hashes {
		keys = append(keys, tokenKeyPrefix+h)
	}
	keys = append(keys, userKey)

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke user refresh tokens: %w", err)
	}
	return nil
}
