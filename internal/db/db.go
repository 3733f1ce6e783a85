package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

// New opens a *sql.DB for the repositories. With the pgx driver the handle is backed by a
// pgxpool.Pool; the pool is returned as well so callers can close it and publish its stats.
func New(driver, addr string, maxOpenConns, maxIdleConns int, maxIdleTime string) (*sql.DB, *pgxpool.Pool, error) {
	duration, err := time.ParseDuration(maxIdleTime)
	if err != nil {
		return nil, nil, fmt.Errorf("parse max idle time: %w", err)
	}

	switch driver {
	case DriverPgx, "":
		pool, err := newPool(addr, int32(maxOpenConns), duration)
		if err != nil {
			return nil, nil, err
		}
		return stdlib.OpenDBFromPool(pool), pool, nil
	case DriverPostgres:
		db, err := sql.Open(DriverPostgres, addr)
		if err != nil {
			return nil, nil, err
		}
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
		db.SetConnMaxIdleTime(duration)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func newPool(addr string, maxConns int32, maxIdleTime time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		return nil, err
	}

	if maxConns > 0 {
		config.MaxConns = maxConns
	}
	config.MaxConnIdleTime = maxIdleTime

	// Bounds pool start-up, including the first ping.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}

	return dbpool, nil
}
