// Package db provides database connectivity and migration functionality.
// It establishes the pgx connection pool used by every store in the
// application and runs file-based schema migrations at startup. Concurrency
// control over stored data is delegated entirely to PostgreSQL; the
// application takes no locks of its own outside explicit transactions.
package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres driver for migrate
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// migration source
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // database/sql driver used by migrate's postgres driver

	"github.com/user/sitecms-go/apperror"
	"github.com/user/sitecms-go/config"
)

// NewPool establishes a PostgreSQL connection pool using the provided
// configuration. The pool is tuned from config (max connections) with fixed
// idle/lifetime settings, and the connection is verified with a ping before
// the pool is handed to the rest of the application.
func NewPool(cfg *config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.PoolSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	// Bound pool creation so an unreachable database fails fast instead of
	// blocking startup indefinitely.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error creating pool for database %s", cfg.DBName), err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to database %s", cfg.DBName), err)
	}

	return pool, nil
}

// RunMigrations applies any pending schema migrations from the given
// directory. migrate.ErrNoChange is not treated as a failure: an up-to-date
// schema is the normal steady state.
func RunMigrations(cfg *config.DBConfig, migrationsPath string) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)

	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return apperror.NewDatabaseError("failed to create migrator", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			if srcErr != nil {
				log.Printf("warning: error closing migration source: %v", srcErr)
			}
			if dbErr != nil {
				log.Printf("warning: error closing migration database instance: %v", dbErr)
			}
		}
	}()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return apperror.NewDatabaseError("failed to run migrations", err)
	}

	return nil
}
