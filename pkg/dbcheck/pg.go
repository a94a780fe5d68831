package dbcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGConfig holds PostgreSQL connection settings.
type PGConfig struct {
	ConnectionString  string        `env:"PG_CONN_URL,required"`
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
}

// ConnectPG establishes a PostgreSQL connection pool with retry logic.
// Uses linearly increasing backoff to ride out transient startup races
// between the application and the database.
func ConnectPG(ctx context.Context, cfg PGConfig) (*pgxpool.Pool, error) {
	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns
	connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	connConfig.MaxConnLifetime = cfg.MaxConnLifetime

	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return pool, nil
	}

	return nil, ErrFailedToOpenDBConnection
}

// PGLookup answers existence queries against a PostgreSQL pool. The query
// must select a single boolean and take the validated value as $1, e.g.
//
//	SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
type PGLookup struct {
	pool  *pgxpool.Pool
	query string
}

// NewPGLookup creates a lookup bound to a pool and an existence query.
func NewPGLookup(pool *pgxpool.Pool, query string) (*PGLookup, error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	return &PGLookup{pool: pool, query: query}, nil
}

// ExistsQuery builds the standard single-column existence query for
// NewPGLookup. Table and column names are interpolated, so they must come
// from trusted configuration, never from request input.
func ExistsQuery(table, column string) string {
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, column)
}

// Lookup reports whether a row matching the value exists.
func (l *PGLookup) Lookup(ctx context.Context, value any) (bool, error) {
	var exists bool
	if err := l.pool.QueryRow(ctx, l.query, value).Scan(&exists); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return exists, nil
}
