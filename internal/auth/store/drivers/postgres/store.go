// Package postgres is the PostgreSQL credential store driver, built on a pgx
// connection pool.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"

	"github.com/aussiebroadwan/passport/internal/auth/store"
)

// poolIface is the slice of *pgxpool.Pool the repositories use, so tests can
// substitute pgxmock.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Options tune how the store connects at start-up.
type Options struct {
	// ConnectAttempts bounds the start-up retries. Zero means 5.
	ConnectAttempts uint64
	// ConnectBackoff is the first retry delay, doubled each attempt. Zero
	// means 250ms.
	ConnectBackoff time.Duration
}

// Store implements store.Store over PostgreSQL.
type Store struct {
	pool poolIface
	dsn  string
}

// NewStore connects to dsn, retrying with exponential backoff until the
// database answers a ping or the attempts run out.
func NewStore(ctx context.Context, dsn string, opts Options) (*Store, error) {
	if opts.ConnectAttempts == 0 {
		opts.ConnectAttempts = 5
	}
	if opts.ConnectBackoff == 0 {
		opts.ConnectBackoff = 250 * time.Millisecond
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, oops.Code("STORE_CONFIG_INVALID").
			With("operation", "parse dsn").
			Wrap(err)
	}

	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(opts.ConnectAttempts-1, retry.NewExponential(opts.ConnectBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, oops.Code("STORE_CONNECT_FAILED").
			With("operation", "connect").
			With("attempts", opts.ConnectAttempts).
			Wrap(err)
	}

	return &Store{pool: pool, dsn: dsn}, nil
}

// newStoreWithPool wires an existing pool (or a mock) without connecting.
func newStoreWithPool(pool poolIface) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return oops.Code("STORE_PING_FAILED").Wrap(err)
	}
	return nil
}

func (s *Store) Users() store.Users { return &usersRepo{pool: s.pool} }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
