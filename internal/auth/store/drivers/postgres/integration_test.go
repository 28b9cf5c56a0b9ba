//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/internal/auth/store"
	"github.com/aussiebroadwan/passport/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/passport/pkg/idx"
)

func startPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("passport_test"),
		tcpostgres.WithUsername("passport"),
		tcpostgres.WithPassword("passport"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := postgres.NewStore(ctx, connStr, postgres.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations(), "migrations are idempotent")
	return s
}

func TestPostgresUsers(t *testing.T) {
	s := startPostgres(t)
	users := s.Users()
	ctx := context.Background()

	alice := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Salt:         "salt",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, users.InsertUser(ctx, alice))

	t.Run("case-insensitive conflict", func(t *testing.T) {
		dup := alice
		dup.ID = idx.New().String()
		dup.Username = "Alice"
		dup.Email = "new@example.com"
		require.ErrorIs(t, users.InsertUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("login by email in any case", func(t *testing.T) {
		got, err := users.FindUserByLogin(ctx, "ALICE@example.COM")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
		require.Nil(t, got.FirstName)
		require.Equal(t, alice.CreatedAt, got.CreatedAt)
	})

	t.Run("identity pair", func(t *testing.T) {
		_, err := users.FindUserByIdentity(ctx, alice.ID, "alice")
		require.NoError(t, err)

		_, err = users.FindUserByIdentity(ctx, alice.ID, "renamed")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, s.Ping(ctx))
	})
}
