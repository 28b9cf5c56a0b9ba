package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/internal/auth/store"
	"github.com/aussiebroadwan/passport/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/passport/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newUser(username, email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "hash-" + username,
		Salt:         "salt-" + username,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestInsertAndFindByLogin(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	first, title := "Alice", "Engineer"
	u := newUser("alice_w", "Alice@Example.com")
	u.FirstName = &first
	u.JobTitle = &title
	require.NoError(t, users.InsertUser(ctx, u))

	for _, login := range []string{"alice_w", "ALICE_W", "alice@example.com", "ALICE@EXAMPLE.COM"} {
		t.Run(login, func(t *testing.T) {
			got, err := users.FindUserByLogin(ctx, login)
			require.NoError(t, err)
			require.Equal(t, u.ID, got.ID)
			require.Equal(t, "alice_w", got.Username)
			require.Equal(t, "Alice@Example.com", got.Email)
			require.Equal(t, u.PasswordHash, got.PasswordHash)
			require.Equal(t, u.Salt, got.Salt)
			require.NotNil(t, got.FirstName)
			require.Equal(t, "Alice", *got.FirstName)
			require.Nil(t, got.LastName)
			require.Equal(t, "Engineer", *got.JobTitle)
			require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Second)
		})
	}
}

func TestFindByLogin_NotFound(t *testing.T) {
	users := newTestStore(t).Users()

	_, err := users.FindUserByLogin(context.Background(), "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFindByLogin_Ambiguous(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	// The store does no syntax checks, so a username shaped like someone
	// else's email can exist.
	require.NoError(t, users.InsertUser(ctx, newUser("mix@example.com", "first@example.com")))
	require.NoError(t, users.InsertUser(ctx, newUser("second", "mix@example.com")))

	_, err := users.FindUserByLogin(ctx, "mix@example.com")
	require.ErrorIs(t, err, store.ErrAmbiguous)
}

func TestInsertUser_CaseInsensitiveConflicts(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	require.NoError(t, users.InsertUser(ctx, newUser("alice", "alice@example.com")))

	tests := []struct {
		name string
		user domain.User
	}{
		{"username differs in case", newUser("Alice", "other@example.com")},
		{"email differs in case", newUser("someone", "ALICE@example.com")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := users.InsertUser(ctx, tt.user)
			require.ErrorIs(t, err, store.ErrAlreadyExists)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		existing, err := users.FindUserByLogin(ctx, "alice")
		require.NoError(t, err)

		dup := newUser("fresh_name", "fresh@example.com")
		dup.ID = existing.ID
		require.ErrorIs(t, users.InsertUser(ctx, dup), store.ErrAlreadyExists)
	})
}

func TestInsertUser_ConcurrentSameName(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	const n = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dupe int
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := users.InsertUser(ctx, newUser("RaceUser", fmt.Sprintf("race%d@example.com", i)))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, store.ErrAlreadyExists):
				dupe++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, ok)
	require.Equal(t, n-1, dupe)
}

func TestFindUserByIdentity(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	u := newUser("bob_smith", "bob@example.com")
	require.NoError(t, users.InsertUser(ctx, u))

	got, err := users.FindUserByIdentity(ctx, u.ID, "bob_smith")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	t.Run("wrong username", func(t *testing.T) {
		_, err := users.FindUserByIdentity(ctx, u.ID, "bob_jones")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("username must match exactly", func(t *testing.T) {
		_, err := users.FindUserByIdentity(ctx, u.ID, "BOB_SMITH")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := users.FindUserByIdentity(ctx, idx.New().String(), "bob_smith")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCancelledContextIsNotNotFound(t *testing.T) {
	users := newTestStore(t).Users()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := users.FindUserByLogin(ctx, "anyone")
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrNotFound)
}
