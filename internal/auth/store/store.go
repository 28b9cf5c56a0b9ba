package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrAmbiguous     = errors.New("store: ambiguous match")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Users is the credential store. Usernames and emails are unique under
// case-insensitive comparison, enforced by the database itself, so InsertUser
// is the only place a conflict can be detected.
type Users interface {
	// FindUserByLogin matches identifier case-insensitively against username
	// OR email. More than one hit reports ErrAmbiguous.
	FindUserByLogin(ctx context.Context, identifier string) (domain.User, error)

	// FindUserByIdentity requires the exact (id, username) pair, so a renamed
	// account no longer matches tokens issued under the old name.
	FindUserByIdentity(ctx context.Context, userID, username string) (domain.User, error)

	// InsertUser writes a new user in one statement. A username or email
	// collision reports ErrAlreadyExists.
	InsertUser(ctx context.Context, u domain.User) error
}
