package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/internal/auth/store"
)

const userColumns = `id, username, email, password_hash, salt, first_name, last_name, job_title, created_at`

type usersRepo struct {
	pool poolIface
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Salt,
		&u.FirstName, &u.LastName, &u.JobTitle, &u.CreatedAt,
	)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, err
}

// FindUserByLogin reads at most two rows; that is enough to tell a unique
// match from an ambiguous one.
func (r *usersRepo) FindUserByLogin(ctx context.Context, identifier string) (domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
		LIMIT 2
	`, identifier)
	if err != nil {
		return domain.User{}, oops.Code("USER_FIND_BY_LOGIN_FAILED").
			With("operation", "find user by login").
			Wrap(err)
	}
	defer rows.Close()

	var found []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return domain.User{}, oops.Code("USER_FIND_BY_LOGIN_FAILED").
				With("operation", "scan user").
				Wrap(err)
		}
		found = append(found, u)
	}
	if err := rows.Err(); err != nil {
		return domain.User{}, oops.Code("USER_FIND_BY_LOGIN_FAILED").
			With("operation", "iterate users").
			Wrap(err)
	}

	switch len(found) {
	case 0:
		return domain.User{}, store.ErrNotFound
	case 1:
		return found[0], nil
	default:
		return domain.User{}, store.ErrAmbiguous
	}
}

func (r *usersRepo) FindUserByIdentity(ctx context.Context, userID, username string) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1 AND username = $2
	`, userID, username)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, store.ErrNotFound
	}
	if err != nil {
		return domain.User{}, oops.Code("USER_FIND_BY_IDENTITY_FAILED").
			With("operation", "find user by identity").
			With("user_id", userID).
			Wrap(err)
	}
	return u, nil
}

func (r *usersRepo) InsertUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Salt,
		u.FirstName,
		u.LastName,
		u.JobTitle,
		createdAt.UTC(),
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	if err != nil {
		return oops.Code("USER_INSERT_FAILED").
			With("operation", "insert user").
			With("username", u.Username).
			Wrap(err)
	}
	return nil
}
