package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/internal/auth/store"
)

const userColumns = `id, username, email, password_hash, salt, first_name, last_name, job_title, created_at`

type usersRepo struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                  domain.User
		first, last, title sql.NullString
	)

	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Salt,
		&first, &last, &title, &u.CreatedAt,
	); err != nil {
		return domain.User{}, err
	}

	u.FirstName = mapNullStringPtr(first)
	u.LastName = mapNullStringPtr(last)
	u.JobTitle = mapNullStringPtr(title)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *usersRepo) FindUserByLogin(ctx context.Context, identifier string) (domain.User, error) {
	// LIMIT 2 is enough to tell "one" from "more than one".
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE lower(username) = lower(?1) OR lower(email) = lower(?1)
		LIMIT 2`, identifier)
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: find user by login: %w", err)
	}
	defer rows.Close()

	var found []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return domain.User{}, fmt.Errorf("sqlite: scan user: %w", err)
		}
		found = append(found, u)
	}
	if err := rows.Err(); err != nil {
		return domain.User{}, fmt.Errorf("sqlite: find user by login: %w", err)
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
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ? AND username = ?`, userID, username)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) InsertUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Salt,
		mapOptionalString(u.FirstName),
		mapOptionalString(u.LastName),
		mapOptionalString(u.JobTitle),
		createdAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("sqlite: insert user: %w", err)
	}
	return nil
}
