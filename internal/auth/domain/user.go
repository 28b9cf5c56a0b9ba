package domain

import "time"

// User is the stored identity record.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // hex PBKDF2-SHA512, see cryptox.Hasher
	Salt         string // hex, paired 1:1 with PasswordHash
	FirstName    *string
	LastName     *string
	JobTitle     *string
	CreatedAt    time.Time
}

// UserProjection is the client-facing view of a User; it never carries the
// password hash or salt.
type UserProjection struct {
	ID        string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	JobTitle  *string   `json:"job_title"`
	CreatedAt time.Time `json:"created_at"`
}

// Project returns the client-facing view of u.
func (u User) Project() UserProjection {
	return UserProjection{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		JobTitle:  u.JobTitle,
		CreatedAt: u.CreatedAt,
	}
}

// Registration is the raw input to the register flow.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	JobTitle  *string
}
