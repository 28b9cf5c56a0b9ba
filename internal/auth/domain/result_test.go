package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestStatusOK(t *testing.T) {
	for _, s := range []domain.Status{domain.StatusCreated, domain.StatusAuthenticated, domain.StatusFound} {
		require.True(t, s.OK(), s)
	}
	for _, s := range []domain.Status{
		domain.StatusBadInput, domain.StatusUnauthorized,
		domain.StatusConflict, domain.StatusStorageFailure,
	} {
		require.False(t, s.OK(), s)
	}
}

func TestStorageFailureIsGeneric(t *testing.T) {
	res := domain.StorageFailure()
	require.Equal(t, domain.StatusStorageFailure, res.Status)
	require.Equal(t, domain.GenericFailureMessage, res.Problem.Message)
	require.Empty(t, res.Problem.Code)
	require.Nil(t, res.Problem.Fields)
}

func TestProjectDropsSecrets(t *testing.T) {
	title := "Engineer"
	u := domain.User{
		ID:           "01HZY0000000000000000000AA",
		Username:     "bob_smith",
		Email:        "bob@example.com",
		PasswordHash: "deadbeef",
		Salt:         "cafebabe",
		JobTitle:     &title,
		CreatedAt:    time.Unix(1700000000, 0).UTC(),
	}

	raw, err := json.Marshal(u.Project())
	require.NoError(t, err)
	require.NotContains(t, string(raw), "deadbeef")
	require.NotContains(t, string(raw), "cafebabe")

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	require.Equal(t, "bob_smith", m["username"])
	require.Equal(t, "Engineer", m["job_title"])
	require.Nil(t, m["first_name"])
	require.NotContains(t, m, "password_hash")
	require.NotContains(t, m, "salt")
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "valid", domain.TokenValid.String())
	require.Equal(t, "expired", domain.TokenExpired.String())
	require.Equal(t, "unknown", domain.Outcome(99).String())
}
