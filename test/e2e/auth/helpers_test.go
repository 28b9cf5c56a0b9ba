package auth_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/passport/internal/auth/app"
	"github.com/aussiebroadwan/passport/pkg/authsdk"
)

/*
 * Common constants and helper functions for auth service end-to-end tests.
 * Each test gets its own service instance backed by a fresh SQLite file.
 */

const (
	testSecret = "e2e-test-secret-e2e-test-secret-e2e"

	testUsername = "e2e_user"
	testEmail    = "e2e.user@example.com"
	testPassword = "E2e-Pass1!"
)

// setupAuthServer starts the fully wired service and returns its base URL.
func setupAuthServer(t *testing.T) (string, func()) {
	t.Helper()

	cfg := &app.Config{
		TokenSecret:         testSecret,
		TokenTTL:            time.Hour,
		StoreDriver:         app.DriverSQLite,
		DatabaseFile:        filepath.Join(t.TempDir(), "auth.db"),
		StoreTimeout:        2 * time.Second,
		HashIterations:      100, // keep the suite fast
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
	require.NoError(t, cfg.Validate())

	application, err := app.New(context.Background(), cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())

	return srv.URL, func() {
		srv.Close()
		_ = application.Shutdown()
	}
}

// registerUser creates the default test user.
func registerUser(t *testing.T, client *authsdk.SDKClient) {
	t.Helper()

	err := client.Register(t.Context(), authsdk.RegisterRequest{
		Username: testUsername,
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err, "Register should succeed")
}

// assertKind checks that err is an APIError of the given kind and HTTP status.
func assertKind(t *testing.T, err error, kind string, status int) *authsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, kind, apiErr.Kind, "unexpected error kind: %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *authsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
