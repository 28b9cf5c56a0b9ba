package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
)

func testConfig() *Config {
	return &Config{
		TokenSecret:         goodSecret,
		TokenTTL:            time.Hour,
		StoreDriver:         DriverSQLite,
		DatabaseFile:        ":memory:",
		StoreTimeout:        time.Second,
		HashIterations:      10,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func TestNew_WiresHandler(t *testing.T) {
	app, err := New(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	for _, path := range []string{"/livez", "/readyz", "/v1/rules", "/metrics"} {
		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNew_RejectsWeakSecret(t *testing.T) {
	cfg := testConfig()
	cfg.TokenSecret = "short"

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t, ":memory:", sqliteDSN(":memory:"))
	require.Equal(t, "file:auth.db?_pragma=journal_mode(WAL)", sqliteDSN("auth.db"))
}

func TestNew_EnvironmentCannotRetuneHashing(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "auth.db")

	first := testConfig()
	first.DatabaseFile = dbFile
	first.HashIterations = 0

	app, err := New(context.Background(), first)
	require.NoError(t, err)
	res := app.authService.Register(context.Background(), domain.Registration{
		Username: "alice_1",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	})
	require.Equal(t, domain.StatusCreated, res.Status)
	require.NoError(t, app.db.Close())

	isolate(t)
	t.Setenv("AUTH_TOKEN_SECRET", goodSecret)
	t.Setenv("AUTH_DATABASE_FILE", dbFile)
	t.Setenv("AUTH_HASH_ITERATIONS", "20000")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	app, err = New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	res = app.authService.Login(context.Background(), "alice_1", "Sup3r$ecret")
	require.Equal(t, domain.StatusAuthenticated, res.Status)
	require.NotEmpty(t, res.Token)
}
