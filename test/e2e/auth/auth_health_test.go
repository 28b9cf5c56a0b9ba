package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/passport/pkg/authsdk"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupAuthServer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check reports the database and signer.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupAuthServer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}

// TestRulesEndpoint verifies every field's rule table is published.
func TestRulesEndpoint(t *testing.T) {
	baseURL, cleanup := setupAuthServer(t)
	defer cleanup()

	rules, err := authsdk.NewSDKClient(baseURL).GetRules(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, rules.Version)

	fields := map[string]int{}
	for _, f := range rules.Fields {
		fields[f.Field] = len(f.Rules)
	}
	require.Contains(t, fields, "username")
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "password")
}
