package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/passport/pkg/authsdk"
)

// TestInvalidCredentials verifies that wrong passwords and unknown users are
// rejected identically.
func TestInvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupAuthServer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	registerUser(t, client)

	_, wrongErr := client.Login(t.Context(), testUsername, "Wrong-Pass1!")
	wrong := assertKind(t, wrongErr, authsdk.KindUnauthorized, 401)

	_, unknownErr := client.Login(t.Context(), "nobody_here", "Wrong-Pass1!")
	unknown := assertKind(t, unknownErr, authsdk.KindUnauthorized, 401)

	require.Equal(t, wrong.Message, unknown.Message)
	require.Empty(t, wrong.Code)
}

// TestInvalidAccessToken verifies token failures carry their state code.
func TestInvalidAccessToken(t *testing.T) {
	baseURL, cleanup := setupAuthServer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	_, err := client.FetchUser(t.Context(), "")
	require.Equal(t, authsdk.CodeTokenAbsent, assertKind(t, err, authsdk.KindUnauthorized, 401).Code)

	_, err = client.NewSessionFromToken("invalid-token-12345").GetUser(t.Context())
	require.Equal(t, authsdk.CodeTokenInvalid, assertKind(t, err, authsdk.KindUnauthorized, 401).Code)

	require.True(t, authsdk.IsKind(err, authsdk.KindUnauthorized))
}
