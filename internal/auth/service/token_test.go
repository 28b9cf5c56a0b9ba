package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/pkg/jwtx"
)

var testSecret = []byte("test-secret-test-secret-test-secret!")

// fakeClock is a settable clock shared by issuing and verifying.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTokenService(t *testing.T, clock *fakeClock) *TokenService {
	t.Helper()

	opts := TokenServiceOptions{Secret: testSecret}
	if clock != nil {
		opts.Now = clock.Now
	}

	ts, err := NewTokenService(opts)
	require.NoError(t, err)
	return ts
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService(TokenServiceOptions{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = NewTokenService(TokenServiceOptions{Secret: []byte("too-short")})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestIssue_MissingIdentity(t *testing.T) {
	ts := newTokenService(t, nil)

	for _, tc := range [][2]string{{"", "bob"}, {"42", ""}, {"", ""}} {
		_, err := ts.Issue(tc[0], tc[1])
		require.ErrorIs(t, err, ErrMissingIdentity)
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	ts := newTokenService(t, nil)

	token, err := ts.Issue("42", "bob")
	require.NoError(t, err)

	v := ts.Verify(token)
	require.Equal(t, domain.Verification{
		Outcome:  domain.TokenValid,
		UserID:   "42",
		Username: "bob",
	}, v)
	require.True(t, v.Valid())
}

func TestVerify_Missing(t *testing.T) {
	v := newTokenService(t, nil).Verify("")
	require.Equal(t, domain.TokenMissing, v.Outcome)
	require.Equal(t, "ABS", v.Code)
	require.Equal(t, "Token is missing.", v.Message)
}

func TestVerify_ExpiredAfterThirtyDays(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ts := newTokenService(t, clock)

	token, err := ts.Issue("42", "bob")
	require.NoError(t, err)

	clock.t = clock.t.Add(29 * 24 * time.Hour)
	require.Equal(t, domain.TokenValid, ts.Verify(token).Outcome)

	clock.t = clock.t.Add(2 * 24 * time.Hour)
	v := ts.Verify(token)
	require.Equal(t, domain.TokenExpired, v.Outcome)
	require.Equal(t, "EXP", v.Code)
	require.Equal(t, "Token is expired!", v.Message)
	require.Empty(t, v.UserID)
}

func TestVerify_NotYetValid(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ts := newTokenService(t, clock)

	token, err := ts.Issue("42", "bob")
	require.NoError(t, err)

	// Verifier clock behind the issuer.
	clock.t = clock.t.Add(-time.Hour)
	v := ts.Verify(token)
	require.Equal(t, domain.TokenNotYetValid, v.Outcome)
	require.Equal(t, "EAR", v.Code)
}

func TestVerify_Invalid(t *testing.T) {
	ts := newTokenService(t, nil)

	good, err := ts.Issue("42", "bob")
	require.NoError(t, err)

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(testSecret)
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	zeroSig := parts[0] + "." + parts[1] + "." + strings.Repeat("A", 43)

	for name, token := range map[string]string{
		"garbage":       "not.a.token",
		"bad signature": zeroSig,
		"wrong secret":  signWith(t, []byte("another-secret-another-secret-abc")),
		"no identity":   noIdentity,
		"truncated":     good[:len(good)/2],
	} {
		t.Run(name, func(t *testing.T) {
			v := ts.Verify(token)
			require.Equal(t, domain.TokenInvalid, v.Outcome)
			require.Equal(t, "INV", v.Code)
			require.Equal(t, "Token could not be parsed.", v.Message)
		})
	}
}

func TestVerify_DoesNotExtendLifetime(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ts := newTokenService(t, clock)

	token, err := ts.Issue("42", "bob")
	require.NoError(t, err)

	for range 5 {
		require.True(t, ts.Verify(token).Valid())
	}

	clock.t = clock.t.Add(jwtx.DefaultTokenTTL + time.Second)
	require.Equal(t, domain.TokenExpired, ts.Verify(token).Outcome)
}

func signWith(t *testing.T, secret []byte) string {
	t.Helper()

	other, err := NewTokenService(TokenServiceOptions{Secret: secret})
	require.NoError(t, err)

	token, err := other.Issue("42", "bob")
	require.NoError(t, err)
	return token
}
