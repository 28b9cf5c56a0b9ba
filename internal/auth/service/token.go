package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/pkg/jwtx"
)

// ErrMissingIdentity means Issue was called without a user id or username.
// A stored user always has both, so this is a caller bug.
var ErrMissingIdentity = errors.New("service: token identity missing")

// Token failure messages, shared with clients.
const (
	msgTokenMissing  = "Token is missing."
	msgTokenExpired  = "Token is expired!"
	msgTokenEarly    = "It is too early to use this token!"
	msgTokenInvalid  = "Token could not be parsed."
	msgTokenNoMatch  = "No matching user found."
	msgBadCredential = "Invalid username or password."
)

// TokenServiceOptions configure a TokenService.
type TokenServiceOptions struct {
	// Secret is the HMAC signing secret, at least 32 bytes.
	Secret []byte
	// TTL is the token lifetime. Zero means jwtx.DefaultTokenTTL.
	TTL time.Duration
	// Leeway tolerates clock skew on exp/nbf.
	Leeway time.Duration
	// Now is the clock for both issuing and verifying. Nil means time.Now.
	Now func() time.Time
}

// TokenService issues and classifies stateless identity tokens. Tokens are
// never stored, so expiry is the only way one stops working (short of
// rotating the secret).
type TokenService struct {
	signer   jwtx.Signer
	verifier jwtx.Verifier
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenService builds a TokenService. A missing or short secret is an
// error; callers treat it as fatal at start-up.
func NewTokenService(opts TokenServiceOptions) (*TokenService, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	signer, err := jwtx.NewSignerHS256(opts.Secret)
	if err != nil {
		return nil, err
	}

	verifier, err := jwtx.NewVerifierHS256(opts.Secret, jwtx.VerifyOptions{
		Leeway: opts.Leeway,
		Now:    now,
	})
	if err != nil {
		return nil, err
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	return &TokenService{signer: signer, verifier: verifier, ttl: ttl, now: now}, nil
}

// Issue signs a token carrying exactly userID and username.
func (s *TokenService) Issue(userID, username string) (string, error) {
	if userID == "" || username == "" {
		return "", ErrMissingIdentity
	}

	claims := jwtx.NewIdentityClaims(userID, username, s.ttl, s.now().UTC())
	return s.signer.Sign(claims)
}

// Verify classifies token without side effects.
func (s *TokenService) Verify(token string) domain.Verification {
	claims, err := s.verifier.Verify(token)
	switch {
	case err == nil && claims.HasIdentity():
		return domain.Verification{
			Outcome:  domain.TokenValid,
			UserID:   claims.UserID,
			Username: claims.Username,
		}
	case err == nil:
		// Signed by us but without the identity fields.
		return invalidToken()
	case errors.Is(err, jwtx.ErrMissing):
		return domain.Verification{Outcome: domain.TokenMissing, Code: domain.CodeAbsent, Message: msgTokenMissing}
	case errors.Is(err, jwtx.ErrExpired):
		return domain.Verification{Outcome: domain.TokenExpired, Code: domain.CodeExpired, Message: msgTokenExpired}
	case errors.Is(err, jwtx.ErrNotYetValid):
		return domain.Verification{Outcome: domain.TokenNotYetValid, Code: domain.CodeEarly, Message: msgTokenEarly}
	default:
		return invalidToken()
	}
}

// Ready reports whether the service can sign. Used by readiness probes.
func (s *TokenService) Ready() error {
	if s == nil {
		return errNilTokenService
	}
	_, err := s.Issue("ready", "ready")
	return err
}

var errNilTokenService = errors.New("service: token service not configured")

func invalidToken() domain.Verification {
	return domain.Verification{Outcome: domain.TokenInvalid, Code: domain.CodeInvalid, Message: msgTokenInvalid}
}
