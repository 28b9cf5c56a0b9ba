package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/internal/auth/store"
	"github.com/aussiebroadwan/passport/internal/auth/validate"
	"github.com/aussiebroadwan/passport/pkg/cryptox"
	"github.com/aussiebroadwan/passport/pkg/idx"
	"github.com/aussiebroadwan/passport/pkg/slogx"
)

// DefaultStoreTimeout bounds every store round trip when no timeout is set.
const DefaultStoreTimeout = 5 * time.Second

const (
	msgInvalidRegistration = "Registration details are invalid."
	msgMissingCredentials  = "Username and password are required."
	msgConflict            = "Username or email is already in use."
)

var errNilDependency = errors.New("service: store and token service are required")

// AuthServiceOptions wire an AuthService. Store and Tokens are required;
// everything else has a default.
type AuthServiceOptions struct {
	Store  store.Store
	Tokens *TokenService

	// Hasher derives password hashes. Zero value means cryptox.DefaultHasher.
	Hasher cryptox.Hasher
	// SaltSize in bytes. Zero means cryptox.DefaultSaltSize.
	SaltSize int
	// IDs mints user ids. Nil means the process-wide idx generator.
	IDs *idx.Generator

	// StoreTimeout bounds each store call. Zero means DefaultStoreTimeout.
	StoreTimeout time.Duration
	// MaxConcurrentHashes caps parallel derivations. Zero means NumCPU.
	MaxConcurrentHashes int

	Metrics *Metrics
	Now     func() time.Time
}

// AuthService runs the register, login and fetch-by-token flows. It holds no
// per-request state, so one instance serves every request concurrently.
type AuthService struct {
	store        store.Store
	tokens       *TokenService
	hasher       cryptox.Hasher
	saltSize     int
	ids          *idx.Generator
	storeTimeout time.Duration
	hashSlots    *semaphore.Weighted
	metrics      *Metrics
	now          func() time.Time

	// dummySalt lets a login for an unknown user cost the same derivation
	// as a real one.
	dummySalt string
	dummyHash string
}

// NewAuthService applies defaults and validates the required dependencies.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Store == nil || opts.Tokens == nil {
		return nil, errNilDependency
	}

	s := &AuthService{
		store:        opts.Store,
		tokens:       opts.Tokens,
		hasher:       opts.Hasher,
		saltSize:     opts.SaltSize,
		ids:          opts.IDs,
		storeTimeout: opts.StoreTimeout,
		metrics:      opts.Metrics,
		now:          opts.Now,
	}

	if s.hasher.Iterations <= 0 || s.hasher.KeyLength <= 0 {
		s.hasher = cryptox.DefaultHasher
	}
	if s.saltSize <= 0 {
		s.saltSize = cryptox.DefaultSaltSize
	}
	if s.storeTimeout <= 0 {
		s.storeTimeout = DefaultStoreTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}

	slots := opts.MaxConcurrentHashes
	if slots <= 0 {
		slots = runtime.NumCPU()
	}
	s.hashSlots = semaphore.NewWeighted(int64(slots))

	salt, err := cryptox.GenerateSalt(s.saltSize)
	if err != nil {
		return nil, err
	}
	s.dummySalt = salt
	s.dummyHash = s.hasher.Derive("", salt)

	return s, nil
}

func (s *AuthService) newID() string {
	if s.ids != nil {
		return s.ids.New().String()
	}
	return idx.New().String()
}

// derive runs one key derivation inside a hash slot. It only fails when ctx
// ends while waiting for a slot.
func (s *AuthService) derive(ctx context.Context, password, salt string) (string, error) {
	if err := s.hashSlots.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.hashSlots.Release(1)

	start := time.Now()
	hash := s.hasher.Derive(password, salt)
	s.metrics.recordDerive(time.Since(start))
	return hash, nil
}

// Register validates, hashes and inserts a new user. Success carries no
// payload; the caller logs in separately.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) domain.AuthResult {
	res := s.register(ctx, reg)
	s.metrics.recordResult(FlowRegister, res.Status)
	return res
}

func (s *AuthService) register(ctx context.Context, reg domain.Registration) domain.AuthResult {
	l := slogx.FromContext(ctx)

	report := validate.All(reg.Username, reg.Email, reg.Password)
	if !report.OK() {
		l.Debug("registration rejected by validation", slog.Int("fields", len(report.Problems())))
		return domain.BadInput(msgInvalidRegistration, report.Problems())
	}

	salt, err := cryptox.GenerateSalt(s.saltSize)
	if err != nil {
		l.Error("failed to generate salt", slog.Any("error", err))
		return domain.StorageFailure()
	}

	hash, err := s.derive(ctx, reg.Password, salt)
	if err != nil {
		l.Warn("password derivation abandoned", slog.Any("error", err))
		return domain.StorageFailure()
	}

	user := domain.User{
		ID:           s.newID(),
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		Salt:         salt,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		JobTitle:     reg.JobTitle,
		CreatedAt:    s.now().UTC(),
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	err = s.store.Users().InsertUser(storeCtx, user)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		l.Info("registration conflict", slog.String("username", reg.Username))
		return domain.Conflict(msgConflict)
	case err != nil:
		l.Error("failed to insert user", slog.Any("error", err))
		return domain.StorageFailure()
	}

	l.Info("user registered", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return domain.Created()
}

// Login checks identifier (username or email) and password and issues a
// token. Unknown users and wrong passwords are indistinguishable: both cost
// one derivation and both return the same Unauthorized result.
func (s *AuthService) Login(ctx context.Context, identifier, password string) domain.AuthResult {
	res := s.login(ctx, identifier, password)
	s.metrics.recordResult(FlowLogin, res.Status)
	return res
}

func (s *AuthService) login(ctx context.Context, identifier, password string) domain.AuthResult {
	l := slogx.FromContext(ctx)

	if identifier == "" || password == "" {
		return domain.BadInput(msgMissingCredentials, nil)
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	user, lookupErr := s.store.Users().FindUserByLogin(storeCtx, identifier)
	cancel()

	salt, want := user.Salt, user.PasswordHash
	found := lookupErr == nil
	switch {
	case found:
	case errors.Is(lookupErr, store.ErrNotFound), errors.Is(lookupErr, store.ErrAmbiguous):
		// Still derive so the response time matches the found path.
		salt, want = s.dummySalt, s.dummyHash
		if errors.Is(lookupErr, store.ErrAmbiguous) {
			l.Warn("login identifier matched more than one user")
		}
	default:
		l.Error("failed to look up user for login", slog.Any("error", lookupErr))
		return domain.StorageFailure()
	}

	got, err := s.derive(ctx, password, salt)
	if err != nil {
		l.Warn("password derivation abandoned", slog.Any("error", err))
		return domain.StorageFailure()
	}

	match := subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
	if !found || !match {
		l.Info("login rejected")
		return domain.Unauthorized("", msgBadCredential)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		l.Error("failed to issue token", slog.Any("error", err), slog.String("user_id", user.ID))
		return domain.StorageFailure()
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	return domain.Authenticated(token)
}

// FetchByToken resolves a bearer token to the user it was issued to. The
// lookup uses the (user id, username) pair, so renaming an account revokes
// its outstanding tokens.
func (s *AuthService) FetchByToken(ctx context.Context, token string) domain.AuthResult {
	res := s.fetchByToken(ctx, token)
	s.metrics.recordResult(FlowFetch, res.Status)
	return res
}

func (s *AuthService) fetchByToken(ctx context.Context, token string) domain.AuthResult {
	l := slogx.FromContext(ctx)

	v := s.tokens.Verify(token)
	if !v.Valid() {
		attrs := []any{slog.String("outcome", v.Outcome.String())}
		if token != "" {
			attrs = append(attrs, slog.String("token_fp", cryptox.FingerprintToken(token)))
		}
		l.Info("token rejected", attrs...)
		return domain.Unauthorized(v.Code, v.Message)
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.store.Users().FindUserByIdentity(storeCtx, v.UserID, v.Username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		l.Info("token has no matching user", slog.String("user_id", v.UserID))
		return domain.Unauthorized(domain.CodeNoMatch, msgTokenNoMatch)
	case err != nil:
		l.Error("failed to look up user by identity", slog.Any("error", err))
		return domain.StorageFailure()
	}

	return domain.Found(user.Project())
}

// Ready pings the store and checks the signer. Readiness probes call it.
func (s *AuthService) Ready(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.store.Ping(pingCtx); err != nil {
		return err
	}
	return s.tokens.Ready()
}
