package authsdk

import (
	"context"
	"sync"
)

// Session holds a bearer token. Tokens are not refreshed: once the server
// reports it expired, log in again.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// GetUser fetches the user the session's token was issued to.
func (s *Session) GetUser(ctx context.Context) (*UserResponse, error) {
	return s.client.FetchUser(ctx, s.Token())
}

// Reauthenticate replaces the session token with a fresh one.
func (s *Session) Reauthenticate(ctx context.Context, username, password string) error {
	tokenResp, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = tokenResp.Token
	s.mu.Unlock()
	return nil
}
