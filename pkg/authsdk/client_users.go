package authsdk

import (
	"context"
	"net/http"
)

// Register creates a user. It returns nil on 201; log in separately to get
// a token.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/users", req)
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil, http.StatusCreated)
}

// Login exchanges a username (or email) and password for a bearer token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// FetchUser resolves token to the user it was issued to.
func (c *SDKClient) FetchUser(ctx context.Context, token string) (*UserResponse, error) {
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/auth", nil, headers)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetRules retrieves the registration validation rules.
func (c *SDKClient) GetRules(ctx context.Context) (*RulesResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/rules", nil, nil)
	if err != nil {
		return nil, err
	}

	var rules RulesResponse
	if err := decodeJSON(resp, &rules, http.StatusOK); err != nil {
		return nil, err
	}

	return &rules, nil
}
