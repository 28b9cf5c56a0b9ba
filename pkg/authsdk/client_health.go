package authsdk

import (
	"context"
	"errors"
	"net/http"
)

// ErrNotReady is returned by GetReadiness when the service answers 503. The
// HealthResponse returned alongside it says which check failed.
var ErrNotReady = errors.New("authsdk: service not ready")

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	health, _, err := c.getHealth(ctx, "/livez")
	return health, err
}

// GetReadiness checks the service's dependencies. A degraded service returns
// its health report together with ErrNotReady.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	health, status, err := c.getHealth(ctx, "/readyz")
	if err != nil {
		return nil, err
	}
	if status == http.StatusServiceUnavailable {
		return health, ErrNotReady
	}
	return health, nil
}

// getHealth decodes a health report from a 200 or 503 response.
func (c *SDKClient) getHealth(ctx context.Context, path string) (*HealthResponse, int, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, 0, err
	}

	status := resp.StatusCode
	expected := http.StatusOK
	if status == http.StatusServiceUnavailable {
		expected = status
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, expected); err != nil {
		return nil, status, err
	}
	return &health, status, nil
}
