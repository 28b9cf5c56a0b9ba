package authsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds carried in ErrorResponse.Error.
const (
	KindBadInput       = "bad_input"
	KindUnauthorized   = "unauthorized"
	KindConflict       = "conflict"
	KindStorageFailure = "storage_failure"
)

// Token failure codes carried in ErrorResponse.Code.
const (
	CodeTokenAbsent  = "ABS"
	CodeTokenExpired = "EXP"
	CodeTokenEarly   = "EAR"
	CodeTokenInvalid = "INV"
	CodeNoMatch      = "NMF"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Kind       string
	Code       string
	Message    string
	Problems   map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an *APIError of the given kind.
func IsKind(err error, kind string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies that
// are not ours still produce an error from the status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Kind:       errResp.Error,
			Code:       errResp.Code,
			Message:    errResp.Message,
			Problems:   errResp.Problems,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Kind:       KindStorageFailure,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
