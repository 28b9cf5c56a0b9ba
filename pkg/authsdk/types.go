package authsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every non-2xx response.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the failure kind (e.g., "bad_input", "unauthorized")
	Error string `json:"error"`

	// Code is set for token failures: ABS, EXP, EAR, INV or NMF
	Code string `json:"code,omitempty"`

	// Message is a human-readable description of the failure
	Message string `json:"message"`

	// Problems lists every violated rule per field, for bad_input only
	Problems map[string][]string `json:"problems,omitempty"`
}

// ============================================================================
// User Types
// ============================================================================

// RegisterRequest is the body of POST /v1/users.
type RegisterRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	JobTitle  *string `json:"job_title,omitempty"`
}

// LoginRequest is the body of POST /v1/auth. Username may also be an email
// address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	// Token is the bearer token for GET /v1/auth
	Token string `json:"token"`
}

// UserResponse is the public view of a user returned by GET /v1/auth. It
// never carries the password hash or salt.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	JobTitle  *string   `json:"job_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================================
// Rule Types
// ============================================================================

// RulesResponse describes the validation rules enforced on registration.
type RulesResponse struct {
	// Version changes whenever any rule changes
	Version string      `json:"version"`
	Fields  []FieldRule `json:"fields"`
}

// FieldRule lists the rules for one field, in evaluation order.
type FieldRule struct {
	Field string `json:"field"`
	Rules []Rule `json:"rules"`
}

// Rule is a single validation rule.
type Rule struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
// Used in the /readyz endpoint to indicate the status of each component.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the token signing capability status
	Signer string `json:"signer"`
}
