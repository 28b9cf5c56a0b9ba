package domain

// Status is the transport-agnostic classification of a flow's outcome.
type Status string

const (
	StatusCreated        Status = "created"
	StatusAuthenticated  Status = "authenticated"
	StatusFound          Status = "found"
	StatusBadInput       Status = "bad_input"
	StatusUnauthorized   Status = "unauthorized"
	StatusConflict       Status = "conflict"
	StatusStorageFailure Status = "storage_failure"
)

// OK reports whether s is a success status.
func (s Status) OK() bool {
	switch s {
	case StatusCreated, StatusAuthenticated, StatusFound:
		return true
	default:
		return false
	}
}

// GenericFailureMessage is the only text a StorageFailure ever shows a client.
const GenericFailureMessage = "internal server error"

// Problem describes why a flow failed.
type Problem struct {
	// Code is a token state code (ABS, EXP, EAR, INV, NMF), empty otherwise.
	Code    string
	Message string
	// Fields maps each invalid field to every rule it broke (BadInput only).
	Fields map[string][]string
}

// AuthResult is what every flow returns. At most one of Token, User and
// Problem is set.
type AuthResult struct {
	Status  Status
	Token   string
	User    *UserProjection
	Problem *Problem
}

func Created() AuthResult {
	return AuthResult{Status: StatusCreated}
}

func Authenticated(token string) AuthResult {
	return AuthResult{Status: StatusAuthenticated, Token: token}
}

func Found(u UserProjection) AuthResult {
	return AuthResult{Status: StatusFound, User: &u}
}

func BadInput(message string, fields map[string][]string) AuthResult {
	return AuthResult{Status: StatusBadInput, Problem: &Problem{Message: message, Fields: fields}}
}

func Unauthorized(code, message string) AuthResult {
	return AuthResult{Status: StatusUnauthorized, Problem: &Problem{Code: code, Message: message}}
}

func Conflict(message string) AuthResult {
	return AuthResult{Status: StatusConflict, Problem: &Problem{Message: message}}
}

// StorageFailure never carries internal detail; log the cause before
// returning it.
func StorageFailure() AuthResult {
	return AuthResult{Status: StatusStorageFailure, Problem: &Problem{Message: GenericFailureMessage}}
}
