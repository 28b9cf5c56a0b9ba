package http

import (
	"net/http"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/pkg/authsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
)

const msgBadBody = "Request body must be a JSON object with string fields."

// statusCode maps a flow outcome to its HTTP status.
func statusCode(s domain.Status) int {
	switch s {
	case domain.StatusCreated:
		return http.StatusCreated
	case domain.StatusAuthenticated, domain.StatusFound:
		return http.StatusOK
	case domain.StatusBadInput:
		return http.StatusBadRequest
	case domain.StatusUnauthorized:
		return http.StatusUnauthorized
	case domain.StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeFailure writes a failed AuthResult. Token failures also get a bearer
// challenge.
func writeFailure(w http.ResponseWriter, res domain.AuthResult) {
	body := authsdk.ErrorResponse{
		Error:   string(res.Status),
		Message: domain.GenericFailureMessage,
	}
	if res.Problem != nil {
		body.Code = res.Problem.Code
		body.Message = res.Problem.Message
		body.Problems = res.Problem.Fields
	}

	if res.Status == domain.StatusUnauthorized && body.Code != "" {
		httpx.WriteBearerChallenge(w, body.Message)
	}

	httpx.WriteJSON(w, statusCode(res.Status), body)
}

// writeBadBody answers a request whose body could not be decoded.
func writeBadBody(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
		Error:   string(domain.StatusBadInput),
		Message: msgBadBody,
	})
}
