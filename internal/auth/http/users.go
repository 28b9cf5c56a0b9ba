package http

import (
	"net/http"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
	"github.com/aussiebroadwan/passport/internal/auth/service"
	"github.com/aussiebroadwan/passport/pkg/authsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/aussiebroadwan/passport/pkg/slogx"
)

type UsersHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP registers a new user.
//
//	@Summary		Register a user
//	@Description	Validates every field, hashes the password and stores the user. Returns no token; log in separately.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest	true	"New user"
//	@Success		201		{object}	map[string]string		"Empty object"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Every violated rule per field"
//	@Failure		409		{object}	authsdk.ErrorResponse	"Username or email already in use"
//	@Failure		500		{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users [post].
func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		slogx.FromContext(r.Context()).Debug("rejected registration body", "err", err)
		writeBadBody(w)
		return
	}

	res := h.AuthService.Register(r.Context(), domain.Registration{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		JobTitle:  req.JobTitle,
	})
	if !res.Status.OK() {
		writeFailure(w, res)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, struct{}{})
}
