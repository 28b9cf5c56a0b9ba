package http

import (
	"net/http"

	"github.com/aussiebroadwan/passport/internal/auth/service"
	"github.com/aussiebroadwan/passport/pkg/authsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/aussiebroadwan/passport/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin exchanges credentials for a token.
//
//	@Summary		Log in
//	@Description	Accepts a username or email plus password. Unknown users and wrong passwords get the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.TokenResponse	"Bearer token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Missing username or password"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Invalid username or password"
//	@Failure		500		{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		slogx.FromContext(r.Context()).Debug("rejected login body", "err", err)
		writeBadBody(w)
		return
	}

	res := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if !res.Status.OK() {
		writeFailure(w, res)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: res.Token})
}

// HandleFetch resolves the bearer token to its user.
//
//	@Summary		Get the token's user
//	@Description	Verifies the bearer token and returns the user it was issued to. Token failures carry a code: ABS, EXP, EAR, INV or NMF.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.UserResponse	"User"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Token missing, expired, early, invalid or without a user"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth [get].
func (h *AuthHandler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	res := h.AuthService.FetchByToken(r.Context(), httpx.BearerToken(r))
	if !res.Status.OK() {
		writeFailure(w, res)
		return
	}

	u := res.User
	httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		JobTitle:  u.JobTitle,
		CreatedAt: u.CreatedAt,
	})
}
