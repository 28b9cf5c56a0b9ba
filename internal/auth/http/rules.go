package http

import (
	"net/http"

	"github.com/aussiebroadwan/passport/internal/auth/validate"
	"github.com/aussiebroadwan/passport/pkg/httpx"
)

// RulesHandler godoc
//
//	@Summary		Validation rules
//	@Description	Every rule checked on registration, per field, in evaluation order
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	authsdk.RulesResponse	"Versioned rule tables"
//	@Router			/v1/rules [get].
func RulesHandler() http.HandlerFunc {
	catalog := validate.Describe()
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, catalog)
	}
}
