package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/passport/pkg/authsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/aussiebroadwan/passport/pkg/slogx"
)

const readyTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type signer interface {
	Ready() error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db pinger, tokens signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := slogx.FromContext(r.Context())
		checks := &authsdk.HealthChecks{Database: healthOK, Signer: healthOK}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		// Probe output is public, so details only go to the log.
		if db == nil {
			log.Warn("readiness: no database configured")
			checks.Database = healthError
		} else if err := db.Ping(ctx); err != nil {
			log.Warn("readiness: database ping failed", "err", err)
			checks.Database = healthError
		}

		if err := tokens.Ready(); err != nil {
			log.Warn("readiness: signer not ready", "err", err)
			checks.Signer = healthError
		}

		status, code := healthOK, http.StatusOK
		if checks.Database != healthOK || checks.Signer != healthOK {
			status, code = healthDegraded, http.StatusServiceUnavailable
		}

		response := healthReport(status, startTime, version)
		response.Checks = checks
		httpx.WriteJSON(w, code, response)
	}
}
