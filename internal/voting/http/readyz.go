package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/jwtx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes the database, the receipt signer and the result of the last ledger audit
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	votingsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	votingsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
	auditor *service.LedgerAuditor,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &votingsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
			Ledger:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Receipts cannot be signed without a key
		if keys == nil || !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// A failed audit means the ledger can no longer be trusted
		if auditor != nil {
			if report, ok := auditor.LastReport(); !ok {
				checks.Ledger = "pending"
			} else if !report.Valid {
				checks.Ledger = fmt.Sprintf("error: %d problems", len(report.Problems))
				overallStatus = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		response := votingsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
