package http

import (
	"net/http"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/store"
	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/astromitts/gifterator3000/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the database check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	exchangesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	exchangesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get]
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &exchangesdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := exchangesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
