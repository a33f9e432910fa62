package api

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"hckonnect/hubgate/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the gateway, its embedded store, and the upstream API.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(deps *Dependencies, hubDB *gorm.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		// Embedded sqlite store
		dbStatus := "ok"
		dbDetails := "Preference store reachable"
		if sqlDB, err := hubDB.DB(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["store"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		// Upstream HCKonnect API
		upstreamStatus := "ok"
		upstreamDetails := "Upstream reachable"
		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, deps.Provider.BaseURL+"/", nil)
		if err == nil {
			resp, err := deps.Provider.Client.Do(req)
			if err != nil {
				upstreamStatus = "down"
				upstreamDetails = err.Error()
			} else {
				resp.Body.Close()
			}
		}
		services["upstream"] = entities.ServiceStatus{
			Status:  upstreamStatus,
			Details: upstreamDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
