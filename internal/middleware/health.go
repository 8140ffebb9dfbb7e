package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

const healthMessage = "Backend is running!"

// HealthChecker defines interface for health checking
type HealthChecker interface {
	Check(ctx context.Context) error
}

// DatabaseHealthChecker checks database health
type DatabaseHealthChecker struct {
	DB *sql.DB
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.DB.PingContext(ctx)
}

// HealthStatus represents the health status
type HealthStatus struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message"`
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks,omitempty"`
}

// CheckStatus represents individual check status
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler creates a health check handler. With no checkers (memory
// store) it only reports liveness.
func HealthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := HealthStatus{
			Success:   true,
			Message:   healthMessage,
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		}
		if len(checkers) > 0 {
			health.Checks = make(map[string]CheckStatus, len(checkers))
		}

		for name, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				health.Success = false
				health.Status = "unhealthy"
				health.Checks[name] = CheckStatus{
					Status:  "unhealthy",
					Message: err.Error(),
				}
			} else {
				health.Checks[name] = CheckStatus{
					Status: "healthy",
				}
			}
		}

		statusCode := http.StatusOK
		if !health.Success {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(health)
	}
}
