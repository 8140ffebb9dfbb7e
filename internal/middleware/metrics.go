package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics stores application metrics
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	RequestsSuccess    uint64
	RequestsFailed     uint64
	SimulationsTotal   uint64
	ScenariosSaved     uint64
	ScenariosDeleted   uint64
	ReportsGenerated   uint64
	ReportsFailed      uint64
	StartTime          time.Time
}

var globalMetrics = &Metrics{
	StartTime: time.Now(),
}

// IncrementRequests increments total request counter
func IncrementRequests() {
	atomic.AddUint64(&globalMetrics.RequestsTotal, 1)
}

func IncrementInProgress() {
	atomic.AddUint64(&globalMetrics.RequestsInProgress, 1)
}

func DecrementInProgress() {
	atomic.AddUint64(&globalMetrics.RequestsInProgress, ^uint64(0))
}

func IncrementSuccess() {
	atomic.AddUint64(&globalMetrics.RequestsSuccess, 1)
}

func IncrementFailed() {
	atomic.AddUint64(&globalMetrics.RequestsFailed, 1)
}

// IncrementSimulations counts projections computed, saved or not
func IncrementSimulations() {
	atomic.AddUint64(&globalMetrics.SimulationsTotal, 1)
}

func IncrementScenariosSaved() {
	atomic.AddUint64(&globalMetrics.ScenariosSaved, 1)
}

func IncrementScenariosDeleted() {
	atomic.AddUint64(&globalMetrics.ScenariosDeleted, 1)
}

func IncrementReports() {
	atomic.AddUint64(&globalMetrics.ReportsGenerated, 1)
}

func IncrementReportsFailed() {
	atomic.AddUint64(&globalMetrics.ReportsFailed, 1)
}

// GetMetrics returns current metrics
func GetMetrics() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]interface{}{
		"requests_total":       atomic.LoadUint64(&globalMetrics.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&globalMetrics.RequestsInProgress),
		"requests_success":     atomic.LoadUint64(&globalMetrics.RequestsSuccess),
		"requests_failed":      atomic.LoadUint64(&globalMetrics.RequestsFailed),
		"simulations_total":    atomic.LoadUint64(&globalMetrics.SimulationsTotal),
		"scenarios_saved":      atomic.LoadUint64(&globalMetrics.ScenariosSaved),
		"scenarios_deleted":    atomic.LoadUint64(&globalMetrics.ScenariosDeleted),
		"reports_generated":    atomic.LoadUint64(&globalMetrics.ReportsGenerated),
		"reports_failed":       atomic.LoadUint64(&globalMetrics.ReportsFailed),
		"uptime_seconds":       time.Since(globalMetrics.StartTime).Seconds(),
		"memory": map[string]interface{}{
			"alloc_bytes":       m.Alloc,
			"total_alloc_bytes": m.TotalAlloc,
			"sys_bytes":         m.Sys,
			"num_gc":            m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}
}

// MetricsMiddleware tracks request metrics
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		IncrementRequests()
		IncrementInProgress()
		defer DecrementInProgress()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode >= 200 && wrapped.statusCode < 400 {
			IncrementSuccess()
		} else {
			IncrementFailed()
		}
	})
}

// MetricsHandler returns metrics as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetMetrics())
}
