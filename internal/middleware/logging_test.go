package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_AttachesContextLoggerAndLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scenarios", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inside, done map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inside))
	require.NoError(t, json.Unmarshal(lines[1], &done))

	assert.Equal(t, "inside", inside["message"])
	assert.Equal(t, "/scenarios", inside["path"])
	assert.Equal(t, "request", done["message"])
	assert.Equal(t, float64(http.StatusCreated), done["status"])
	assert.Equal(t, float64(5), done["bytes"])
	assert.Equal(t, "info", done["level"])
}

func TestMetricsMiddleware_CountsOutcomes(t *testing.T) {
	before := GetMetrics()

	ok := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	bad := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	bad.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	IncrementReports()

	after := GetMetrics()
	assert.Equal(t, before["requests_total"].(uint64)+2, after["requests_total"])
	assert.Equal(t, before["requests_success"].(uint64)+1, after["requests_success"])
	assert.Equal(t, before["requests_failed"].(uint64)+1, after["requests_failed"])
	assert.Equal(t, before["reports_generated"].(uint64)+1, after["reports_generated"])
	assert.Equal(t, uint64(0), after["requests_in_progress"])

	rec := httptest.NewRecorder()
	MetricsHandler(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `"simulations_total"`)
}
