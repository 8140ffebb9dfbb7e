package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/roi-simulator/internal/domain/report"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
)

func TestClient_Narrate(t *testing.T) {
	var gotModel string
	var gotMaxTokens int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotModel, gotMaxTokens = body.Model, body.MaxTokens

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Pays back in 1.5 months."},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "", srv.URL+"/v1")
	text, err := c.Narrate(context.Background(), report.Summary{Results: roi.Results{MonthlySavings: 1}})

	require.NoError(t, err)
	assert.Equal(t, "Pays back in 1.5 months.", text)
	assert.Equal(t, defaultModel, gotModel)
	assert.Equal(t, maxTokens, gotMaxTokens)
}

func TestClient_NarrateQuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "gpt-4o-mini", srv.URL+"/v1")
	_, err := c.Narrate(context.Background(), report.Summary{})
	assert.ErrorIs(t, err, report.ErrQuotaExceeded)
}

func TestClient_NarrateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", "gpt-4o-mini", srv.URL+"/v1")
	_, err := c.Narrate(context.Background(), report.Summary{})
	assert.ErrorContains(t, err, "no choices")
}
