package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/roi-simulator/internal/domain/report"
	"github.com/bryanwahyu/roi-simulator/internal/infra/ai/prompt"
)

const (
	maxTokens    = 512
	defaultModel = "gpt-4o-mini"
)

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

// NewClientWithBaseURL targets an OpenAI-compatible endpoint
func NewClientWithBaseURL(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Narrate implements report.Narrator
func (c *Client) Narrate(ctx context.Context, s report.Summary) (string, error) {
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(s)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		if isQuotaError(err) {
			return "", fmt.Errorf("%w: %v", report.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func isQuotaError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.Type == "insufficient_quota"
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
