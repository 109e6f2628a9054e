package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	systemPromptEN = "You are an expert in public speaking and oratory skills. You analyze speech and provide specific recommendations."
	systemPromptRU = "Ты эксперт по ораторскому мастерству и публичным выступлениям. Анализируешь речь и даешь конкретные рекомендации."

	fallbackEN = "Error getting recommendations. Please try again later."
	fallbackRU = "Ошибка при получении рекомендаций. Попробуйте позже."
)

// Options configures the recommendation client.
type Options struct {
	BaseURL    string
	APIKey     string
	Model      string
	TimeoutSec int
}

// Client queries an OpenAI-compatible chat completions endpoint for
// speech improvement recommendations.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// NewClient creates a recommendation client.
func NewClient(opts Options) *Client {
	timeout := time.Duration(opts.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     60 * time.Second,
			},
		},
		opts: opts,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Recommend sends the prompt to the model and returns the sanitized
// recommendation text. Errors from the upstream API are returned to
// the caller; use Fallback for a user-facing substitute.
func (c *Client) Recommend(ctx context.Context, prompt, lang string) (string, error) {
	system := systemPromptEN
	if lang == "ru" {
		system = systemPromptRU
	}

	body, err := json.Marshal(chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := c.opts.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	io.Copy(io.Discard, resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.ErrorContext(ctx, "recommendation API error",
			slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return "", fmt.Errorf("chat API returned HTTP %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}

	return SanitizeHTML(chat.Choices[0].Message.Content), nil
}

// Fallback returns the user-facing message shown when recommendations
// could not be fetched.
func Fallback(lang string) string {
	if lang == "ru" {
		return fallbackRU
	}
	return fallbackEN
}
