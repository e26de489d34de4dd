// Package ai issues single text-completion requests against an
// OpenAI-compatible chat completions endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// systemPrompt steers the model toward a bare continuation of the context.
const systemPrompt = "You are a helpful writing assistant. Continue the given text naturally. " +
	"Only provide the continuation, not the original text. Keep it concise and relevant."

var (
	ErrNotConfigured = errors.New("ai: no api key configured")
	ErrNoCompletion  = errors.New("ai: empty completion")
)

// Config is supplied at construction and immutable for the session.
type Config struct {
	Endpoint    string
	Key         string
	Model       string
	MaxTokens   int
	Temperature float64
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	return &Client{cfg: cfg, http: &http.Client{}}
}

// Available reports whether the client is configured well enough to try.
func (c *Client) Available() bool {
	return c.cfg.Key != "" && c.cfg.Endpoint != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete returns a continuation for text. The deadline comes from ctx.
// Every failure mode (unconfigured, network, HTTP status, malformed body,
// empty choice) is an error; none is fatal to the caller.
func (c *Client) Complete(ctx context.Context, text string) (string, error) {
	if !c.Available() {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoCompletion
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.cfg.Endpoint, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Key)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("ai: endpoint returned %s", resp.Status)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrNoCompletion
	}

	out := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if len(out) >= 2 && strings.HasPrefix(out, `"`) && strings.HasSuffix(out, `"`) {
		out = out[1 : len(out)-1]
	}
	if out == "" {
		return "", ErrNoCompletion
	}
	return out, nil
}
