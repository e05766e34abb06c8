// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ai wraps a remote DeepSeek-compatible chat-completion endpoint
// used to summarize trending news into a digest. The wrapper is thin on
// purpose: callers degrade gracefully when the service is not configured or
// a request fails.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"
	defaultTimeout = 300 * time.Second
)

// ErrUnavailable is returned when no API key is configured. Callers skip
// summarization instead of failing the run.
var ErrUnavailable = errors.New("ai service unavailable: no api key configured")

// Message is one chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ClientConfig holds the chat-completion endpoint settings.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ClientConfigFromEnv reads the endpoint settings from DEEPSEEK_API_KEY and
// DEEPSEEK_MODEL, leaving the remaining fields to their defaults.
func ClientConfigFromEnv() ClientConfig {
	return ClientConfig{
		APIKey: strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY")),
		Model:  strings.TrimSpace(os.Getenv("DEEPSEEK_MODEL")),
	}
}

// Client calls a DeepSeek-compatible chat-completion API.
type Client struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewClient constructs a Client, filling empty config fields with defaults.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli, apiKey: cfg.APIKey, model: cfg.Model}
}

// Available reports whether the client can make requests.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends the messages to the chat-completion endpoint and
// returns the generated content of the first choice.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	body := chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result chatCompletionResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("chat completion response has no choices")
	}

	return result.Choices[0].Message.Content, nil
}

// SimpleChat asks a single question, optionally with a system prompt.
func (c *Client) SimpleChat(ctx context.Context, prompt, systemPrompt string) (string, error) {
	messages := make([]Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, Message{Role: "user", Content: prompt})

	return c.ChatCompletion(ctx, messages, defaultTemperature, defaultMaxTokens)
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
