// Package llm provides the language-model client used to generate insights.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Client sends one instruction and returns the model's full text response.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Providers.
const (
	ProviderTogether = "together"
	ProviderOpenAI   = "openai"
	ProviderStatic   = "static"
)

const (
	DefaultTogetherURL   = "https://api.together.xyz/v1"
	DefaultTogetherModel = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultTimeout       = 60 * time.Second
)

// Config selects and configures a provider.
type Config struct {
	Provider       string
	Model          string
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	StaticResponse string
}

// ErrEmptyResponse is returned when the provider answers without content.
var ErrEmptyResponse = errors.New("model returned no content")

// --- OpenAI-compatible Provider ---

type chatCompletions interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAIClient talks to any OpenAI-compatible chat completions API.
type OpenAIClient struct {
	completions chatCompletions
	model       string
}

// NewOpenAIClient creates a chat client. An empty baseURL means the OpenAI
// API itself.
func NewOpenAIClient(baseURL, apiKey, model string, timeout time.Duration, maxRetries int) (*OpenAIClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("llm: api key required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if maxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(maxRetries))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{completions: &client.Chat.Completions, model: model}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion (%s): %w", c.model, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// --- Static Provider ---

// StaticClient returns the same text for every prompt. Useful offline.
type StaticClient struct {
	Response string
}

func (c StaticClient) Complete(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.Response == "" {
		return "", ErrEmptyResponse
	}
	return c.Response, nil
}

// --- Factory ---

// New creates a client for cfg.Provider: "together" (default), "openai" or
// "static". Remote providers require an API key.
func New(cfg Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderTogether:
		url := cfg.BaseURL
		if url == "" {
			url = DefaultTogetherURL
		}
		model := cfg.Model
		if model == "" {
			model = DefaultTogetherModel
		}
		return NewOpenAIClient(url, cfg.APIKey, model, cfg.Timeout, cfg.MaxRetries)
	case ProviderOpenAI:
		model := cfg.Model
		if model == "" {
			model = DefaultOpenAIModel
		}
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, model, cfg.Timeout, cfg.MaxRetries)
	case ProviderStatic:
		resp := cfg.StaticResponse
		if strings.HasPrefix(resp, "@") {
			b, err := os.ReadFile(resp[1:])
			if err != nil {
				return nil, fmt.Errorf("read static response: %w", err)
			}
			resp = string(b)
		}
		return StaticClient{Response: resp}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (valid: together, openai, static)", cfg.Provider)
	}
}
