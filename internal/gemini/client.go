// Package gemini wraps the Google GenAI client behind the two call shapes
// the application needs: single-prompt generation and multi-turn chat.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"shifra-server/internal/common/config"
	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/metrics"
	"shifra-server/internal/models"
)

// Client is the upstream LLM collaborator.
type Client struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// NewClient creates a Gemini-backed client from configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		client:          client,
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// GenerateText sends a single prompt and returns the concatenated candidate
// text. Upstream failures come back as StandardErrors so callers can route
// them into their fallback paths.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxOutputTokens,
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	metrics.GeminiCallDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", classify(ctx, err)
	}

	return collectText(resp)
}

// Chat sends a conversation transcript plus a system instruction and
// returns the assistant reply text.
func (c *Client) Chat(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxOutputTokens,
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	metrics.GeminiCallDuration.WithLabelValues("chat").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", classify(ctx, err)
	}

	return collectText(resp)
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", stderrors.NewLLMMalformedResponseError("empty response from model")
	}
	return output, nil
}

func classify(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		timeout := time.Duration(0)
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
			if timeout < 0 {
				timeout = 0
			}
		}
		return stderrors.NewLLMTimeoutError(timeout)
	}
	return stderrors.NewUpstreamUnavailableError(err)
}
