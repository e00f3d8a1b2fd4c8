package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sethvargo/go-retry"
	"google.golang.org/api/option"
)

// GeminiGenerator implements TextGenerator using Google's Gemini models.
type GeminiGenerator struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries uint64
}

// NewGeminiGenerator initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, timeout time.Duration, maxRetries int) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{
		client:     client,
		model:      model,
		timeout:    timeout,
		maxRetries: uint64(maxRetries),
	}, nil
}

// Close cleans up the Gemini client resources.
func (g *GeminiGenerator) Close() {
	_ = g.client.Close()
}

// Generate sends the prompt and returns the raw text of the first
// candidate. Transport failures are retried with exponential backoff up
// to maxRetries; the final failure wraps ErrTransport.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, params GenParams) (string, error) {
	model := g.client.GenerativeModel(g.model)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(params.Temperature)
	if params.MaxTokens > 0 {
		model.SetMaxOutputTokens(params.MaxTokens)
	}

	var text string
	backoff := retry.WithMaxRetries(g.maxRetries, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
		if err != nil {
			slog.Warn("gemini call failed, retrying", "error", err)
			return retry.RetryableError(err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return retry.RetryableError(fmt.Errorf("no response candidates"))
		}

		var sb strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		text = sb.String()
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return text, nil
}
