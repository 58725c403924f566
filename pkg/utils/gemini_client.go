package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-pro"

// geminiModel is the slice of *genai.GenerativeModel the client uses.
type geminiModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiGenerationClient implements GenerationClientInterface using Google's Gemini models
type GeminiGenerationClient struct {
	client  *genai.Client
	model   geminiModel
	name    string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiGenerationClient creates a new Gemini client
func NewGeminiGenerationClient(apiKey, model string, timeout time.Duration, logger *zap.Logger) (*GeminiGenerationClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: gemini API key is empty", ErrClientUnavailable)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.SetMaxOutputTokens(GenerationMaxOutputTokens)
	m.SetTemperature(GenerationTemperature)
	m.SetTopP(GenerationTopP)

	return newGeminiGenerationClient(client, m, model, timeout, logger), nil
}

func newGeminiGenerationClient(client *genai.Client, m geminiModel, name string, timeout time.Duration, logger *zap.Logger) *GeminiGenerationClient {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiGenerationClient{
		client:  client,
		model:   m,
		name:    name,
		timeout: timeout,
		logger:  logger,
	}
}

func (c *GeminiGenerationClient) Provider() string { return ProviderGemini }

func (c *GeminiGenerationClient) Available() bool { return c.model != nil }

func (c *GeminiGenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w: %w", c.name, ErrClientUnavailable, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini %s: %w", c.name, ErrEmptyResponse)
	}

	text := candidateText(resp.Candidates[0])
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini %s: %w", c.name, ErrEmptyResponse)
	}

	c.logger.Debug("gemini generation complete",
		zap.String("model", c.name),
		zap.Int("chars", len(text)))
	return text, nil
}

func candidateText(candidate *genai.Candidate) string {
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// Close closes the Gemini client
func (c *GeminiGenerationClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
