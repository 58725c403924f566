package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const DefaultOpenAIModel = "gpt-4o-mini"

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerationClient implements GenerationClientInterface on the chat
// completions API.
type OpenAIGenerationClient struct {
	client  chatCompleter
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewOpenAIGenerationClient(apiKey, model string, timeout time.Duration, logger *zap.Logger) (*OpenAIGenerationClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: openai API key is empty", ErrClientUnavailable)
	}
	return newOpenAIGenerationClient(openai.NewClient(apiKey), model, timeout, logger), nil
}

func newOpenAIGenerationClient(client chatCompleter, model string, timeout time.Duration, logger *zap.Logger) *OpenAIGenerationClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIGenerationClient{client: client, model: model, timeout: timeout, logger: logger}
}

func (c *OpenAIGenerationClient) Provider() string { return ProviderOpenAI }

func (c *OpenAIGenerationClient) Available() bool { return c.client != nil }

func (c *OpenAIGenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   GenerationMaxOutputTokens,
		Temperature: GenerationTemperature,
		TopP:        GenerationTopP,
	})
	if err != nil {
		return "", fmt.Errorf("openai %s: %w: %w", c.model, ErrClientUnavailable, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai %s: %w", c.model, ErrEmptyResponse)
	}

	c.logger.Debug("openai generation complete",
		zap.String("model", c.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens))
	return resp.Choices[0].Message.Content, nil
}
