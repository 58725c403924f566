package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Fixed model settings. They are deliberately not per-request so identical
// requests get comparable output and can share a cache entry.
const (
	GenerationMaxOutputTokens = 8192
	GenerationTemperature     = 0.7
	GenerationTopP            = 0.8

	DefaultGenerationTimeout = 60 * time.Second
	MaxGenerationRetries     = 1
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// GenerationClientInterface is the boundary to the external generative-content
// service: one prompt in, raw model text out.
type GenerationClientInterface interface {
	Provider() string
	Available() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// UnavailableGenerationClient stands in when no provider is configured.
type UnavailableGenerationClient struct {
	reason string
}

func NewUnavailableGenerationClient(reason string) *UnavailableGenerationClient {
	return &UnavailableGenerationClient{reason: reason}
}

func (c *UnavailableGenerationClient) Provider() string { return ProviderNone }

func (c *UnavailableGenerationClient) Available() bool { return false }

func (c *UnavailableGenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrClientUnavailable, c.reason)
}

// RetryingGenerationClient retries a failed Generate call at most
// MaxGenerationRetries times. Cancellation of the caller's context is never
// retried.
type RetryingGenerationClient struct {
	inner      GenerationClientInterface
	maxRetries int
	logger     *zap.Logger
}

func NewRetryingGenerationClient(inner GenerationClientInterface, maxRetries int, logger *zap.Logger) GenerationClientInterface {
	if maxRetries <= 0 {
		return inner
	}
	if maxRetries > MaxGenerationRetries {
		maxRetries = MaxGenerationRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryingGenerationClient{inner: inner, maxRetries: maxRetries, logger: logger}
}

func (c *RetryingGenerationClient) Provider() string { return c.inner.Provider() }

func (c *RetryingGenerationClient) Available() bool { return c.inner.Available() }

func (c *RetryingGenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		text, err := c.inner.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			break
		}
		if attempt < c.maxRetries {
			c.logger.Warn("generation attempt failed, retrying",
				zap.String("provider", c.inner.Provider()),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
		}
	}
	return "", lastErr
}
