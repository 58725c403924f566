package generation_fx

import (
	"context"
	"fmt"
	"tripplanner/internal/config"
	"tripplanner/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(ProvideGenerationClient)

// ProvideGenerationClient creates the generation client for the configured
// provider. A missing API key or a client that fails to start is not fatal:
// the service runs with an unavailable client and serves fallback itineraries.
func ProvideGenerationClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) utils.GenerationClientInterface {
	gen := cfg.Generation
	logger = logger.Named("generation")

	client, err := newProviderClient(gen, logger)
	if err != nil {
		logger.Warn("generation client unavailable", zap.String("provider", gen.Provider), zap.Error(err))
		return utils.NewUnavailableGenerationClient(err.Error())
	}

	if closer, ok := client.(interface{ Close() error }); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	logger.Info("generation client ready",
		zap.String("provider", client.Provider()),
		zap.Duration("timeout", gen.Timeout),
		zap.Int("max_retries", gen.MaxRetries),
	)
	return utils.NewRetryingGenerationClient(client, gen.MaxRetries, logger)
}

func newProviderClient(gen config.GenerationConfig, logger *zap.Logger) (utils.GenerationClientInterface, error) {
	switch gen.Provider {
	case utils.ProviderGemini:
		client, err := utils.NewGeminiGenerationClient(gen.APIKey(), gen.GeminiModel, gen.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case utils.ProviderOpenAI:
		client, err := utils.NewOpenAIGenerationClient(gen.APIKey(), gen.OpenAIModel, gen.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case utils.ProviderNone:
		return nil, fmt.Errorf("generation disabled: %w", utils.ErrClientUnavailable)
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", gen.Provider)
	}
}
