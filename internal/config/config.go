// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tripplanner/pkg/utils"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel is one of debug, info, warn, error. Defaults to "info".
	LogLevel string

	// GinMode is passed to gin.SetMode. Defaults to "release".
	GinMode string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]; set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	Generation GenerationConfig

	// CacheTTL is how long a generated itinerary is served from memory.
	CacheTTL time.Duration

	// DedupeInFlight shares one generation call between concurrent
	// requests with the same fingerprint.
	DedupeInFlight bool
}

type GenerationConfig struct {
	// Provider is gemini, openai or none. With a missing API key the
	// provider is treated as unavailable and every request falls back.
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	Timeout      time.Duration
	MaxRetries   int
}

// APIKey returns the key for the selected provider.
func (g GenerationConfig) APIKey() string {
	switch g.Provider {
	case utils.ProviderGemini:
		return g.GeminiAPIKey
	case utils.ProviderOpenAI:
		return g.OpenAIAPIKey
	}
	return ""
}

// Load reads configuration from environment variables, after merging in a
// .env file from the working directory when one exists. Variables already set
// in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		GinMode:     getEnv("GIN_MODE", "release"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
		Generation: GenerationConfig{
			Provider:     strings.ToLower(getEnv("GENERATION_PROVIDER", utils.ProviderGemini)),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
			OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
	}

	var problems []string

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL: unknown level %q", cfg.LogLevel))
	}

	switch cfg.Generation.Provider {
	case utils.ProviderGemini, utils.ProviderOpenAI, utils.ProviderNone:
	default:
		problems = append(problems, fmt.Sprintf("GENERATION_PROVIDER: unknown provider %q", cfg.Generation.Provider))
	}

	var err error
	if cfg.Generation.Timeout, err = getDuration("GENERATION_TIMEOUT", 60*time.Second); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Minute); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.Generation.MaxRetries, err = getInt("GENERATION_MAX_RETRIES", 0); err != nil {
		problems = append(problems, err.Error())
	} else if cfg.Generation.MaxRetries < 0 || cfg.Generation.MaxRetries > 1 {
		problems = append(problems, "GENERATION_MAX_RETRIES: must be 0 or 1")
	}
	if cfg.DedupeInFlight, err = getBool("DEDUPE_INFLIGHT", false); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: %q is not a positive duration", key, v)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, v)
	}
	return b, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
