package audio

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/readablepassword/internal/logging"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// GenerateAudio speaks text into outputFile. Providers that can play
	// audio directly do so when outputFile is empty.
	GenerateAudio(ctx context.Context, text string, outputFile string) error

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider string        // "espeak", "openai" or "gemini"
	Timeout  time.Duration // Per request timeout for remote providers

	// espeak-ng settings
	ESpeak *ESpeakConfig

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIModel       string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts model

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string
	GeminiVoice string
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:          "espeak",
		Timeout:           30 * time.Second,
		ESpeak:            DefaultConfig(),
		OpenAIModel:       "gpt-4o-mini-tts",
		OpenAIVoice:       "alloy",
		OpenAISpeed:       0.9,
		OpenAIInstruction: "Read each word slowly and clearly, with a short pause between words, as if dictating a password over the phone.",
		GeminiModel:       "gemini-2.5-flash-preview-tts",
		GeminiVoice:       "Kore",
	}
}

// NewProvider creates the appropriate audio provider based on configuration
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "espeak":
		return NewESpeakProvider(config.ESpeak)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(ctx, config)

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}
}

// IsRemote reports whether the named provider calls a network API
func IsRemote(name string) bool {
	return name == "openai" || name == "gemini"
}

// NewSpeaker builds the provider chain used by the processor: the
// configured provider, a circuit breaker around remote ones and an
// optional fallback provider.
func NewSpeaker(ctx context.Context, config *Config, fallback string) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	primary, err := NewProvider(ctx, config)
	if err != nil {
		return nil, err
	}
	if IsRemote(config.Provider) {
		primary = NewBreakerProvider(primary)
	}

	if fallback == "" || fallback == config.Provider {
		return primary, nil
	}

	fallbackConfig := *config
	fallbackConfig.Provider = fallback
	secondary, err := NewProvider(ctx, &fallbackConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback provider: %w", err)
	}
	if IsRemote(fallback) {
		secondary = NewBreakerProvider(secondary)
	}

	return NewProviderWithFallback(primary, secondary), nil
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// GenerateAudio tries primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	err := p.primary.GenerateAudio(ctx, text, outputFile)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}

		logging.Logger().Warn("primary speech provider failed, falling back",
			zap.String("primary", p.primary.Name()),
			zap.String("fallback", p.fallback.Name()),
			zap.Error(err))

		if ferr := p.fallback.GenerateAudio(ctx, text, outputFile); ferr != nil {
			return fmt.Errorf("%s failed: %v; fallback %s failed: %w", p.primary.Name(), err, p.fallback.Name(), ferr)
		}
	}
	return nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

// withTimeout bounds a single remote request
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultProviderConfig().Timeout
	}
	return context.WithTimeout(ctx, d)
}
