package audio

import (
	"context"
	"fmt"
)

// Provider defines the interface for text-to-speech providers. The text
// handed to GenerateAudio is phonetic Latin script produced by the
// transliterator, not Hebrew-script Yiddish.
type Provider interface {
	// GenerateAudio generates audio from phonetic text and saves it to the
	// specified file
	GenerateAudio(ctx context.Context, text string, outputFile string) error

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider     string // Provider name: "espeak" or "openai"
	OutputDir    string // Directory for output files
	OutputFormat string // Output format: "mp3" or "wav"

	// espeak-ng settings
	ESpeakVoice     string // Voice/accent (e.g. "de", "pl", "en")
	ESpeakSpeed     int    // Words per minute
	ESpeakPitch     int    // 0 to 99
	ESpeakAmplitude int    // 0 to 200
	ESpeakWordGap   int    // Gap between words in 10ms units

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIModel       string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts model

	// Caching (OpenAI only)
	EnableCache bool
	CacheDir    string
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:        "espeak",
		OutputDir:       "./",
		OutputFormat:    "wav",
		ESpeakVoice:     DefaultAccentVoice(),
		ESpeakSpeed:     150,
		ESpeakPitch:     50,
		ESpeakAmplitude: 100,
		OpenAIModel:     "gpt-4o-mini-tts",
		OpenAIVoice:     "alloy",
		OpenAISpeed:     1.0,
		OpenAIInstruction: "You are reading a phonetic Latin-script rendering of Yiddish. " +
			"Pronounce it with an authentic Eastern European Yiddish accent: 'kh' as in 'chutzpah', " +
			"'ey' as in 'they', 'oy' as in 'boy'. Speak warmly and clearly.",
	}
}

// NewProvider creates the appropriate audio provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "espeak":
		return NewESpeakProvider(&ESpeakConfig{
			Voice:     config.ESpeakVoice,
			Speed:     config.ESpeakSpeed,
			Pitch:     config.ESpeakPitch,
			Amplitude: config.ESpeakAmplitude,
			WordGap:   config.ESpeakWordGap,
			OutputDir: config.OutputDir,
		})

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}
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
		fmt.Printf("Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())

		return p.fallback.GenerateAudio(ctx, text, outputFile)
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
