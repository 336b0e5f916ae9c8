package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// Transliterator converts Yiddish text to phonetic Latin script via a
// remote language model. Implementations return the phonetic rendering or
// an error; empty input yields an empty result without a remote call.
type Transliterator interface {
	Transliterate(ctx context.Context, text string) (string, error)
	Name() string
}

// Config selects and configures an LLM backend
type Config struct {
	Provider  string // "openai" or "gemini"
	OpenAIKey string
	GeminiKey string
	Model     string // Backend-specific model override, empty for default
}

// New creates a transliterator for the configured provider
func New(config *Config) (Transliterator, error) {
	if config == nil {
		return nil, fmt.Errorf("LLM configuration is required")
	}

	switch config.Provider {
	case "openai":
		return NewOpenAITransliterator(config.OpenAIKey, config.Model)
	case "gemini":
		return NewGeminiTransliterator(config.GeminiKey, config.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
}

// systemPrompt steers the model towards YIVO-style transliteration that a
// generic TTS engine can pronounce.
const systemPrompt = `You are an expert in Yiddish language and transliteration. Your task is to convert Yiddish text written in Hebrew script into phonetic Latin script suitable for text-to-speech synthesis.

Guidelines:
- Convert Hebrew letters to their Yiddish phonetic equivalents
- Use standard YIVO transliteration when possible
- Make the output pronounceable for English TTS engines
- Preserve the natural flow and rhythm of Yiddish speech
- Common conversions: ש=sh, ח=kh, צ=ts, ך=kh, ם=m, ן=n, ף=f, ץ=ts
- Handle vowels appropriately: א=a, ע=e, ו=u/o, י=i/y
- Convert װ to v, יי to ey, וו to u/v as appropriate

Example:
Hebrew: שלום עליכם
Phonetic: sholem aleykhem

Only return the transliterated text, no explanations.`

// newBreaker returns the circuit breaker shared by the LLM backends. Three
// consecutive failures open the circuit for thirty seconds.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

// BatchTransliterate converts multiple texts, continuing past individual
// failures. Failed entries come back as empty strings.
func BatchTransliterate(ctx context.Context, t Transliterator, texts []string) []string {
	results := make([]string, 0, len(texts))
	for _, text := range texts {
		result, err := t.Transliterate(ctx, text)
		if err != nil {
			fmt.Printf("Warning: %s transliteration failed: %v\n", t.Name(), err)
			result = ""
		}
		results = append(results, result)
	}
	return results
}
