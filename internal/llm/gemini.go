package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// GeminiTransliterator transliterates Yiddish text using Google's Gemini API
type GeminiTransliterator struct {
	client  *genai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
}

// NewGeminiTransliterator creates a Gemini-backed transliterator
func NewGeminiTransliterator(apiKey, model string) (*GeminiTransliterator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY environment variable or configure in .yidspeak.yaml")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTransliterator{
		client:  client,
		model:   model,
		breaker: newBreaker("gemini-translit"),
	}, nil
}

// Transliterate converts one Yiddish text to phonetic Latin script
func (t *GeminiTransliterator) Transliterate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(systemPrompt, genai.RoleUser),
		genai.NewContentFromText(fmt.Sprintf("Transliterate this Yiddish text: %s", text), genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	result, err := t.breaker.Execute(func() (interface{}, error) {
		resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, config)
		if err != nil {
			return nil, fmt.Errorf("Gemini API error: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no transliteration returned")
		}

		var out strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			out.WriteString(part.Text)
		}
		if strings.TrimSpace(out.String()) == "" {
			return nil, fmt.Errorf("empty transliteration returned")
		}
		return strings.TrimSpace(out.String()), nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

// Name returns the backend name
func (t *GeminiTransliterator) Name() string {
	return "gemini"
}
