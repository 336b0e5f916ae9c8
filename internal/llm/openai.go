package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAITransliterator transliterates Yiddish text using OpenAI chat models
type OpenAITransliterator struct {
	client  *openai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAITransliterator creates an OpenAI-backed transliterator
func NewOpenAITransliterator(apiKey, model string) (*OpenAITransliterator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .yidspeak.yaml")
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAITransliterator{
		client:  openai.NewClient(apiKey),
		model:   model,
		breaker: newBreaker("openai-translit"),
	}, nil
}

// Transliterate converts one Yiddish text to phonetic Latin script
func (t *OpenAITransliterator) Transliterate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Transliterate this Yiddish text: %s", text),
			},
		},
		MaxTokens:   500,
		Temperature: 0.1, // Low temperature for consistent results
	}

	result, err := t.breaker.Execute(func() (interface{}, error) {
		resp, err := t.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, fmt.Errorf("no transliteration returned")
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

// Name returns the backend name
func (t *OpenAITransliterator) Name() string {
	return "openai"
}
