package transcriber

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
)

const systemPrompt = "You are a helpful assistant that converts IPA symbols " +
	"into English words. Output only the spelled-out English word(s), no extra " +
	"commentary. If multiple words are possible, pick the most common."

// OpenAITranscriber implements the Transcriber interface by asking a
// chat model to spell out IPA phonemes.
type OpenAITranscriber struct {
	client *openai.Client
	model  string
}

// NewOpenAITranscriber creates a transcriber from the provided
// credentials. With an empty key or model the transcriber reports
// ErrTranscriberNotConfigured on use instead of failing at startup.
func NewOpenAITranscriber(apiKey, model, baseURL string) *OpenAITranscriber {
	if apiKey == "" || model == "" {
		return &OpenAITranscriber{}
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAITranscriber{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (t OpenAITranscriber) IPAToText(ctx context.Context, ipa string) (domain.IPAToTextResponse, error) {
	if t.client == nil {
		return domain.IPAToTextResponse{}, domain.ErrTranscriberNotConfigured
	}
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: 0,
		MaxTokens:   50,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "IPA: " + ipa},
		},
	})
	if err != nil {
		return domain.IPAToTextResponse{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.IPAToTextResponse{}, fmt.Errorf("expected at least one choice, got none")
	}
	choice := resp.Choices[0]
	result := domain.IPAToTextResponse{Text: strings.TrimSpace(choice.Message.Content)}
	if choice.FinishReason == openai.FinishReasonStop {
		confidence := 1.0
		result.Confidence = &confidence
	}
	return result, nil
}
