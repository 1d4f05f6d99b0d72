package completion

import (
	"context"
	"fmt"

	chaterrors "luxestay/internal/chat/errors"
	"luxestay/pkg/client"
	"luxestay/pkg/model"
)

type chatRequest struct {
	Model       string              `json:"model"`
	Messages    []model.ChatMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
	TopP        float64             `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// groqCompleter speaks the OpenAI-compatible chat completions protocol.
type groqCompleter struct {
	client *client.HttpClient
	apiKey string
	model  string
}

func NewGroqCompleter(httpClient *client.HttpClient, apiKey, modelName string) Completer {
	return &groqCompleter{
		client: httpClient,
		apiKey: apiKey,
		model:  modelName,
	}
}

func (g *groqCompleter) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	payload := chatRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
		TopP:        TopP,
	}

	resp, err := g.client.POST(ctx, "/chat/completions", payload, map[string]string{
		"Authorization": "Bearer " + g.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("groq request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("groq: status %d: %s", resp.StatusCode, resp.Body)
	}

	var out chatResponse
	if err := resp.DecodeJSON(&out); err != nil {
		return "", fmt.Errorf("groq: decode response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", chaterrors.ErrEmptyCompletion
	}
	return out.Choices[0].Message.Content, nil
}
