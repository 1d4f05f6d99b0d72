package completion

import (
	"context"
	"fmt"
	"strings"

	chaterrors "luxestay/internal/chat/errors"
	"luxestay/pkg/model"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModelRole = "model"

type GeminiCompleter struct {
	client *genai.Client
	model  string
}

func NewGeminiCompleter(ctx context.Context, apiKey, modelName string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, model: modelName}, nil
}

// Complete maps a leading system message to the system instruction, earlier
// turns to chat history and the final turn to the sent message.
func (g *GeminiCompleter) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("gemini: no messages to send")
	}

	m := g.client.GenerativeModel(g.model)
	m.SetMaxOutputTokens(MaxTokens)
	m.SetTemperature(Temperature)
	m.SetTopP(TopP)

	if messages[0].Role == model.RoleSystem {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(messages[0].Content)}}
		messages = messages[1:]
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("gemini: no messages to send")
	}

	cs := m.StartChat()
	cs.History = toGeminiHistory(messages[:len(messages)-1])

	resp, err := cs.SendMessage(ctx, genai.Text(messages[len(messages)-1].Content))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", chaterrors.ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", chaterrors.ErrEmptyCompletion
	}
	return sb.String(), nil
}

func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}

// toGeminiHistory drops system turns; Gemini only knows user and model roles.
// History must open with a user turn, so leading model turns (greetings) are
// skipped too.
func toGeminiHistory(messages []model.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := model.RoleUser
		switch msg.Role {
		case model.RoleSystem:
			continue
		case model.RoleAssistant:
			if len(history) == 0 {
				continue
			}
			role = geminiModelRole
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return history
}
