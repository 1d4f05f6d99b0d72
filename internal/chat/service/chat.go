package service

import (
	"context"
	"unicode/utf8"

	chaterrors "luxestay/internal/chat/errors"
	"luxestay/internal/chat/completion"
	"luxestay/pkg/config"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/model"
	"luxestay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const SystemPrompt = "You are a helpful assistant for LuxeStay, a hotel booking application. " +
	"Only answer questions related to hotels, bookings, travel, and destinations. " +
	"If asked about other topics, politely state that you can only assist with hotel and travel-related queries. " +
	"Answer concisely and to the point, only include important information or main points."

const (
	MaxResponseLength = 1000
	truncatedLength   = MaxResponseLength - 3
)

var messages = map[string]string{
	"message.required": "Message is required",
}

type ChatService interface {
	// Reply answers message in the context of history. history must not
	// already contain message.
	Reply(ctx context.Context, history []model.ChatMessage, message string) (string, error)
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

type chatService struct {
	completer completion.Completer
	validate  *validator.Validate
	cfg       *config.Config
}

// NewChatService accepts a nil completer; every call then fails with 503.
func NewChatService(completer completion.Completer, cfg *config.Config) ChatService {
	return &chatService{
		completer: completer,
		validate:  validation.New(),
		cfg:       cfg,
	}
}

func (s *chatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validation.ToAppError(validation.Translate(err, messages))
	}

	reply, err := s.Reply(ctx, req.ConversationHistory, req.Message)
	if err != nil {
		return nil, err
	}
	return &model.ChatResponse{Response: reply}, nil
}

func (s *chatService) Reply(ctx context.Context, history []model.ChatMessage, message string) (string, error) {
	if s.completer == nil {
		return "", apperrors.Unavailable("Chat service").WithCause(chaterrors.ErrNotConfigured)
	}

	conversation := make([]model.ChatMessage, 0, len(history)+2)
	conversation = append(conversation, model.ChatMessage{Role: model.RoleSystem, Content: SystemPrompt})
	conversation = append(conversation, history...)
	conversation = append(conversation, model.ChatMessage{Role: model.RoleUser, Content: message})

	reply, err := s.completer.Complete(ctx, conversation)
	if err != nil {
		s.cfg.Log.Error("Chat completion failed", "provider", s.cfg.ChatProvider, "history_len", len(history), "error", err)
		return "", apperrors.UpstreamUnavailable("Chat service", err)
	}
	return Truncate(reply), nil
}

// Truncate caps a reply at MaxResponseLength characters, marking the cut
// with an ellipsis.
func Truncate(reply string) string {
	if utf8.RuneCountInString(reply) <= MaxResponseLength {
		return reply
	}
	runes := []rune(reply)
	return string(runes[:truncatedLength]) + "..."
}
