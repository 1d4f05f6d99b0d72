package completion

import (
	"context"

	"luxestay/pkg/model"
)

const (
	MaxTokens   = 4096
	Temperature = 0.7
	TopP        = 0.9
)

// Completer sends an ordered conversation to a chat backend and returns the
// assistant's reply. The first message may carry the system role.
type Completer interface {
	Complete(ctx context.Context, messages []model.ChatMessage) (string, error)
}
