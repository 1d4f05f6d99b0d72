package model

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string        `json:"message" validate:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history" validate:"omitempty,dive"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
