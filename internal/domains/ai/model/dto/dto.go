package dto

import "taskbox/infras/openai"

type AskRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type ChatMessage struct {
	Role    string `json:"role"    validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

func (r *ChatRequest) ToMessages() []openai.Message {
	messages := make([]openai.Message, len(r.Messages))
	for i, message := range r.Messages {
		messages[i] = openai.Message{
			Role:    message.Role,
			Content: message.Content,
		}
	}

	return messages
}

type BreakdownRequest struct {
	Task string `json:"task" validate:"required"`
}

type ChatResponse struct {
	Message string `json:"message"`
}
