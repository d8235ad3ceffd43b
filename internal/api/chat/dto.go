package chat

import (
	"time"

	"github.com/Abdouldav-cyber/chat/pkg/nlp"
)

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
}

type ChatResponse struct {
	Intent         string        `json:"intent"`
	Response       string        `json:"response"`
	Confidence     float64       `json:"confidence"`
	Entities       nlp.EntityBag `json:"entities"`
	Suggestions    []string      `json:"suggestions"`
	SessionID      string        `json:"session_id"`
	ConversationID string        `json:"conversation_id,omitempty"`
}

type FeedbackRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	Feedback       int    `json:"feedback" validate:"required,oneof=1 -1"`
}

type ConversationResponse struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Message    string    `json:"message"`
	Intent     string    `json:"intent"`
	Response   string    `json:"response"`
	Confidence float64   `json:"confidence"`
	Feedback   *int      `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int                    `json:"total"`
}

type CreateIntentRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=64"`
	Category string   `json:"category" validate:"required,min=2,max=64"`
	Response string   `json:"response" validate:"required"`
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required"`
	Priority int      `json:"priority" validate:"gte=0"`
	IsActive *bool    `json:"is_active" validate:"omitempty"`
}

type UpdateIntentRequest struct {
	Category string   `json:"category" validate:"omitempty,min=2,max=64"`
	Response string   `json:"response" validate:"omitempty"`
	Keywords []string `json:"keywords" validate:"omitempty,min=1,dive,required"`
	Priority *int     `json:"priority" validate:"omitempty,gte=0"`
	IsActive *bool    `json:"is_active" validate:"omitempty"`
}

type IntentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Response  string    `json:"response"`
	Keywords  []string  `json:"keywords"`
	Priority  int       `json:"priority"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type IntentListResponse struct {
	Intents []IntentResponse `json:"intents"`
	Total   int              `json:"total"`
}
