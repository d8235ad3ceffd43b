package chat

import "github.com/Abdouldav-cyber/chat/pkg/response"

var (
	ErrEmptyMessage         = response.NewError(400, "message is required")
	ErrConversationNotFound = response.NewError(404, "conversation not found")
	ErrIntentNotFound       = response.NewError(404, "intent not found")
	ErrIntentAlreadyExists  = response.NewError(409, "intent already exists")
	ErrCreateIntent         = response.NewError(500, "failed to create intent")
	ErrUpdateIntent         = response.NewError(500, "failed to update intent")
	ErrDeleteIntent         = response.NewError(500, "failed to delete intent")
	ErrReloadIntents        = response.NewError(500, "failed to reload intents")
	ErrSaveFeedback         = response.NewError(500, "failed to save feedback")
)
